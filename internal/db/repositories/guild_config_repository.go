package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	gormModels "github.com/Fripe070/experienced/internal/models/gorm"
)

// GuildConfigRepository persists per-guild configuration rows.
type GuildConfigRepository struct {
	db *gorm.DB
}

func NewGuildConfigRepository(db *gorm.DB) *GuildConfigRepository {
	return &GuildConfigRepository{db: db}
}

// Get returns the raw stored config, or nil when the guild has none.
func (r *GuildConfigRepository) Get(ctx context.Context, guildID int64) (*gormModels.GuildConfig, error) {
	var config gormModels.GuildConfig
	err := r.db.WithContext(ctx).
		Where("guild_id = ?", guildID).
		First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild config: %w", err)
	}
	return &config, nil
}

// Upsert writes the full config row for a guild.
func (r *GuildConfigRepository) Upsert(ctx context.Context, config *gormModels.GuildConfig) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "guild_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"one_reward_at_a_time",
				"level_up_message",
				"level_up_channel",
				"updated_at",
			}),
		}).
		Create(config).Error
	if err != nil {
		return fmt.Errorf("failed to upsert guild config: %w", err)
	}
	return nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	gormModels "github.com/Fripe070/experienced/internal/models/gorm"
)

// GuildBanRepository tracks guilds banned from using the bot.
type GuildBanRepository struct {
	db *gorm.DB
}

func NewGuildBanRepository(db *gorm.DB) *GuildBanRepository {
	return &GuildBanRepository{db: db}
}

// Ban records a guild ban. A nil expiry makes it permanent; banning an
// already-banned guild replaces the expiry.
func (r *GuildBanRepository) Ban(ctx context.Context, guildID int64, expiresAt *time.Time) error {
	ban := gormModels.GuildBan{GuildID: guildID, ExpiresAt: expiresAt}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "guild_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"expires_at"}),
		}).
		Create(&ban).Error
	if err != nil {
		return fmt.Errorf("failed to ban guild: %w", err)
	}
	return nil
}

// Pardon lifts a guild ban. Pardoning an unbanned guild is a no-op.
func (r *GuildBanRepository) Pardon(ctx context.Context, guildID int64) error {
	err := r.db.WithContext(ctx).
		Delete(&gormModels.GuildBan{}, "guild_id = ?", guildID).Error
	if err != nil {
		return fmt.Errorf("failed to pardon guild: %w", err)
	}
	return nil
}

// IsBanned reports whether a guild is currently banned. Expired bans count as
// pardoned.
func (r *GuildBanRepository) IsBanned(ctx context.Context, guildID int64, now time.Time) (bool, error) {
	var ban gormModels.GuildBan
	err := r.db.WithContext(ctx).
		Where("guild_id = ?", guildID).
		First(&ban).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to fetch guild ban: %w", err)
	}
	if ban.ExpiresAt != nil && ban.ExpiresAt.Before(now) {
		return false, nil
	}
	return true, nil
}

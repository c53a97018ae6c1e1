package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	gormModels "github.com/Fripe070/experienced/internal/models/gorm"
)

// RoleRewardRepository reads the role rewards configured for a guild.
type RoleRewardRepository struct {
	db *gorm.DB
}

func NewRoleRewardRepository(db *gorm.DB) *RoleRewardRepository {
	return &RoleRewardRepository{db: db}
}

// ListByGuild returns a guild's rewards sorted ascending by XP requirement,
// the order consumers walk to find the highest qualifying reward.
func (r *RoleRewardRepository) ListByGuild(ctx context.Context, guildID int64) ([]gormModels.RoleReward, error) {
	var rewards []gormModels.RoleReward
	err := r.db.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Order("requirement ASC").
		Find(&rewards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch role rewards: %w", err)
	}
	return rewards, nil
}

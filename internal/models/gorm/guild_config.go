package gorm

import "time"

// GuildConfig is the raw stored per-guild configuration. The level-up message
// template is compiled (and validated) when the row is loaded, not here.
type GuildConfig struct {
	GuildID          int64     `gorm:"column:guild_id;primaryKey"`
	OneRewardAtATime *bool     `gorm:"column:one_reward_at_a_time"`
	LevelUpMessage   *string   `gorm:"column:level_up_message"`
	LevelUpChannel   *int64    `gorm:"column:level_up_channel"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (GuildConfig) TableName() string {
	return "guild_configs"
}

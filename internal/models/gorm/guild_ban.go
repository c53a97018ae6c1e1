package gorm

import "time"

// GuildBan blocks a guild from using the bot. A nil ExpiresAt means the ban
// is permanent.
type GuildBan struct {
	GuildID   int64      `gorm:"column:guild_id;primaryKey"`
	ExpiresAt *time.Time `gorm:"column:expires_at"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (GuildBan) TableName() string {
	return "guild_bans"
}

package gorm

// RoleReward grants a role once a member's XP passes the requirement.
// Consumers walk the list sorted ascending by requirement to find the highest
// reward an XP total qualifies for.
type RoleReward struct {
	GuildID     int64 `gorm:"column:guild_id;primaryKey"`
	RoleID      int64 `gorm:"column:role_id;primaryKey"`
	Requirement int64 `gorm:"column:requirement"`
}

func (RoleReward) TableName() string {
	return "role_rewards"
}

package entities

// LevelRecord is one row of the levels table: cumulative XP for a user in a
// guild. IDs are bit-reinterpreted snowflakes (see internal/common).
type LevelRecord struct {
	UserID  int64 `db:"user_id"`
	GuildID int64 `db:"guild_id"`
	XP      int64 `db:"xp"`
}

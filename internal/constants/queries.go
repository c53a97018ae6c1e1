package constants

const (
	GetUserXP = `
	SELECT xp FROM levels WHERE user_id = $1 AND guild_id = $2
	`

	CountHigherXP = `
	SELECT COUNT(*) FROM levels WHERE guild_id = $1 AND xp > $2
	`

	UpsertLevel = `
	INSERT INTO levels (user_id, guild_id, xp)
	VALUES ($1, $2, $3)
	ON CONFLICT (user_id, guild_id) DO UPDATE SET xp = excluded.xp
	`

	DeleteLevelsGuild = `
	DELETE FROM levels WHERE guild_id = $1
	`

	DeleteLevelsUser = `
	DELETE FROM levels WHERE user_id = $1
	`

	CountLevelsGuild = `
	SELECT COUNT(*) FROM levels WHERE guild_id = $1
	`

	CountLevelsTotal = `
	SELECT COUNT(*) FROM levels
	`

	GetCustomCard = `
	SELECT * FROM custom_card WHERE id = $1
	`

	DeleteCustomCard = `
	DELETE FROM custom_card WHERE id = $1
	`

	// UpsertCustomCard coalesces against the stored row, so fields the user
	// did not supply keep their prior values instead of resetting to default.
	UpsertCustomCard = `
	INSERT INTO custom_card (
		important,
		secondary,
		rank,
		level,
		border,
		background,
		progress_foreground,
		progress_background,
		font,
		id
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
	) ON CONFLICT (id) DO UPDATE SET
		important = COALESCE(excluded.important, custom_card.important),
		secondary = COALESCE(excluded.secondary, custom_card.secondary),
		rank = COALESCE(excluded.rank, custom_card.rank),
		level = COALESCE(excluded.level, custom_card.level),
		border = COALESCE(excluded.border, custom_card.border),
		background = COALESCE(excluded.background, custom_card.background),
		progress_foreground = COALESCE(excluded.progress_foreground, custom_card.progress_foreground),
		progress_background = COALESCE(excluded.progress_background, custom_card.progress_background),
		font = COALESCE(excluded.font, custom_card.font)
	`
)

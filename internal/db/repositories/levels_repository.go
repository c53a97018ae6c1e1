package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Fripe070/experienced/internal/constants"
)

// LevelsRepository reads and administers the levels table. XP increments come
// from an external ingestion path; this repository only reads XP, upserts
// imported rows, and deletes for admin resets.
type LevelsRepository struct {
	db *sqlx.DB
}

func NewLevelsRepository(db *sqlx.DB) *LevelsRepository {
	return &LevelsRepository{db}
}

// GetXP returns the stored XP for a user in a guild. A missing row is not an
// error: it means zero XP.
func (r *LevelsRepository) GetXP(ctx context.Context, userID, guildID int64) (int64, error) {
	var xp int64
	err := r.db.QueryRowxContext(ctx, constants.GetUserXP, userID, guildID).Scan(&xp)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to fetch xp: %w", err)
	}
	return xp, nil
}

// CountHigherXP counts users in the guild with strictly more XP. Rank is this
// count plus one, which naturally collapses ties to one rank value.
func (r *LevelsRepository) CountHigherXP(ctx context.Context, guildID, xp int64) (int64, error) {
	var count int64
	err := r.db.QueryRowxContext(ctx, constants.CountHigherXP, guildID, xp).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count higher xp: %w", err)
	}
	return count, nil
}

// UpsertXP writes an imported XP total, replacing any existing row.
func (r *LevelsRepository) UpsertXP(ctx context.Context, userID, guildID, xp int64) error {
	if _, err := r.db.ExecContext(ctx, constants.UpsertLevel, userID, guildID, xp); err != nil {
		return fmt.Errorf("failed to upsert level row: %w", err)
	}
	return nil
}

// DeleteGuild removes every level row for a guild and returns how many rows
// were deleted.
func (r *LevelsRepository) DeleteGuild(ctx context.Context, guildID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, constants.DeleteLevelsGuild, guildID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete guild levels: %w", err)
	}
	return res.RowsAffected()
}

// DeleteUser removes a user's level rows across all guilds and returns how
// many guilds held data for them.
func (r *LevelsRepository) DeleteUser(ctx context.Context, userID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, constants.DeleteLevelsUser, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user levels: %w", err)
	}
	return res.RowsAffected()
}

// CountGuild returns the number of level rows held for a guild.
func (r *LevelsRepository) CountGuild(ctx context.Context, guildID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowxContext(ctx, constants.CountLevelsGuild, guildID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count guild levels: %w", err)
	}
	return count, nil
}

// CountTotal returns the bot-wide number of level rows.
func (r *LevelsRepository) CountTotal(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowxContext(ctx, constants.CountLevelsTotal).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count levels: %w", err)
	}
	return count, nil
}

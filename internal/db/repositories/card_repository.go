package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Fripe070/experienced/internal/constants"
	"github.com/Fripe070/experienced/internal/models/entities"
)

// CardRepository persists per-user card customizations.
type CardRepository struct {
	db *sqlx.DB
}

func NewCardRepository(db *sqlx.DB) *CardRepository {
	return &CardRepository{db}
}

// Get returns the stored customization row, or nil when the user has none.
func (r *CardRepository) Get(ctx context.Context, userID int64) (*entities.CustomCard, error) {
	var card entities.CustomCard
	err := r.db.QueryRowxContext(ctx, constants.GetCustomCard, userID).StructScan(&card)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch custom card: %w", err)
	}
	return &card, nil
}

// Upsert writes a partial customization. Nil fields keep the stored value;
// the COALESCE in the query does the per-field merge.
func (r *CardRepository) Upsert(ctx context.Context, card *entities.CustomCard) error {
	_, err := r.db.ExecContext(ctx, constants.UpsertCustomCard,
		card.Important,
		card.Secondary,
		card.Rank,
		card.Level,
		card.Border,
		card.Background,
		card.ProgressForeground,
		card.ProgressBackground,
		card.Font,
		card.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert custom card: %w", err)
	}
	return nil
}

// Delete clears a user's customization entirely.
func (r *CardRepository) Delete(ctx context.Context, userID int64) error {
	if _, err := r.db.ExecContext(ctx, constants.DeleteCustomCard, userID); err != nil {
		return fmt.Errorf("failed to delete custom card: %w", err)
	}
	return nil
}

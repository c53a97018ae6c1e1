package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Fripe070/experienced/internal/cards"
	"github.com/Fripe070/experienced/internal/common"
	"github.com/Fripe070/experienced/internal/constants"
	"github.com/Fripe070/experienced/internal/leveling"
	"github.com/Fripe070/experienced/internal/logging"
	"github.com/Fripe070/experienced/internal/metrics"
	"github.com/Fripe070/experienced/internal/models/dtos"
	"github.com/Fripe070/experienced/internal/models/entities"
)

// CardStore is the slice of the card repository the card service needs.
type CardStore interface {
	Get(ctx context.Context, userID int64) (*entities.CustomCard, error)
	Upsert(ctx context.Context, card *entities.CustomCard) error
	Delete(ctx context.Context, userID int64) error
}

// Renderer produces an opaque image buffer from assembled card parameters.
type Renderer interface {
	Render(ctx context.Context, params dtos.CardParams) ([]byte, error)
}

// CardService owns theme loading, editing, and the rendering pipeline.
type CardService struct {
	store    CardStore
	renderer Renderer
	metrics  *metrics.MetricsRegistry
}

func NewCardService(store CardStore, renderer Renderer, reg *metrics.MetricsRegistry) *CardService {
	return &CardService{store: store, renderer: renderer, metrics: reg}
}

// ThemeFor loads a user's theme. It never fails: storage errors and absent
// rows both degrade to the all-default theme.
func (s *CardService) ThemeFor(ctx context.Context, userID uint64) cards.Theme {
	row, err := s.store.Get(ctx, common.IDToDB(userID))
	if err != nil {
		logging.Warn("Falling back to default theme", "user_id", common.FormatID(userID), "error", err.Error())
		return cards.DefaultTheme()
	}
	return cards.ThemeFromRow(row)
}

// ErrUnknownFont rejects edit requests naming a font the renderer does not
// ship.
var ErrUnknownFont = fmt.Errorf("unknown font! Valid fonts are %v", cards.Fonts)

// Edit upserts the provided fields only; unset fields keep their stored
// values through the repository's coalescing upsert.
func (s *CardService) Edit(ctx context.Context, userID uint64, edit dtos.CardEdit) (string, error) {
	if edit.Font != nil && !cards.ValidFont(*edit.Font) {
		return "", ErrUnknownFont
	}
	row := &entities.CustomCard{
		ID:                 common.IDToDB(userID),
		Important:          hexOrNil(edit.Important),
		Secondary:          hexOrNil(edit.Secondary),
		Rank:               hexOrNil(edit.Rank),
		Level:              hexOrNil(edit.Level),
		Border:             hexOrNil(edit.Border),
		Background:         hexOrNil(edit.Background),
		ProgressForeground: hexOrNil(edit.ProgressForeground),
		ProgressBackground: hexOrNil(edit.ProgressBackground),
		Font:               edit.Font,
	}
	if err := s.store.Upsert(ctx, row); err != nil {
		return "", err
	}
	return constants.MsgCardUpdated, nil
}

func hexOrNil(color *cards.Color) *string {
	if color == nil {
		return nil
	}
	hex := color.String()
	return &hex
}

// Reset clears a user's customization entirely.
func (s *CardService) Reset(ctx context.Context, userID uint64) (string, error) {
	if err := s.store.Delete(ctx, common.IDToDB(userID)); err != nil {
		return "", err
	}
	return constants.MsgCardCleared, nil
}

// Describe renders the per-field listing for the fetch command.
func (s *CardService) Describe(ctx context.Context, userID uint64) string {
	return s.ThemeFor(ctx, userID).Describe()
}

// RenderCard assembles the parameter set for a user and invokes the
// rendering backend. Failures propagate without retry.
func (s *CardService) RenderCard(ctx context.Context, info dtos.MemberDisplayInfo, level leveling.LevelInfo, rank int64) ([]byte, error) {
	theme := s.ThemeFor(ctx, info.ID)
	params := dtos.CardParams{
		Name:       info.DisplayName(),
		Level:      strconv.FormatInt(level.Level(), 10),
		Rank:       strconv.FormatInt(rank, 10),
		Percentage: level.Percentage(),
		Theme:      dtos.ResolveColors(theme),
		Font:       theme.Font.Effective(),
		AvatarURL:  info.AvatarURL(),
	}

	start := time.Now()
	image, err := s.renderer.Render(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to render card: %w", err)
	}
	s.metrics.RenderDuration.Observe(time.Since(start).Seconds())
	return image, nil
}

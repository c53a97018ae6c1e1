package dtos

import (
	"errors"

	"github.com/Fripe070/experienced/internal/cards"
)

// ErrNoUser is returned when a member record arrives without its embedded
// user object.
var ErrNoUser = errors.New("member record has no user object")

// CardParams is the full parameter set handed to the rendering backend.
type CardParams struct {
	Name       string     `json:"name"`
	Level      string     `json:"level"`
	Rank       string     `json:"rank"`
	Percentage float64    `json:"percentage"`
	Theme      CardColors `json:"colors"`
	Font       string     `json:"font"`
	AvatarURL  string     `json:"avatar_url,omitempty"`
}

// CardColors is the resolved palette, every field concrete.
type CardColors struct {
	Important          cards.Color `json:"important"`
	Secondary          cards.Color `json:"secondary"`
	Rank               cards.Color `json:"rank"`
	Level              cards.Color `json:"level"`
	Border             cards.Color `json:"border"`
	Background         cards.Color `json:"background"`
	ProgressForeground cards.Color `json:"progress_foreground"`
	ProgressBackground cards.Color `json:"progress_background"`
}

// ResolveColors flattens a theme into the renderer's palette.
func ResolveColors(theme cards.Theme) CardColors {
	return CardColors{
		Important:          theme.Important.Effective(),
		Secondary:          theme.Secondary.Effective(),
		Rank:               theme.Rank.Effective(),
		Level:              theme.Level.Effective(),
		Border:             theme.Border.Effective(),
		Background:         theme.Background.Effective(),
		ProgressForeground: theme.ProgressForeground.Effective(),
		ProgressBackground: theme.ProgressBackground.Effective(),
	}
}

// CardEdit carries the partial updates from the edit command. Nil fields mean
// "leave unchanged".
type CardEdit struct {
	Important          *cards.Color
	Secondary          *cards.Color
	Rank               *cards.Color
	Level              *cards.Color
	Border             *cards.Color
	Background         *cards.Color
	ProgressForeground *cards.Color
	ProgressBackground *cards.Color
	Font               *string
}

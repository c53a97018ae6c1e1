// Package cards holds the rank-card theme model: an 8-slot color palette plus
// a font choice, each slot falling back to its own default independently.
package cards

import (
	"fmt"
	"strings"

	"github.com/Fripe070/experienced/internal/models/entities"
)

var (
	DefaultImportant          = NewColor(255, 255, 255)
	DefaultSecondary          = NewColor(204, 204, 204)
	DefaultRank               = NewColor(255, 255, 255)
	DefaultLevel              = NewColor(143, 202, 92)
	DefaultBorder             = NewColor(133, 79, 43)
	DefaultBackground         = NewColor(97, 55, 31)
	DefaultProgressForeground = NewColor(71, 122, 30)
	DefaultProgressBackground = NewColor(143, 202, 92)
)

// DefaultFont is used when a user has not chosen a font.
const DefaultFont = "Roboto"

// Fonts lists the font choices the renderer ships with.
var Fonts = []string{"Roboto", "JetBrains Mono", "Montserrat Alt1", "Mojang"}

// ValidFont reports whether name is one of the shipped fonts.
func ValidFont(name string) bool {
	for _, f := range Fonts {
		if f == name {
			return true
		}
	}
	return false
}

// ColorField is one palette slot: an optional stored value plus its
// hard-coded default.
type ColorField struct {
	Label   string
	Value   *Color
	Default Color
}

// Effective returns the stored value, or the default when unset.
func (f ColorField) Effective() Color {
	if f.Value != nil {
		return *f.Value
	}
	return f.Default
}

// IsDefault reports whether the effective value equals the default.
func (f ColorField) IsDefault() bool {
	return f.Effective() == f.Default
}

// Format renders the slot for the fetch command output.
func (f ColorField) Format() string {
	if f.IsDefault() {
		return fmt.Sprintf("%s: `%s` (default)", f.Label, f.Effective())
	}
	return fmt.Sprintf("%s: `%s`", f.Label, f.Effective())
}

// FontField is the font slot, with the same default-coalescing shape as
// ColorField.
type FontField struct {
	Value *string
}

func (f FontField) Effective() string {
	if f.Value != nil {
		return *f.Value
	}
	return DefaultFont
}

func (f FontField) IsDefault() bool {
	return f.Effective() == DefaultFont
}

func (f FontField) Format() string {
	if f.IsDefault() {
		return fmt.Sprintf("Font: `%s` (default)", f.Effective())
	}
	return fmt.Sprintf("Font: `%s`", f.Effective())
}

// Theme is a user's full card customization.
type Theme struct {
	Important          ColorField
	Secondary          ColorField
	Rank               ColorField
	Level              ColorField
	Border             ColorField
	Background         ColorField
	ProgressForeground ColorField
	ProgressBackground ColorField
	Font               FontField
}

// DefaultTheme returns the all-default theme used when a user has no stored
// row, or when loading their row fails.
func DefaultTheme() Theme {
	return Theme{
		Important:          ColorField{Label: "Important text", Default: DefaultImportant},
		Secondary:          ColorField{Label: "Secondary text", Default: DefaultSecondary},
		Rank:               ColorField{Label: "Rank", Default: DefaultRank},
		Level:              ColorField{Label: "Level", Default: DefaultLevel},
		Border:             ColorField{Label: "Border", Default: DefaultBorder},
		Background:         ColorField{Label: "Background", Default: DefaultBackground},
		ProgressForeground: ColorField{Label: "Progress bar completed", Default: DefaultProgressForeground},
		ProgressBackground: ColorField{Label: "Progress bar remaining", Default: DefaultProgressBackground},
	}
}

// ThemeFromRow builds a theme from a stored custom_card row. Unparseable
// stored values degrade to that field's default rather than failing.
func ThemeFromRow(row *entities.CustomCard) Theme {
	theme := DefaultTheme()
	if row == nil {
		return theme
	}
	theme.Important.Value = maybeHex(row.Important)
	theme.Secondary.Value = maybeHex(row.Secondary)
	theme.Rank.Value = maybeHex(row.Rank)
	theme.Level.Value = maybeHex(row.Level)
	theme.Border.Value = maybeHex(row.Border)
	theme.Background.Value = maybeHex(row.Background)
	theme.ProgressForeground.Value = maybeHex(row.ProgressForeground)
	theme.ProgressBackground.Value = maybeHex(row.ProgressBackground)
	theme.Font.Value = row.Font
	return theme
}

func maybeHex(raw *string) *Color {
	if raw == nil {
		return nil
	}
	color, err := FromHex(*raw)
	if err != nil {
		return nil
	}
	return &color
}

// Describe renders the per-field listing for the fetch command, annotating
// fields whose effective value equals their default.
func (t Theme) Describe() string {
	lines := []string{
		t.Important.Format(),
		t.Secondary.Format(),
		t.Rank.Format(),
		t.Level.Format(),
		t.Border.Format(),
		t.Background.Format(),
		t.ProgressForeground.Format(),
		t.ProgressBackground.Format(),
		t.Font.Format(),
	}
	return strings.Join(lines, "\n") + "\n"
}

package cards

import (
	"strings"
	"testing"

	"github.com/Fripe070/experienced/internal/models/entities"
)

func strPtr(s string) *string {
	return &s
}

func TestDefaultTheme_AllFieldsDefault(t *testing.T) {
	theme := DefaultTheme()
	description := theme.Describe()
	lines := strings.Split(strings.TrimSuffix(description, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("Expected 9 lines, got %d: %q", len(lines), description)
	}
	for _, line := range lines {
		if !strings.HasSuffix(line, "(default)") {
			t.Errorf("Expected default annotation on %q", line)
		}
	}
}

func TestThemeFromRow_NilRow(t *testing.T) {
	theme := ThemeFromRow(nil)
	if theme.Important.Effective() != DefaultImportant {
		t.Errorf("Expected default important color, got %v", theme.Important.Effective())
	}
	if theme.Font.Effective() != DefaultFont {
		t.Errorf("Expected default font, got %s", theme.Font.Effective())
	}
}

func TestThemeFromRow_FieldIndependence(t *testing.T) {
	// Setting one field must not disturb any other field's default.
	row := &entities.CustomCard{Border: strPtr("#123456")}
	theme := ThemeFromRow(row)

	if theme.Border.Effective() != NewColor(0x12, 0x34, 0x56) {
		t.Errorf("Expected stored border, got %v", theme.Border.Effective())
	}
	if theme.Border.IsDefault() {
		t.Error("Stored border must not count as default")
	}
	if theme.Background.Effective() != DefaultBackground {
		t.Errorf("Expected default background, got %v", theme.Background.Effective())
	}
	if !theme.Background.IsDefault() {
		t.Error("Unset background must count as default")
	}
}

func TestThemeFromRow_UnparseableValueDegrades(t *testing.T) {
	row := &entities.CustomCard{
		Important: strPtr("not-a-color"),
		Rank:      strPtr("#00FF00"),
	}
	theme := ThemeFromRow(row)

	if theme.Important.Effective() != DefaultImportant {
		t.Errorf("Expected unparseable value to fall back to default, got %v", theme.Important.Effective())
	}
	if theme.Rank.Effective() != NewColor(0, 255, 0) {
		t.Errorf("Expected valid sibling field to survive, got %v", theme.Rank.Effective())
	}
}

func TestColorField_ExplicitDefaultAnnotated(t *testing.T) {
	// A stored value equal to the default still reads as default.
	value := DefaultRank
	field := ColorField{Label: "Rank", Value: &value, Default: DefaultRank}
	if !field.IsDefault() {
		t.Error("Expected value equal to default to count as default")
	}
	if !strings.HasSuffix(field.Format(), "(default)") {
		t.Errorf("Expected default annotation, got %q", field.Format())
	}
}

func TestThemeDescribe_CustomFieldNotAnnotated(t *testing.T) {
	row := &entities.CustomCard{Level: strPtr("#010203"), Font: strPtr("Mojang")}
	description := ThemeFromRow(row).Describe()

	if !strings.Contains(description, "Level: `#010203`\n") {
		t.Errorf("Expected plain listing for custom level color, got %q", description)
	}
	if strings.Contains(description, "Level: `#010203` (default)") {
		t.Error("Custom level color must not be annotated as default")
	}
	if !strings.Contains(description, "Font: `Mojang`\n") && !strings.HasSuffix(description, "Font: `Mojang`\n") {
		t.Errorf("Expected custom font in listing, got %q", description)
	}
}

func TestValidFont(t *testing.T) {
	for _, font := range Fonts {
		if !ValidFont(font) {
			t.Errorf("Expected %q to be valid", font)
		}
	}
	if ValidFont("Comic Sans") {
		t.Error("Expected unknown font to be rejected")
	}
	if ValidFont("roboto") {
		t.Error("Font names are case sensitive")
	}
}

package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestIsValidHexColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		// Valid 6-char hex colors
		{"valid uppercase", "#FF5500", true},
		{"valid lowercase", "#aabbcc", true},
		{"valid mixed case", "#AbCdEf", true},
		{"valid all zeros", "#000000", true},
		{"valid all Fs", "#FFFFFF", true},

		// Valid 8-char hex colors with alpha
		{"valid with alpha 80", "#00000080", true},
		{"valid with alpha FF", "#FF5500FF", true},
		{"valid with alpha 00", "#aabbcc00", true},

		// Invalid formats - wrong length
		{"invalid 3-char", "#FFF", false},
		{"invalid 4-char", "#FFFF", false},
		{"invalid 5-char", "#FF550", false},
		{"invalid 7-char", "#FF55001", false},
		{"invalid 9-char", "#FF5500801", false},

		// Invalid formats - no hash
		{"no hash 6-char", "FF5500", false},
		{"no hash 8-char", "FF550080", false},

		// Invalid formats - invalid characters
		{"invalid char G", "#GGGGGG", false},
		{"invalid char Z", "#ZZZZZZ", false},
		{"invalid char space", "#FF 550", false},
		{"invalid char dash", "#FF-550", false},

		// Edge cases
		{"empty string", "", false},
		{"just hash", "#", false},
		{"very long", "#FF5500FF5500FF5500", false},
		{"hash only no digits", "#XXXXXX", false},

		// Boundary cases
		{"exactly 6 hex digits", "#123456", true},
		{"exactly 8 hex digits", "#12345678", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsValidHexColor(tt.input)
			if got != tt.valid {
				t.Errorf("IsValidHexColor(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestApplyTheme(t *testing.T) {
	defer ApplyTheme(DefaultThemeName)

	ApplyTheme("reef")
	if got := GetCurrentThemeName(); got != "reef" {
		t.Errorf("current theme = %q, want reef", got)
	}
	if Primary != lipgloss.Color(ReefTheme.Colors.Primary) {
		t.Errorf("Primary = %v, want %v", Primary, ReefTheme.Colors.Primary)
	}

	ApplyTheme("no-such-theme")
	if got := GetCurrentThemeName(); got != DefaultThemeName {
		t.Errorf("unknown theme should fall back, got %q", got)
	}
}

func TestApplyThemeColors_InvalidColorFallsBack(t *testing.T) {
	defer ApplyTheme(DefaultThemeName)

	theme := ReefTheme
	theme.Colors.Error = "red"
	ApplyThemeColors(theme)
	if Error != lipgloss.Color(OceanTheme.Colors.Error) {
		t.Errorf("Error = %v, want default", Error)
	}
}

func TestListThemes(t *testing.T) {
	got := ListThemes()
	want := []string{"abyss", "ocean", "reef"}
	if len(got) != len(want) {
		t.Fatalf("ListThemes() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ListThemes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReadableOn(t *testing.T) {
	if got := ReadableOn(lipgloss.Color("#FFFFFF")); got != lipgloss.Color("#000000") {
		t.Errorf("on white = %v, want black", got)
	}
	if got := ReadableOn(lipgloss.Color("#0B1724")); got != lipgloss.Color("#FFFFFF") {
		t.Errorf("on dark = %v, want white", got)
	}
}

func TestHexToRGB(t *testing.T) {
	if got := HexToRGB("#FF8000"); got != (RGB{255, 128, 0}) {
		t.Errorf("HexToRGB = %+v", got)
	}
	if got := HexToRGB("nope"); got != (RGB{}) {
		t.Errorf("invalid hex = %+v, want zero", got)
	}
}

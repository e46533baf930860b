package styles

import (
	"regexp"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// DefaultThemeName is applied at startup and for unknown names.
const DefaultThemeName = "ocean"

// themeMu protects access to themeRegistry and currentTheme for thread safety
var themeMu sync.RWMutex

// hexColorRegex validates hex color codes (#RRGGBB or #RRGGBBAA with alpha)
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?$`)

// ColorPalette holds all theme colors
type ColorPalette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`

	Success string `json:"success"`
	Warning string `json:"warning"`
	Error   string `json:"error"`
	Info    string `json:"info"`

	TextPrimary   string `json:"textPrimary"`
	TextSecondary string `json:"textSecondary"`
	TextMuted     string `json:"textMuted"`
	TextSubtle    string `json:"textSubtle"`

	BgPrimary   string `json:"bgPrimary"`
	BgSecondary string `json:"bgSecondary"`
	BgTertiary  string `json:"bgTertiary"`
	BgOverlay   string `json:"bgOverlay"`

	BorderNormal string `json:"borderNormal"`
	BorderActive string `json:"borderActive"`
	BorderMuted  string `json:"borderMuted"`

	ToastSuccessText string `json:"toastSuccessText"`
	ToastErrorText   string `json:"toastErrorText"`
}

// Theme represents a complete theme configuration
type Theme struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"displayName"`
	Colors      ColorPalette `json:"colors"`
}

var (
	// OceanTheme is the default blue-green dark theme.
	OceanTheme = Theme{
		Name:        "ocean",
		DisplayName: "Ocean",
		Colors: ColorPalette{
			Primary:   "#0EA5E9",
			Secondary: "#14B8A6",
			Accent:    "#F59E0B",

			Success: "#10B981",
			Warning: "#F59E0B",
			Error:   "#EF4444",
			Info:    "#38BDF8",

			TextPrimary:   "#F0F9FF",
			TextSecondary: "#BAE6FD",
			TextMuted:     "#7DA3B8",
			TextSubtle:    "#4B6B7F",

			BgPrimary:   "#0B1724",
			BgSecondary: "#102A3F",
			BgTertiary:  "#1C3B55",
			BgOverlay:   "#00000080",

			BorderNormal: "#1E4A66",
			BorderActive: "#0EA5E9",
			BorderMuted:  "#14324A",

			ToastSuccessText: "#000000",
			ToastErrorText:   "#FFFFFF",
		},
	}

	// AbyssTheme is a low-contrast deep blue theme.
	AbyssTheme = Theme{
		Name:        "abyss",
		DisplayName: "Abyss",
		Colors: ColorPalette{
			Primary:   "#6366F1",
			Secondary: "#3B82F6",
			Accent:    "#A78BFA",

			Success: "#22C55E",
			Warning: "#EAB308",
			Error:   "#F43F5E",
			Info:    "#60A5FA",

			TextPrimary:   "#E0E7FF",
			TextSecondary: "#A5B4FC",
			TextMuted:     "#6B7280",
			TextSubtle:    "#374151",

			BgPrimary:   "#030712",
			BgSecondary: "#0F172A",
			BgTertiary:  "#1E293B",
			BgOverlay:   "#000000A0",

			BorderNormal: "#1E293B",
			BorderActive: "#6366F1",
			BorderMuted:  "#111827",

			ToastSuccessText: "#000000",
			ToastErrorText:   "#FFFFFF",
		},
	}

	// ReefTheme is a light theme.
	ReefTheme = Theme{
		Name:        "reef",
		DisplayName: "Reef",
		Colors: ColorPalette{
			Primary:   "#0369A1",
			Secondary: "#0F766E",
			Accent:    "#EA580C",

			Success: "#15803D",
			Warning: "#CA8A04",
			Error:   "#DC2626",
			Info:    "#0284C7",

			TextPrimary:   "#0C1A25",
			TextSecondary: "#1E4A66",
			TextMuted:     "#52707F",
			TextSubtle:    "#94A3B8",

			BgPrimary:   "#F8FAFC",
			BgSecondary: "#E0F2FE",
			BgTertiary:  "#BAE6FD",
			BgOverlay:   "#FFFFFF80",

			BorderNormal: "#94A3B8",
			BorderActive: "#0369A1",
			BorderMuted:  "#CBD5E1",

			ToastSuccessText: "#FFFFFF",
			ToastErrorText:   "#FFFFFF",
		},
	}
)

// themeRegistry holds all available themes
var themeRegistry = map[string]Theme{
	"ocean": OceanTheme,
	"abyss": AbyssTheme,
	"reef":  ReefTheme,
}

// currentTheme tracks the active theme name
var currentTheme = DefaultThemeName

// IsValidHexColor checks if a string is a valid hex color code (#RRGGBB or #RRGGBBAA)
func IsValidHexColor(hex string) bool {
	return hexColorRegex.MatchString(hex)
}

// IsValidTheme checks if a theme name exists in the registry
func IsValidTheme(name string) bool {
	themeMu.RLock()
	defer themeMu.RUnlock()
	_, ok := themeRegistry[name]
	return ok
}

// GetTheme returns a theme by name, or the default theme if not found
func GetTheme(name string) Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	if theme, ok := themeRegistry[name]; ok {
		return theme
	}
	return OceanTheme
}

// GetCurrentThemeName returns the name of the currently active theme
func GetCurrentThemeName() string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// ListThemes returns the names of all available themes in sorted order
func ListThemes() []string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	names := make([]string, 0, len(themeRegistry))
	for name := range themeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyTheme applies a theme by name, updating all style variables.
// Unknown names fall back to the default theme.
func ApplyTheme(name string) {
	if !IsValidTheme(name) {
		name = DefaultThemeName
	}
	ApplyThemeColors(GetTheme(name))
	themeMu.Lock()
	currentTheme = name
	themeMu.Unlock()
}

// ApplyThemeColors sets the palette variables from theme and rebuilds
// every style. Invalid colors keep the default theme's value.
func ApplyThemeColors(theme Theme) {
	c := theme.Colors
	d := OceanTheme.Colors
	color := func(v, fallback string) lipgloss.Color {
		if IsValidHexColor(v) {
			return lipgloss.Color(v)
		}
		return lipgloss.Color(fallback)
	}

	Primary = color(c.Primary, d.Primary)
	Secondary = color(c.Secondary, d.Secondary)
	Accent = color(c.Accent, d.Accent)

	Success = color(c.Success, d.Success)
	Warning = color(c.Warning, d.Warning)
	Error = color(c.Error, d.Error)
	Info = color(c.Info, d.Info)

	TextPrimary = color(c.TextPrimary, d.TextPrimary)
	TextSecondary = color(c.TextSecondary, d.TextSecondary)
	TextMuted = color(c.TextMuted, d.TextMuted)
	TextSubtle = color(c.TextSubtle, d.TextSubtle)

	BgPrimary = color(c.BgPrimary, d.BgPrimary)
	BgSecondary = color(c.BgSecondary, d.BgSecondary)
	BgTertiary = color(c.BgTertiary, d.BgTertiary)
	BgOverlay = color(c.BgOverlay, d.BgOverlay)

	BorderNormal = color(c.BorderNormal, d.BorderNormal)
	BorderActive = color(c.BorderActive, d.BorderActive)
	BorderMuted = color(c.BorderMuted, d.BorderMuted)

	ToastSuccessTextColor = color(c.ToastSuccessText, d.ToastSuccessText)
	ToastErrorTextColor = color(c.ToastErrorText, d.ToastErrorText)

	rebuildStyles()
}

package styles

import "github.com/charmbracelet/lipgloss"

// Color palette, replaced by ApplyTheme.
var (
	// Brand colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// Text colors
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color
	TextSubtle    lipgloss.Color

	// Background colors
	BgPrimary   lipgloss.Color
	BgSecondary lipgloss.Color
	BgTertiary  lipgloss.Color
	BgOverlay   lipgloss.Color

	// Border colors
	BorderNormal lipgloss.Color
	BorderActive lipgloss.Color
	BorderMuted  lipgloss.Color

	ToastSuccessTextColor lipgloss.Color
	ToastErrorTextColor   lipgloss.Color
)

// Layout styles
var (
	// Sidebar panel
	Sidebar lipgloss.Style

	// Header bar with the app title
	Header lipgloss.Style

	// Note cards
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardSkeleton lipgloss.Style

	// Editor modal frame
	ModalBox lipgloss.Style

	// Error banner above the grid
	ErrorBanner lipgloss.Style

	// Footer with key hints
	Footer lipgloss.Style
)

// Text styles
var (
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Body      lipgloss.Style
	Muted     lipgloss.Style
	Subtle    lipgloss.Style
	KeyHint   lipgloss.Style
	Logo      lipgloss.Style
	FieldName lipgloss.Style
)

// Badges and toasts
var (
	BadgeOnline  lipgloss.Style
	BadgeOffline lipgloss.Style
	BadgeTime    lipgloss.Style

	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
)

// Buttons
var (
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style
	ButtonDanger   lipgloss.Style
)

func init() {
	ApplyTheme(DefaultThemeName)
}

// rebuildStyles recreates all lipgloss styles with current colors.
func rebuildStyles() {
	Sidebar = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderNormal).
		Padding(0, 1)

	Header = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(BgSecondary).
		Padding(0, 1)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderNormal).
		Padding(0, 1)

	CardSelected = Card.
		BorderForeground(BorderActive)

	CardSkeleton = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderMuted).
		Foreground(TextSubtle).
		Padding(0, 1)

	ModalBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderActive).
		Padding(1, 2)

	ErrorBanner = lipgloss.NewStyle().
		Foreground(ReadableOn(Error)).
		Background(Error).
		Padding(0, 1)

	Footer = lipgloss.NewStyle().
		Foreground(TextMuted)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextSecondary)

	Body = lipgloss.NewStyle().
		Foreground(TextPrimary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Subtle = lipgloss.NewStyle().
		Foreground(TextSubtle)

	KeyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgTertiary).
		Padding(0, 1)

	Logo = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	FieldName = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true)

	BadgeOnline = lipgloss.NewStyle().
		Foreground(ReadableOn(Success)).
		Background(Success).
		Padding(0, 1)

	BadgeOffline = lipgloss.NewStyle().
		Foreground(ReadableOn(Warning)).
		Background(Warning).
		Padding(0, 1)

	BadgeTime = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	ToastSuccess = lipgloss.NewStyle().
		Foreground(ToastSuccessTextColor).
		Background(Success).
		Padding(0, 1)

	ToastError = lipgloss.NewStyle().
		Foreground(ToastErrorTextColor).
		Background(Error).
		Padding(0, 1)

	Button = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(BgTertiary).
		Padding(0, 2)

	ButtonFocused = lipgloss.NewStyle().
		Foreground(ReadableOn(Primary)).
		Background(Primary).
		Bold(true).
		Padding(0, 2)

	ButtonDisabled = lipgloss.NewStyle().
		Foreground(TextSubtle).
		Background(BgSecondary).
		Padding(0, 2)

	ButtonDanger = lipgloss.NewStyle().
		Foreground(ReadableOn(Error)).
		Background(Error).
		Bold(true).
		Padding(0, 2)
}

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/ocean-notes/internal/styles"
)

// AppTitle is shown in the header bar.
const AppTitle = "Ocean Notes"

// Connection badge labels.
const (
	BadgeConnected = "API Connected"
	BadgeOffline   = "Offline mode"
)

// RenderHeader draws the title bar with the connection badge on the right.
// badge is one of the Badge labels, or "" before the first load.
func RenderHeader(width int, badge string) string {
	title := styles.Logo.Render("≋ " + AppTitle)

	var b string
	switch badge {
	case BadgeConnected:
		b = styles.BadgeOnline.Render(badge)
	case BadgeOffline:
		b = styles.BadgeOffline.Render(badge)
	}

	inner := max(0, width-2)
	gap := max(1, inner-lipgloss.Width(title)-lipgloss.Width(b))
	return styles.Header.Width(width).Render(title + strings.Repeat(" ", gap) + b)
}

// RenderErrorBanner draws the error message above the grid, or "" when
// there is none.
func RenderErrorBanner(width int, message, dismissKey string) string {
	if message == "" {
		return ""
	}
	text := "⚠ " + message
	if dismissKey != "" {
		text += "  (" + dismissKey + " to dismiss)"
	}
	return styles.ErrorBanner.Width(width).Render(text)
}

// RenderToast draws a toast message.
func RenderToast(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ToastError.Render(message)
	}
	return styles.ToastSuccess.Render(message)
}

// RenderFooter draws key hints with an optional toast on the right.
func RenderFooter(width int, bindings []key.Binding, toast string) string {
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		hints = append(hints, styles.KeyHint.Render(h.Key)+" "+styles.Footer.Render(h.Desc))
	}
	left := strings.Join(hints, "  ")
	if toast == "" {
		return lipgloss.NewStyle().MaxWidth(width).Render(left)
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(toast)
	if gap < 1 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, toast)
	}
	return left + strings.Repeat(" ", gap) + toast
}

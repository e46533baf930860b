// Package ui renders the notes screen: sidebar, card grid, editor modal and
// the dialogs drawn over them. Components hold view state only; every
// change to the notes goes through the app.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/ocean-notes/internal/styles"
)

// dimStyle is the style applied to the screen behind a modal. Existing ANSI
// codes are stripped first because SGR 2 (faint) does not reliably combine
// with colors in most terminals.
func dimStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.TextSubtle)
}

// maxLineWidth returns the maximum visual width of the given lines.
func maxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// dimLine strips ANSI codes and applies the dim style.
func dimLine(s string) string {
	return dimStyle().Render(ansi.Strip(s))
}

// compositeRow overlays modalLine onto bgLine at column modalStartX:
// dimmed left segment, modal line, dimmed right segment.
func compositeRow(bgLine, modalLine string, modalStartX, modalWidth, totalWidth int) string {
	var b strings.Builder
	dim := dimStyle()

	stripped := ansi.Strip(bgLine)
	bgWidth := ansi.StringWidth(stripped)

	if modalStartX > 0 {
		left := ansi.Truncate(stripped, modalStartX, "")
		b.WriteString(dim.Render(left))
		if w := ansi.StringWidth(left); w < modalStartX {
			b.WriteString(strings.Repeat(" ", modalStartX-w))
		}
	}

	b.WriteString(modalLine)

	rightStart := modalStartX + modalWidth
	if rightStart < totalWidth && bgWidth > rightStart {
		b.WriteString(dim.Render(ansi.Cut(stripped, rightStart, bgWidth)))
	}
	return b.String()
}

// OverlayModal centers modal over a dimmed background of width x height.
func OverlayModal(background, modal string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	modalLines := strings.Split(modal, "\n")

	modalWidth := maxLineWidth(modalLines)
	modalHeight := len(modalLines)
	startX := max(0, (width-modalWidth)/2)
	startY := max(0, (height-modalHeight)/2)

	rows := height
	if rows <= 0 {
		rows = len(bgLines)
	}
	out := make([]string, 0, rows)
	for y := 0; y < rows; y++ {
		bgLine := ""
		if y < len(bgLines) {
			bgLine = bgLines[y]
		}
		if i := y - startY; i >= 0 && i < modalHeight {
			out = append(out, compositeRow(bgLine, modalLines[i], startX, modalWidth, width))
		} else {
			out = append(out, dimLine(bgLine))
		}
	}
	return strings.Join(out, "\n")
}

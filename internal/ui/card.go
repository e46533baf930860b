package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/ocean-notes/internal/note"
	"github.com/marcus/ocean-notes/internal/styles"
)

const (
	// CardHeight is the rendered height of a card, borders included.
	CardHeight = 7

	cardExcerptLines = 3
	cardFrameWidth   = 4 // border + padding
	emptyExcerpt     = "No content yet"
	updatedLayout    = "Jan 2, 2006 3:04 PM"
)

// UpdatedLabel is the badge text for a note's last update.
func UpdatedLabel(t time.Time) string {
	if t.IsZero() {
		return "Updated just now"
	}
	return "Updated " + t.Local().Format(updatedLayout)
}

// excerptLines wraps the card excerpt into at most cardExcerptLines lines
// of width cells. Whitespace runs collapse to one space.
func excerptLines(content string, width int) []string {
	text := oneLine(note.Excerpt(content))
	if text == "" {
		return []string{emptyExcerpt}
	}
	lines := strings.Split(ansi.Wrap(text, width, ""), "\n")
	if len(lines) > cardExcerptLines {
		lines = lines[:cardExcerptLines]
		last := lines[cardExcerptLines-1]
		lines[cardExcerptLines-1] = note.TruncateWidth(last+" …", width)
	}
	return lines
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RenderCard draws one note as a bordered card width cells wide.
func RenderCard(n note.Note, width int, selected bool) string {
	inner := max(1, width-cardFrameWidth)

	title := styles.Title.Render(note.TruncateWidth(oneLine(n.DisplayTitle()), inner))

	excerpt := excerptLines(n.Content, inner)
	body := make([]string, cardExcerptLines)
	for i := range body {
		if i < len(excerpt) {
			body[i] = excerpt[i]
		}
	}
	bodyStyle := styles.Body
	if strings.TrimSpace(n.Content) == "" {
		bodyStyle = styles.Muted
	}

	badge := styles.BadgeTime.Render(note.TruncateWidth(UpdatedLabel(n.UpdatedAt), inner))

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		bodyStyle.Render(strings.Join(body, "\n")),
		badge,
	)

	style := styles.Card
	if selected {
		style = styles.CardSelected
	}
	return style.Width(width - 2).Render(content)
}

// RenderSkeletonCard draws a placeholder card shown while notes load.
func RenderSkeletonCard(width int) string {
	inner := max(1, width-cardFrameWidth)
	bar := func(frac float64) string {
		return strings.Repeat("▒", max(1, int(float64(inner)*frac)))
	}
	content := strings.Join([]string{
		bar(0.5),
		bar(1),
		bar(0.83),
		bar(0.66),
		"",
	}, "\n")
	return styles.CardSkeleton.Width(width - 2).Render(content)
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/ocean-notes/internal/note"
	"github.com/marcus/ocean-notes/internal/styles"
)

// SkeletonCount is the number of placeholder cards shown while loading.
const SkeletonCount = 6

const (
	gridGap          = 1
	twoColumnWidth   = 60
	threeColumnWidth = 100
)

// Columns returns how many cards fit side by side in width cells.
func Columns(width int) int {
	switch {
	case width >= threeColumnWidth:
		return 3
	case width >= twoColumnWidth:
		return 2
	default:
		return 1
	}
}

// Grid lays out note cards in rows and keeps the selection visible.
type Grid struct {
	width  int
	height int
	cursor int
	offset int // first visible row
}

// SetSize sets the area available to the grid.
func (g *Grid) SetSize(width, height int) {
	g.width, g.height = width, height
}

// Cursor returns the index of the selected card.
func (g *Grid) Cursor() int { return g.cursor }

// SetCursor selects card i, clamped to count.
func (g *Grid) SetCursor(i, count int) {
	g.cursor = i
	g.Clamp(count)
}

// Clamp keeps the cursor inside a list of count cards.
func (g *Grid) Clamp(count int) {
	if g.cursor >= count {
		g.cursor = count - 1
	}
	if g.cursor < 0 {
		g.cursor = 0
	}
	g.scrollToCursor()
}

// Move shifts the cursor by dx columns and dy rows.
func (g *Grid) Move(dx, dy, count int) {
	if count == 0 {
		return
	}
	cols := Columns(g.width)
	next := g.cursor + dx + dy*cols
	if dx != 0 && next/cols != g.cursor/cols {
		// Horizontal moves stay on the current row.
		return
	}
	if next < 0 || next >= count {
		if dy == 0 {
			return
		}
		// Vertical moves past the ends land on the first or last card.
		next = min(max(next, 0), count-1)
	}
	g.cursor = next
	g.scrollToCursor()
}

func (g *Grid) visibleRows() int {
	return max(1, g.height/(CardHeight+gridGap))
}

func (g *Grid) scrollToCursor() {
	row := g.cursor / Columns(g.width)
	rows := g.visibleRows()
	if row < g.offset {
		g.offset = row
	}
	if row >= g.offset+rows {
		g.offset = row - rows + 1
	}
}

func (g *Grid) cardWidth(cols int) int {
	return max(12, (g.width-gridGap*(cols-1))/cols)
}

// View renders the grid for notes. loading shows placeholders and an empty
// list shows the empty state with hint underneath.
func (g *Grid) View(notes []note.Note, loading bool, hint string) string {
	cols := Columns(g.width)
	cw := g.cardWidth(cols)

	if loading {
		cards := make([]string, SkeletonCount)
		for i := range cards {
			cards[i] = RenderSkeletonCard(cw)
		}
		return g.layout(cards, cols)
	}

	if len(notes) == 0 {
		return g.emptyState(hint)
	}

	g.Clamp(len(notes))
	// Render only the visible rows.
	first := g.offset * cols
	last := min(len(notes), first+g.visibleRows()*cols)
	cards := make([]string, 0, last-first)
	for i := first; i < last; i++ {
		cards = append(cards, RenderCard(notes[i], cw, i == g.cursor))
	}
	return g.layout(cards, cols)
}

func (g *Grid) layout(cards []string, cols int) string {
	gap := strings.Repeat(" ", gridGap)
	var rows []string
	for i := 0; i < len(cards); i += cols {
		if i > 0 {
			rows = append(rows, strings.Repeat("\n", gridGap-1))
		}
		end := min(i+cols, len(cards))
		row := make([]string, 0, 2*(end-i))
		for j := i; j < end; j++ {
			if j > i {
				row = append(row, gap)
			}
			row = append(row, cards[j])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (g *Grid) emptyState(hint string) string {
	lines := []string{styles.Body.Render("No notes yet.")}
	if hint != "" {
		lines = append(lines, styles.Muted.Render(hint))
	}
	box := styles.Card.
		Width(max(20, min(g.width, 50)) - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
	return lipgloss.PlaceHorizontal(g.width, lipgloss.Center, box)
}

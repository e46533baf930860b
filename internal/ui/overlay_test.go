package ui

import (
	"strings"
	"testing"
)

func TestMaxLineWidth(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  int
	}{
		{"empty", []string{}, 0},
		{"multiple", []string{"hi", "hello", "hey"}, 5},
		{"with ansi", []string{"\x1b[31mred\x1b[0m"}, 3},
		{"wide runes", []string{"日本"}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := maxLineWidth(tt.lines); got != tt.want {
				t.Errorf("maxLineWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompositeRow_KeepsModalLine(t *testing.T) {
	for _, start := range []int{0, 5, 10} {
		got := compositeRow("background text here", "[EDITOR]", start, 8, 20)
		if !strings.Contains(got, "[EDITOR]") {
			t.Errorf("start %d: modal line missing from %q", start, got)
		}
	}
}

func TestOverlayModal_CentersVertically(t *testing.T) {
	result := OverlayModal("card1\ncard2\ncard3\ncard4\ncard5", "[M]", 10, 5)
	lines := strings.Split(result, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[2], "[M]") {
		t.Errorf("modal not on the middle line: %q", lines[2])
	}
}

func TestOverlayModal_PadsShortBackground(t *testing.T) {
	result := OverlayModal("a\nb", "MODAL", 10, 5)
	lines := strings.Split(result, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if !strings.Contains(result, "MODAL") {
		t.Error("modal not found in result")
	}
}

func TestDimLine_StripsColors(t *testing.T) {
	result := dimLine("\x1b[31mred text\x1b[0m")
	if strings.Contains(result, "\x1b[31m") {
		t.Error("dimLine should strip original ANSI codes")
	}
	if !strings.Contains(result, "red text") {
		t.Error("dimLine should preserve text content")
	}
}

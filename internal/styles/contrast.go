package styles

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// RGB is a color with channels in 0..255.
type RGB struct {
	R, G, B float64
}

// HexToRGB parses #RRGGBB (alpha ignored). Invalid input gives black.
func HexToRGB(hex string) RGB {
	if !IsValidHexColor(hex) {
		return RGB{}
	}
	v, err := strconv.ParseUint(hex[1:7], 16, 32)
	if err != nil {
		return RGB{}
	}
	return RGB{R: float64(v >> 16 & 0xFF), G: float64(v >> 8 & 0xFF), B: float64(v & 0xFF)}
}

var (
	black = RGB{0, 0, 0}
	white = RGB{255, 255, 255}
)

// ReadableOn returns black or white, whichever contrasts more with bg.
func ReadableOn(bg lipgloss.Color) lipgloss.Color {
	c := HexToRGB(string(bg))
	if contrastRatio(black, c) >= contrastRatio(white, c) {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#FFFFFF")
}

func contrastRatio(fg, bg RGB) float64 {
	l1 := relativeLuminance(fg)
	l2 := relativeLuminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(c RGB) float64 {
	r := linearize(c.R / 255.0)
	g := linearize(c.G / 255.0)
	b := linearize(c.B / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/uiregistry/internal/colors"
)

const swatchWidth = 6

// Swatch is one shade of a palette row.
type Swatch struct {
	Label string
	Hex   string
}

// SwatchFromScale prefers the declared hex value and falls back to the rgb
// channels. ok is false when neither parses.
func SwatchFromScale(scale colors.Scale) (Swatch, bool) {
	label := strconv.Itoa(scale.Scale)
	if c, err := colorful.Hex(scale.Hex); err == nil {
		return Swatch{Label: label, Hex: c.Hex()}, true
	}

	channel, ok := colors.RGBChannel(scale.RGB)
	if !ok {
		return Swatch{Label: label}, false
	}
	parts := strings.Fields(channel)
	var rgb [3]float64
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return Swatch{Label: label}, false
		}
		rgb[i] = float64(v) / 255
	}
	return Swatch{Label: label, Hex: colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}.Clamped().Hex()}, true
}

// Contrast picks a readable foreground for text drawn on hex.
func Contrast(hex string) lipgloss.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.Color("#000000")
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return lipgloss.Color("#020617")
	}
	return lipgloss.Color("#f8fafc")
}

// PaletteRow renders name followed by one block per swatch.
func PaletteRow(name string, swatches []Swatch) string {
	label := lipgloss.NewStyle().Width(10).Bold(true).Render(name)

	blocks := make([]string, 0, len(swatches))
	for _, s := range swatches {
		style := lipgloss.NewStyle().Width(swatchWidth).Align(lipgloss.Center)
		if s.Hex != "" {
			style = style.Background(lipgloss.Color(s.Hex)).Foreground(Contrast(s.Hex))
		}
		blocks = append(blocks, style.Render(s.Label))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, append([]string{label}, blocks...)...)
}

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vitalog/internal/ui/theme"
)

var (
	barFill  = lipgloss.NewStyle().Foreground(theme.Sapphire)
	barFull  = lipgloss.NewStyle().Foreground(theme.Green)
	barEmpty = lipgloss.NewStyle().Foreground(theme.Surface1)
)

// ProgressBar renders a fixed-width bar for a completion percentage.
// Percentages above 100 render as a full bar in the done color.
func ProgressBar(percent float64, width int) string {
	if width < 4 {
		width = 4
	}
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	style := barFill
	if percent >= 100 {
		style = barFull
	}
	return style.Render(strings.Repeat("█", filled)) +
		barEmpty.Render(strings.Repeat("░", width-filled))
}

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// Sparkline compresses a series into one glyph per value, scaled to
// the series maximum. An all-zero series renders as a flat line.
func Sparkline(values []float64) string {
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	var sb strings.Builder
	for _, v := range values {
		idx := 0
		if max > 0 {
			idx = int(v / max * float64(len(sparkLevels)-1))
		}
		sb.WriteRune(sparkLevels[idx])
	}
	return barFill.Render(sb.String())
}

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	gaugeFilled = "█"
	gaugeEmpty  = "░"

	defaultGaugeWidth = 20
	gaugeLabelWidth   = 15
)

// Gauge renders a horizontal usage bar. The fill color follows the
// percentage: green below 50%, orange below 75%, red above.
type Gauge struct {
	Width       int    // bar width in cells, default 20
	Label       string // optional left label, padded to a fixed column
	ShowPercent bool   // append the percentage after the bar
}

// Render draws the bar for value out of maxValue. A non-positive maximum
// renders as empty rather than dividing by zero.
func (g Gauge) Render(value, maxValue float64) string {
	width := g.Width
	if width <= 0 {
		width = defaultGaugeWidth
	}

	percent := 0.0
	if maxValue > 0 {
		percent = value / maxValue * 100
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(float64(width) * percent / 100)
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(gaugeFilled, filled) + strings.Repeat(gaugeEmpty, width-filled)

	style := lipgloss.NewStyle().Foreground(gaugeColor(percent))

	var b strings.Builder
	if g.Label != "" {
		fmt.Fprintf(&b, "%-*s", gaugeLabelWidth, g.Label)
	}
	b.WriteString("[")
	b.WriteString(style.Render(bar))
	b.WriteString("]")
	if g.ShowPercent {
		fmt.Fprintf(&b, " %5.1f%%", percent)
	}
	return b.String()
}

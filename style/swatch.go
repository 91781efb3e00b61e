package style

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/montre/themecfg/color"
)

// lightThreshold is the CIE L* above which a swatch gets a dark label.
const lightThreshold = 0.6

// Swatch renders label on a block of the given hex color, with a label color
// readable against it. Invalid colors render the label unstyled.
func Swatch(hex, label string, width int) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return label
	}
	return Colored(LabelColor(c), lipgloss.Color(c.Hex())).
		Width(width).
		Padding(0, 1).
		Render(label)
}

// LabelColor picks the label foreground for a swatch background.
func LabelColor(background colorful.Color) lipgloss.Color {
	l, _, _ := background.Lab()
	if l > lightThreshold {
		return color.OnLight
	}
	return color.OnDark
}

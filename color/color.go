// Package color provides the terminal palette used for CLI output.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI colors.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
)

// High-intensity ANSI colors.
var (
	HiPurple = New("13")
	HiCyan   = New("14")
)

// Swatch label colors, picked by the luminance of the swatch behind them.
var (
	OnLight = New("#0f172a")
	OnDark  = New("#f8fafc")
)

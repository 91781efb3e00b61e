// Package theme loads, validates and inspects theme configuration documents:
// the design-token extensions (colors, font families, animations) and the
// content globs a utility-CSS generator scans for class names.
package theme

import (
	"maps"
	"slices"
)

// Top-level document keys.
const (
	KeyContent = "content"
	KeyTheme   = "theme"
	KeyExtend  = "extend"
	KeyPlugins = "plugins"

	KeyColors     = "colors"
	KeyFontFamily = "fontFamily"
	KeyAnimation  = "animation"
)

// Config is a loaded theme configuration document. It is never mutated after
// Load returns.
type Config struct {
	// Source is the file the document was read from, empty for in-memory input.
	Source string

	ContentGlobs []string
	Colors       map[string]ColorValue
	FontFamilies map[string][]string
	Animations   map[string]Animation
	Plugins      []string
}

// New returns an empty Config with all collections allocated.
func New() *Config {
	return &Config{
		ContentGlobs: []string{},
		Colors:       make(map[string]ColorValue),
		FontFamilies: make(map[string][]string),
		Animations:   make(map[string]Animation),
		Plugins:      []string{},
	}
}

// Tokens returns the extension tokens of the document as a TokenSet.
func (c *Config) Tokens() TokenSet {
	return TokenSet{
		Colors:       cloneColors(c.Colors),
		FontFamilies: cloneFonts(c.FontFamilies),
		Animations:   maps.Clone(c.Animations),
	}.normalized()
}

// Equal reports structural equality, ignoring Source.
func (c *Config) Equal(other *Config) bool {
	return slices.Equal(c.ContentGlobs, other.ContentGlobs) &&
		slices.Equal(c.Plugins, other.Plugins) &&
		c.Tokens().Equal(other.Tokens())
}

// Package tokens provides the base design tokens that theme extensions are merged onto.
package tokens

import (
	_ "embed"
	"fmt"

	"github.com/montre/themecfg/constant"
	"github.com/montre/themecfg/theme"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

//go:embed base.json
var baseJSON []byte

// base is parsed once; callers only ever see clones of it.
var base = lo.Must(parse(baseJSON, theme.FormatJSON, "base.json"))

// Default returns a fresh copy of the built-in base token set.
func Default() theme.TokenSet {
	return base.Clone()
}

// Load reads a base token file. Base files are always validated strictly.
func Load(fs afero.Fs, path string) (theme.TokenSet, error) {
	format, err := theme.FormatOf(path)
	if err != nil {
		return theme.TokenSet{}, fmt.Errorf("base tokens %s: %w", path, err)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return theme.TokenSet{}, fmt.Errorf("read base tokens: %w", err)
	}
	return parse(data, format, path)
}

// Resolve maps the tokens.base setting to a token set: "default", "none" or a file path.
func Resolve(fs afero.Fs, base string) (theme.TokenSet, error) {
	switch base {
	case "", constant.DefaultBaseTokens:
		return Default(), nil
	case constant.NoBaseTokens:
		return theme.NewTokenSet(), nil
	default:
		return Load(fs, base)
	}
}

func parse(data []byte, format theme.Format, file string) (theme.TokenSet, error) {
	set, _, err := theme.ParseTokens(data, format, theme.Options{File: file, Strict: true})
	return set, err
}

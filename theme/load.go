package theme

import (
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/montre/themecfg/log"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// Options control how a document is validated.
type Options struct {
	// File names the document in messages. Load fills it from the path.
	File string
	// Strict makes InvalidColorLiteral fatal instead of a warning that drops the entry.
	Strict bool
}

var (
	topLevelKeys = []string{KeyContent, KeyTheme, KeyPlugins}
	themeKeys    = []string{KeyExtend}
	extendKeys   = []string{KeyColors, KeyFontFamily, KeyAnimation}
)

// Load reads and validates the document at path on fs. The format follows the
// file extension.
func Load(fs afero.Fs, file string, options Options) (*Config, Diagnostics, error) {
	if options.File == "" {
		options.File = file
	}

	format, err := FormatOf(file)
	if err != nil {
		return nil, nil, &MalformedConfigError{File: options.File, Reason: err.Error(), Err: err}
	}

	data, err := afero.ReadFile(fs, file)
	if err != nil {
		return nil, nil, fmt.Errorf("read theme config: %w", err)
	}

	log.Debugf("loading %s document %s", format, file)
	return Parse(data, format, options)
}

// Parse validates a document held in memory.
func Parse(data []byte, format Format, options Options) (*Config, Diagnostics, error) {
	tree, err := decodeTree(data, format)
	if err != nil {
		return nil, nil, asMalformed(err, options.File)
	}

	d := &decoder{options: options}
	cfg, err := d.document(tree)
	if err != nil {
		return nil, d.diags, err
	}
	cfg.Source = options.File
	return cfg, d.diags, nil
}

// ParseTokens validates a bare token block, shaped like theme.extend.
func ParseTokens(data []byte, format Format, options Options) (TokenSet, Diagnostics, error) {
	tree, err := decodeTree(data, format)
	if err != nil {
		return TokenSet{}, nil, asMalformed(err, options.File)
	}

	d := &decoder{options: options}
	cfg := New()
	if err := d.extend(cfg, tree, ""); err != nil {
		return TokenSet{}, d.diags, err
	}
	return cfg.Tokens(), d.diags, nil
}

func asMalformed(err error, file string) error {
	var malformed *MalformedConfigError
	if errors.As(err, &malformed) {
		malformed.File = file
		return malformed
	}
	return &MalformedConfigError{File: file, Reason: err.Error(), Err: err}
}

// decoder turns a generic tree into a Config, collecting warnings on the way.
type decoder struct {
	options Options
	diags   Diagnostics
}

func (d *decoder) malformed(keyPath, format string, args ...any) error {
	return &MalformedConfigError{File: d.options.File, Path: keyPath, Reason: fmt.Sprintf(format, args...)}
}

func (d *decoder) unknown(keyPath, key string, known []string) {
	closest := lo.MinBy(known, func(a, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})
	suggestion := ""
	if levenshtein.Distance(key, closest) <= len(closest)/2 {
		suggestion = strings.TrimSuffix(keyPath, key) + closest
	}
	d.diags = append(d.diags, &UnknownKeyError{File: d.options.File, Path: keyPath, Suggestion: suggestion})
}

func (d *decoder) document(tree map[string]any) (*Config, error) {
	cfg := New()

	for _, key := range sortedKeys(tree) {
		if !lo.Contains(topLevelKeys, key) {
			d.unknown(key, key, topLevelKeys)
		}
	}

	content, ok := tree[KeyContent]
	if !ok {
		return nil, d.malformed(KeyContent, "required key is missing")
	}
	globs, err := d.content(content)
	if err != nil {
		return nil, err
	}
	cfg.ContentGlobs = globs

	if raw, ok := tree[KeyTheme]; ok && raw != nil {
		if err := d.theme(cfg, raw); err != nil {
			return nil, err
		}
	}

	if raw, ok := tree[KeyPlugins]; ok && raw != nil {
		plugins, err := d.stringList(KeyPlugins, raw)
		if err != nil {
			return nil, err
		}
		cfg.Plugins = plugins
	}

	return cfg, nil
}

func (d *decoder) content(raw any) ([]string, error) {
	globs, err := d.stringList(KeyContent, raw)
	if err != nil {
		return nil, err
	}
	if len(globs) == 0 {
		return nil, d.malformed(KeyContent, "at least one glob is required")
	}

	for i, glob := range globs {
		keyPath := indexPath(KeyContent, i)
		if glob == "" {
			return nil, d.malformed(keyPath, "glob must not be empty")
		}
		if err := checkRelative(glob); err != nil {
			return nil, d.malformed(keyPath, "%s", err)
		}
	}
	return globs, nil
}

// checkRelative rejects globs that leave the project root.
func checkRelative(glob string) error {
	slashed := strings.ReplaceAll(glob, `\`, "/")
	if path.IsAbs(slashed) || (len(slashed) > 1 && slashed[1] == ':') {
		return fmt.Errorf("glob %q must be relative to the project root", glob)
	}
	cleaned := path.Clean(slashed)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("glob %q escapes the project root", glob)
	}
	return nil
}

func (d *decoder) theme(cfg *Config, raw any) error {
	mapping, ok := raw.(map[string]any)
	if !ok {
		return d.malformed(KeyTheme, "expected a mapping, got %s", typeName(raw))
	}

	for _, key := range sortedKeys(mapping) {
		if !lo.Contains(themeKeys, key) {
			d.unknown(joinPath(KeyTheme, key), key, themeKeys)
		}
	}

	extend, ok := mapping[KeyExtend]
	if !ok || extend == nil {
		return nil
	}
	extendMap, ok := extend.(map[string]any)
	if !ok {
		return d.malformed(joinPath(KeyTheme, KeyExtend), "expected a mapping, got %s", typeName(extend))
	}
	return d.extend(cfg, extendMap, joinPath(KeyTheme, KeyExtend))
}

// extend decodes a token block. prefix is its key path in the document.
func (d *decoder) extend(cfg *Config, mapping map[string]any, prefix string) error {
	for _, key := range sortedKeys(mapping) {
		if !lo.Contains(extendKeys, key) {
			d.unknown(joinPath(prefix, key), key, extendKeys)
		}
	}

	if raw, ok := mapping[KeyColors]; ok && raw != nil {
		if err := d.colors(cfg, raw, joinPath(prefix, KeyColors)); err != nil {
			return err
		}
	}
	if raw, ok := mapping[KeyFontFamily]; ok && raw != nil {
		if err := d.fonts(cfg, raw, joinPath(prefix, KeyFontFamily)); err != nil {
			return err
		}
	}
	if raw, ok := mapping[KeyAnimation]; ok && raw != nil {
		if err := d.animations(cfg, raw, joinPath(prefix, KeyAnimation)); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) colors(cfg *Config, raw any, keyPath string) error {
	palettes, ok := raw.(map[string]any)
	if !ok {
		return d.malformed(keyPath, "expected a mapping of palettes, got %s", typeName(raw))
	}

	for _, name := range sortedKeys(palettes) {
		paletteKey := joinPath(keyPath, name)
		tokenPath := joinPath(KeyColors, name)

		switch value := palettes[name].(type) {
		case string:
			ok, err := d.color(paletteKey, tokenPath, value)
			if err != nil {
				return err
			}
			if ok {
				cfg.Colors[name] = ScalarColor(value)
			}
		case map[string]any:
			shades := make(map[string]string, len(value))
			for _, shade := range sortedKeys(value) {
				leaf, isString := value[shade].(string)
				if !isString {
					return d.malformed(joinPath(paletteKey, shade), "expected a color string, got %s", typeName(value[shade]))
				}
				ok, err := d.color(joinPath(paletteKey, shade), joinPath(tokenPath, shade), leaf)
				if err != nil {
					return err
				}
				if ok {
					shades[shade] = leaf
				}
			}
			if len(shades) > 0 || len(value) == 0 {
				cfg.Colors[name] = ScaleColor(shades)
			}
		default:
			return d.malformed(paletteKey, "expected a color string or a shade mapping, got %s", typeName(value))
		}
	}
	return nil
}

// color validates a leaf. It returns false when the leaf must be omitted.
func (d *decoder) color(keyPath, tokenPath, value string) (bool, error) {
	if IsValidHex(value) {
		return true, nil
	}

	err := &InvalidColorLiteralError{
		File:       d.options.File,
		Key:        keyPath,
		Path:       tokenPath,
		Value:      value,
		Suggestion: suggestHex(value),
	}
	if d.options.Strict {
		return false, err
	}
	log.Warn(err)
	d.diags = append(d.diags, err)
	return false, nil
}

func (d *decoder) fonts(cfg *Config, raw any, keyPath string) error {
	families, ok := raw.(map[string]any)
	if !ok {
		return d.malformed(keyPath, "expected a mapping of font stacks, got %s", typeName(raw))
	}

	for _, alias := range sortedKeys(families) {
		aliasKey := joinPath(keyPath, alias)

		var stack []string
		switch value := families[alias].(type) {
		case string:
			stack = []string{value}
		default:
			s, err := d.stringList(aliasKey, value)
			if err != nil {
				return err
			}
			stack = s
		}

		if len(stack) == 0 {
			return d.malformed(aliasKey, "font stack must not be empty")
		}
		for i, font := range stack {
			if strings.TrimSpace(font) == "" {
				return d.malformed(indexPath(aliasKey, i), "font name must not be empty")
			}
		}
		cfg.FontFamilies[alias] = stack
	}
	return nil
}

func (d *decoder) animations(cfg *Config, raw any, keyPath string) error {
	animations, ok := raw.(map[string]any)
	if !ok {
		return d.malformed(keyPath, "expected a mapping of animation shorthands, got %s", typeName(raw))
	}

	for _, name := range sortedKeys(animations) {
		nameKey := joinPath(keyPath, name)
		shorthand, ok := animations[name].(string)
		if !ok {
			return d.malformed(nameKey, "expected an animation shorthand string, got %s", typeName(animations[name]))
		}

		animation, err := ParseAnimation(shorthand)
		if err != nil {
			return &MalformedConfigError{File: d.options.File, Path: nameKey, Reason: err.Error(), Err: err}
		}
		cfg.Animations[name] = animation
	}
	return nil
}

// stringList decodes a sequence of strings.
func (d *decoder) stringList(keyPath string, raw any) ([]string, error) {
	sequence, ok := raw.([]any)
	if !ok {
		return nil, d.malformed(keyPath, "expected a sequence of strings, got %s", typeName(raw))
	}

	out := make([]string, 0, len(sequence))
	for i, item := range sequence {
		s, ok := item.(string)
		if !ok {
			return nil, d.malformed(indexPath(keyPath, i), "expected a string, got %s", typeName(item))
		}
		out = append(out, s)
	}
	return out, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}

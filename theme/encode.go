package theme

import "slices"

// Document is the persisted shape of a theme configuration, used to publish
// its JSON Schema.
type Document struct {
	Content []string      `json:"content" jsonschema:"required,minItems=1,description=Globs of template and script files scanned for class names relative to the project root"`
	Theme   DocumentTheme `json:"theme,omitempty"`
	Plugins []string      `json:"plugins,omitempty" jsonschema:"description=Build tool plugin references"`
}

// DocumentTheme holds the extension block.
type DocumentTheme struct {
	Extend DocumentExtend `json:"extend,omitempty"`
}

// DocumentExtend lists the token overrides.
type DocumentExtend struct {
	Colors     map[string]ColorValue `json:"colors,omitempty" jsonschema:"description=Named palettes: a color or a scale of shades"`
	FontFamily map[string][]string   `json:"fontFamily,omitempty" jsonschema:"description=Font fallback stacks keyed by alias"`
	Animation  map[string]string     `json:"animation,omitempty" jsonschema:"description=Animation shorthands: keyframes name then duration and timing function"`
}

// Encode serializes cfg. Parsing the output yields a Config equal to cfg.
func Encode(cfg *Config, format Format) ([]byte, error) {
	return encodeTree(cfg.tree(), format)
}

func (c *Config) tree() map[string]any {
	colors := make(map[string]any, len(c.Colors))
	for name, color := range c.Colors {
		colors[name] = color.value()
	}

	fonts := make(map[string]any, len(c.FontFamilies))
	for alias, stack := range c.FontFamilies {
		fonts[alias] = slices.Clone(stack)
	}

	extend := map[string]any{
		KeyColors:     colors,
		KeyFontFamily: fonts,
	}
	if len(c.Animations) > 0 {
		animations := make(map[string]any, len(c.Animations))
		for name, animation := range c.Animations {
			animations[name] = animation.Raw
		}
		extend[KeyAnimation] = animations
	}

	plugins := c.Plugins
	if plugins == nil {
		plugins = []string{}
	}

	return map[string]any{
		KeyContent: slices.Clone(c.ContentGlobs),
		KeyTheme:   map[string]any{KeyExtend: extend},
		KeyPlugins: plugins,
	}
}

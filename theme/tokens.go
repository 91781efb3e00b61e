package theme

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// TokenSet is a full set of design tokens: the base tokens, an extension
// block, or the effective merge of both.
type TokenSet struct {
	Colors       map[string]ColorValue
	FontFamilies map[string][]string
	Animations   map[string]Animation
}

// TokenKind groups flattened tokens.
type TokenKind string

const (
	KindColor      TokenKind = "color"
	KindFontFamily TokenKind = "fontFamily"
	KindAnimation  TokenKind = "animation"
)

// Token is a single flattened design token, e.g. colors.amber.500 = #f59e0b.
type Token struct {
	Path  string    `json:"path"`
	Kind  TokenKind `json:"kind"`
	Value string    `json:"value"`
}

// NewTokenSet returns an empty set.
func NewTokenSet() TokenSet {
	return TokenSet{}.normalized()
}

// MergeWithBase overlays the document's extensions on base. An extension
// replaces the base entry of the same name as a whole: a redefined palette
// does not keep any shade of the base palette. Neither input is modified.
func (c *Config) MergeWithBase(base TokenSet) TokenSet {
	effective := base.Clone()
	for name, color := range c.Colors {
		effective.Colors[name] = color.clone()
	}
	for alias, stack := range c.FontFamilies {
		effective.FontFamilies[alias] = slices.Clone(stack)
	}
	for name, animation := range c.Animations {
		effective.Animations[name] = animation
	}
	return effective
}

// Clone returns a deep copy.
func (s TokenSet) Clone() TokenSet {
	return TokenSet{
		Colors:       cloneColors(s.Colors),
		FontFamilies: cloneFonts(s.FontFamilies),
		Animations:   maps.Clone(s.Animations),
	}.normalized()
}

// Equal reports structural equality.
func (s TokenSet) Equal(other TokenSet) bool {
	return maps.EqualFunc(s.Colors, other.Colors, ColorValue.Equal) &&
		maps.EqualFunc(s.FontFamilies, other.FontFamilies, slices.Equal[[]string]) &&
		maps.EqualFunc(s.Animations, other.Animations, func(a, b Animation) bool {
			return a.Raw == b.Raw
		})
}

// Len is the number of flattened tokens.
func (s TokenSet) Len() int {
	n := len(s.FontFamilies) + len(s.Animations)
	for _, color := range s.Colors {
		if color.Kind() == Scale {
			n += len(color.shades)
		} else {
			n++
		}
	}
	return n
}

// Flatten lists every token, colors first, then font families and animations,
// each sorted by path with shade weights in numeric order.
func (s TokenSet) Flatten() []Token {
	tokens := make([]Token, 0, s.Len())

	for _, name := range sortedKeys(s.Colors) {
		color := s.Colors[name]
		base := joinPath(KeyColors, name)
		if value, ok := color.Scalar(); ok {
			tokens = append(tokens, Token{Path: base, Kind: KindColor, Value: value})
			continue
		}
		for _, shade := range color.ShadeKeys() {
			tokens = append(tokens, Token{Path: joinPath(base, shade), Kind: KindColor, Value: color.shades[shade]})
		}
	}

	for _, alias := range sortedKeys(s.FontFamilies) {
		tokens = append(tokens, Token{
			Path:  joinPath(KeyFontFamily, alias),
			Kind:  KindFontFamily,
			Value: FontStack(s.FontFamilies[alias]),
		})
	}

	for _, name := range sortedKeys(s.Animations) {
		tokens = append(tokens, Token{
			Path:  joinPath(KeyAnimation, name),
			Kind:  KindAnimation,
			Value: s.Animations[name].Raw,
		})
	}

	return tokens
}

// FontStack renders a stack as a CSS font-family value, quoting names with spaces.
func FontStack(stack []string) string {
	names := make([]string, len(stack))
	for i, name := range stack {
		if strings.ContainsAny(name, " \t") && !strings.HasPrefix(name, `"`) {
			name = strconv.Quote(name)
		}
		names[i] = name
	}
	return strings.Join(names, ", ")
}

func (s TokenSet) normalized() TokenSet {
	if s.Colors == nil {
		s.Colors = make(map[string]ColorValue)
	}
	if s.FontFamilies == nil {
		s.FontFamilies = make(map[string][]string)
	}
	if s.Animations == nil {
		s.Animations = make(map[string]Animation)
	}
	return s
}

func cloneColors(colors map[string]ColorValue) map[string]ColorValue {
	out := make(map[string]ColorValue, len(colors))
	for name, color := range colors {
		out[name] = color.clone()
	}
	return out
}

func cloneFonts(fonts map[string][]string) map[string][]string {
	out := make(map[string][]string, len(fonts))
	for alias, stack := range fonts {
		out[alias] = slices.Clone(stack)
	}
	return out
}

// sortedShadeKeys orders numeric shade keys numerically, and other keys after
// them alphabetically.
func sortedShadeKeys(shades map[string]string) []string {
	keys := sortedKeys(shades)
	slices.SortStableFunc(keys, func(a, b string) int {
		na, errA := strconv.ParseFloat(a, 64)
		nb, errB := strconv.ParseFloat(b, 64)
		switch {
		case errA == nil && errB == nil:
			switch {
			case na < nb:
				return -1
			case na > nb:
				return 1
			}
			return 0
		case errA == nil:
			return -1
		case errB == nil:
			return 1
		}
		return strings.Compare(a, b)
	})
	return keys
}

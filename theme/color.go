package theme

import (
	"encoding/json"
	"maps"
	"strings"

	"github.com/invopop/jsonschema"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// ColorKind tells which side of the ColorValue variant is populated.
type ColorKind int

const (
	// Scalar is a single color literal, e.g. black: "#000000".
	Scalar ColorKind = iota
	// Scale is a shade map, e.g. amber: {400: "#fbbf24", 500: "#f59e0b"}.
	Scale
)

func (k ColorKind) String() string {
	if k == Scale {
		return "scale"
	}
	return "scalar"
}

// ColorValue is a palette entry: either a single color or a scale of shades.
type ColorValue struct {
	kind   ColorKind
	scalar string
	shades map[string]string
}

// ScalarColor returns a single-color palette entry.
func ScalarColor(value string) ColorValue {
	return ColorValue{kind: Scalar, scalar: value}
}

// ScaleColor returns a shade-map palette entry. The map is copied.
func ScaleColor(shades map[string]string) ColorValue {
	c := ColorValue{kind: Scale, shades: make(map[string]string, len(shades))}
	maps.Copy(c.shades, shades)
	return c
}

func (c ColorValue) Kind() ColorKind { return c.kind }

// Scalar returns the color literal of a scalar entry.
func (c ColorValue) Scalar() (string, bool) {
	return c.scalar, c.kind == Scalar
}

// Shades returns a copy of the shade map of a scale entry.
func (c ColorValue) Shades() (map[string]string, bool) {
	if c.kind != Scale {
		return nil, false
	}
	return maps.Clone(c.shades), true
}

// Shade looks up a single shade of a scale entry.
func (c ColorValue) Shade(key string) (string, bool) {
	if c.kind != Scale {
		return "", false
	}
	v, ok := c.shades[key]
	return v, ok
}

// ShadeKeys returns the shade keys, numeric keys in numeric order.
func (c ColorValue) ShadeKeys() []string {
	return sortedShadeKeys(c.shades)
}

// Equal reports structural equality.
func (c ColorValue) Equal(other ColorValue) bool {
	if c.kind != other.kind {
		return false
	}
	if c.kind == Scalar {
		return c.scalar == other.scalar
	}
	return maps.Equal(c.shades, other.shades)
}

func (c ColorValue) clone() ColorValue {
	if c.kind == Scale {
		return ScaleColor(c.shades)
	}
	return c
}

// value is the plain encoder form: a string or a map of strings.
func (c ColorValue) value() any {
	if c.kind == Scalar {
		return c.scalar
	}
	out := make(map[string]any, len(c.shades))
	for k, v := range c.shades {
		out[k] = v
	}
	return out
}

func (c ColorValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.value())
}

// JSONSchema describes the variant as a oneOf of hex string and shade map.
func (ColorValue) JSONSchema() *jsonschema.Schema {
	hex := &jsonschema.Schema{
		Type:        "string",
		Pattern:     hexPattern,
		Description: "A #RRGGBB color literal",
	}
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			hex,
			{
				Type:                 "object",
				Description:          "A color scale keyed by shade weight",
				AdditionalProperties: hex,
			},
		},
	}
}

const hexPattern = "^#[0-9a-fA-F]{6}$"

// IsValidHex reports whether s is a #RRGGBB literal.
func IsValidHex(s string) bool {
	_, ok := ParseHex(s)
	return ok
}

// ParseHex parses a #RRGGBB literal. Shorthand (#RGB) and alpha forms are rejected.
func ParseHex(s string) (colorful.Color, bool) {
	if len(s) != 7 || s[0] != '#' {
		return colorful.Color{}, false
	}
	if !isHexDigits(s[1:]) {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

func isHexDigits(s string) bool {
	return s != "" && strings.IndexFunc(s, func(r rune) bool {
		return !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F')
	}) < 0
}

// suggestHex returns the #rrggbb form of any other opaque CSS color literal, or "".
// Bare hex digits without a leading # are words like "bad" or "fade", not colors.
func suggestHex(s string) string {
	if isHexDigits(s) {
		return ""
	}
	c, err := csscolorparser.Parse(s)
	if err != nil || c.A < 1 {
		return ""
	}
	return c.HexString()
}

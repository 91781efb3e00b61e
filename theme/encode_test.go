package theme

import (
	"encoding/json"
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func sample() *Config {
	cfg := New()
	cfg.ContentGlobs = []string{"./templates/**/*.html", "./static/js/**/*.js"}
	cfg.Colors["gold"] = ScaleColor(map[string]string{"500": "#D4AF37", "600": "#b8962e"})
	cfg.Colors["black"] = ScalarColor("#000000")
	cfg.FontFamilies["playfair"] = []string{"Playfair Display", "serif"}
	cfg.Animations["fade-in"] = lo.Must(ParseAnimation("fadeIn 0.8s ease-in-out"))
	cfg.Animations["wiggle"] = lo.Must(ParseAnimation("wiggle 1s cubic-bezier(0.4, 0, 0.6, 1) infinite"))
	cfg.Plugins = []string{"@tailwindcss/typography"}
	return cfg
}

func TestEncode(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		Convey("Given a document encoded as "+string(format), t, func() {
			original := sample()
			data, err := Encode(original, format)
			So(err, ShouldBeNil)

			Convey("Parsing it back should give an equal document", func() {
				decoded, diags, err := Parse(data, format, Options{Strict: true})
				So(err, ShouldBeNil)
				So(diags, ShouldBeEmpty)
				So(decoded.Equal(original), ShouldBeTrue)
			})

			Convey("Encoding the decoded document should be stable", func() {
				decoded, _, err := Parse(data, format, Options{})
				So(err, ShouldBeNil)
				again, err := Encode(decoded, format)
				So(err, ShouldBeNil)
				So(string(again), ShouldEqual, string(data))
			})
		})
	}

	Convey("Given a loaded document", t, func() {
		original, _, err := Parse([]byte(staticDocument), FormatYAML, Options{})
		So(err, ShouldBeNil)

		Convey("It should survive conversion through every format", func() {
			current := original
			for _, format := range []Format{FormatJSON, FormatTOML, FormatYAML} {
				data, err := Encode(current, format)
				So(err, ShouldBeNil)
				current, _, err = Parse(data, format, Options{})
				So(err, ShouldBeNil)
			}
			So(current.Equal(original), ShouldBeTrue)
		})
	})

	Convey("An empty document should still carry the required keys", t, func() {
		cfg := New()
		cfg.ContentGlobs = []string{"*.html"}

		data, err := Encode(cfg, FormatJSON)
		So(err, ShouldBeNil)

		var tree map[string]any
		So(json.Unmarshal(data, &tree), ShouldBeNil)
		So(tree, ShouldContainKey, KeyContent)
		So(tree, ShouldContainKey, KeyPlugins)
		So(tree[KeyTheme].(map[string]any)[KeyExtend], ShouldNotContainKey, KeyAnimation)
	})

	Convey("An unknown format should fail", t, func() {
		_, err := Encode(sample(), Format("ini"))
		So(err, ShouldNotBeNil)
	})
}

func TestSchema(t *testing.T) {
	Convey("Given the reflected document schema", t, func() {
		reflector := &jsonschema.Reflector{ExpandedStruct: true, DoNotReference: true}
		schema := reflector.Reflect(&Document{})

		Convey("content should be required", func() {
			So(schema.Required, ShouldContain, KeyContent)
		})

		Convey("colors should accept a hex string or a shade map", func() {
			theme, ok := schema.Properties.Get(KeyTheme)
			So(ok, ShouldBeTrue)
			extend, ok := theme.Properties.Get(KeyExtend)
			So(ok, ShouldBeTrue)
			colors, ok := extend.Properties.Get(KeyColors)
			So(ok, ShouldBeTrue)
			So(colors.AdditionalProperties.OneOf, ShouldHaveLength, 2)
			So(colors.AdditionalProperties.OneOf[0].Pattern, ShouldEqual, hexPattern)
		})
	})
}

func TestFormat(t *testing.T) {
	Convey("Formats should be found by name and extension", t, func() {
		So(lo.Must(ParseFormat("yml")), ShouldEqual, FormatYAML)
		So(lo.Must(ParseFormat(".TOML")), ShouldEqual, FormatTOML)
		So(lo.Must(FormatOf("static/tailwind.config.json")), ShouldEqual, FormatJSON)
		So(FormatYAML.Ext(), ShouldEqual, ".yaml")

		_, err := FormatOf("tailwind.config.js")
		So(err, ShouldNotBeNil)
	})
}

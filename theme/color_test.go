package theme

import (
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestIsValidHex(t *testing.T) {
	Convey("Only #RRGGBB literals should be accepted", t, func() {
		for _, valid := range []string{"#f59e0b", "#D4AF37", "#000000", "#FFFFFF"} {
			So(IsValidHex(valid), ShouldBeTrue)
		}
		for _, invalid := range []string{"", "f59e0b", "#fff", "#f59e0b80", "#f59e0g", "#12345 ", "not-a-color", "rgb(0,0,0)"} {
			So(IsValidHex(invalid), ShouldBeFalse)
		}
	})

	Convey("Parsed colors should carry their channels", t, func() {
		c, ok := ParseHex("#ff0000")
		So(ok, ShouldBeTrue)
		So(c.R, ShouldEqual, 1.0)
		So(c.G, ShouldEqual, 0.0)
	})
}

func TestSuggestHex(t *testing.T) {
	Convey("Other opaque CSS colors should get a hex suggestion", t, func() {
		So(suggestHex("#fff"), ShouldEqual, "#ffffff")
		So(suggestHex("red"), ShouldEqual, "#ff0000")
		So(suggestHex("rgb(0, 0, 255)"), ShouldEqual, "#0000ff")
	})

	Convey("Unparseable or translucent colors should get none", t, func() {
		So(suggestHex("not-a-color"), ShouldBeEmpty)
		So(suggestHex("rgba(0, 0, 0, 0.5)"), ShouldBeEmpty)
	})

	Convey("Bare hex digits should not be read as colors", t, func() {
		for _, word := range []string{"bad", "fade", "cafe", "decade", "f59e0b"} {
			So(suggestHex(word), ShouldBeEmpty)
		}
		So(suggestHex("#bad"), ShouldEqual, "#bbaadd")
	})
}

func TestColorValue(t *testing.T) {
	Convey("Given a scale", t, func() {
		shades := map[string]string{"900": "#0f172a", "50": "#f8fafc", "DEFAULT": "#64748b", "100": "#f1f5f9"}
		scale := ScaleColor(shades)

		Convey("It should not alias the source map", func() {
			shades["50"] = "#000000"
			So(lo.T2(scale.Shade("50")).A, ShouldEqual, "#f8fafc")

			copied, ok := scale.Shades()
			So(ok, ShouldBeTrue)
			copied["900"] = "#000000"
			So(lo.T2(scale.Shade("900")).A, ShouldEqual, "#0f172a")
		})

		Convey("Shade keys should be in numeric order", func() {
			So(scale.ShadeKeys(), ShouldResemble, []string{"50", "100", "900", "DEFAULT"})
		})

		Convey("It should not be a scalar", func() {
			_, ok := scale.Scalar()
			So(ok, ShouldBeFalse)
			So(scale.Kind().String(), ShouldEqual, "scale")
		})

		Convey("It should marshal as an object", func() {
			data, err := json.Marshal(scale)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{"100":"#f1f5f9","50":"#f8fafc","900":"#0f172a","DEFAULT":"#64748b"}`)
		})
	})

	Convey("Given a scalar", t, func() {
		black := ScalarColor("#000000")

		Convey("It should have no shades", func() {
			_, ok := black.Shade("500")
			So(ok, ShouldBeFalse)
			_, ok = black.Shades()
			So(ok, ShouldBeFalse)
		})

		Convey("It should marshal as a string", func() {
			So(string(lo.Must(json.Marshal(black))), ShouldEqual, `"#000000"`)
		})

		Convey("It should differ from a scale holding the same literal", func() {
			So(black.Equal(ScaleColor(map[string]string{"DEFAULT": "#000000"})), ShouldBeFalse)
			So(black.Equal(ScalarColor("#000000")), ShouldBeTrue)
		})
	})
}

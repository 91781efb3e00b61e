package style

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/montre/themecfg/color"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSwatch(t *testing.T) {
	Convey("LabelColor", t, func() {
		Convey("Should use a dark label on light swatches", func() {
			So(LabelColor(lo.Must(colorful.Hex("#fbbf24"))), ShouldEqual, color.OnLight)
			So(LabelColor(lo.Must(colorful.Hex("#ffffff"))), ShouldEqual, color.OnLight)
		})

		Convey("Should use a light label on dark swatches", func() {
			So(LabelColor(lo.Must(colorful.Hex("#0f172a"))), ShouldEqual, color.OnDark)
			So(LabelColor(lo.Must(colorful.Hex("#000000"))), ShouldEqual, color.OnDark)
		})
	})

	Convey("Swatch", t, func() {
		Convey("Should keep the label", func() {
			So(Swatch("#D4AF37", "gold.500", 12), ShouldContainSubstring, "gold.500")
		})

		Convey("Should fall back to the bare label for invalid colors", func() {
			So(Swatch("nope", "broken", 12), ShouldEqual, "broken")
		})
	})
}

func TestTitle(t *testing.T) {
	Convey("Banners should keep their text", t, func() {
		So(Title("watching"), ShouldContainSubstring, "watching")
		So(ErrorTitle("failed"), ShouldContainSubstring, "failed")
	})
}

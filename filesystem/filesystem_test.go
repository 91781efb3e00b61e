package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
			So(IsOs(), ShouldBeTrue)
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs.Name(), ShouldEqual, "MemMapFS")
			So(IsOs(), ShouldBeFalse)

			Convey("And keep written files in memory", func() {
				So(fs.WriteFile("/tmp/a.json", []byte("{}"), 0o644), ShouldBeNil)
				ok, err := fs.Exists("/tmp/a.json")
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
			})
		})
	})
}

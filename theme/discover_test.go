package theme

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestDiscover(t *testing.T) {
	Convey("Given a project with several documents", t, func() {
		fs := afero.NewMemMapFs()
		for _, file := range []string{
			"/project/tailwind.config.json",
			"/project/tailwind.config.toml",
			"/project/static/tailwind.config.yaml",
			"/project/admin/tailwind.config.yml",
			"/project/admin/deep/tailwind.config.json",
			"/project/node_modules/tailwind.config.json",
			"/project/vendor/tailwind.config.json",
			"/project/.cache/tailwind.config.json",
			"/project/static/tailwind.config.js",
		} {
			lo.Must0(afero.WriteFile(fs, file, []byte("{}"), 0o644))
		}

		Convey("Root documents should come first, then sub-directories in name order", func() {
			found, err := Discover(fs, "/project")
			So(err, ShouldBeNil)
			So(found, ShouldResemble, []string{
				"/project/tailwind.config.json",
				"/project/tailwind.config.toml",
				"/project/admin/tailwind.config.yml",
				"/project/static/tailwind.config.yaml",
			})
		})

		Convey("A directory without documents should give nothing", func() {
			found, err := Discover(fs, "/project/admin/deep/..")
			So(err, ShouldBeNil)
			So(found, ShouldHaveLength, 2)

			lo.Must0(fs.MkdirAll("/empty", 0o755))
			found, err = Discover(fs, "/empty")
			So(err, ShouldBeNil)
			So(found, ShouldBeEmpty)
		})

		Convey("A missing directory should fail", func() {
			_, err := Discover(fs, "/missing")
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given a project with script configs", t, func() {
		fs := afero.NewMemMapFs()
		for _, file := range []string{
			"/project/tailwind.config.ts",
			"/project/tailwind.config.json",
			"/project/static/tailwind.config.cjs",
			"/project/node_modules/tailwind.config.js",
		} {
			lo.Must0(afero.WriteFile(fs, file, []byte("module.exports = {}"), 0o644))
		}

		Convey("DiscoverScripts should find them where Discover looks", func() {
			scripts, err := DiscoverScripts(fs, "/project")
			So(err, ShouldBeNil)
			So(scripts, ShouldResemble, []string{"/project/tailwind.config.ts", "/project/static/tailwind.config.cjs"})
		})

		Convey("Discover should still return only loadable documents", func() {
			found, err := Discover(fs, "/project")
			So(err, ShouldBeNil)
			So(found, ShouldResemble, []string{"/project/tailwind.config.json"})
		})
	})

	Convey("Candidates should cover every format", t, func() {
		So(Candidates(), ShouldResemble, []string{
			"tailwind.config.json",
			"tailwind.config.yaml",
			"tailwind.config.yml",
			"tailwind.config.toml",
		})
		So(ScriptCandidates(), ShouldResemble, []string{
			"tailwind.config.js",
			"tailwind.config.cjs",
			"tailwind.config.mjs",
			"tailwind.config.ts",
		})
	})
}

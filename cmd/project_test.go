package cmd

import (
	"errors"
	"testing"

	"github.com/montre/themecfg/filesystem"
	"github.com/montre/themecfg/key"
	"github.com/montre/themecfg/theme"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

const document = `{"content": ["./templates/**/*.html", "./static/**/*.js"], "theme": {"extend": {"colors": {"gold": {"500": "#D4AF37"}, "ink": "ink"}}}}`

func TestLoadProject(t *testing.T) {
	Convey("Given a project on an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		viper.Set(key.ProjectRoot, "/project")
		viper.Set(key.ValidateWarnEmptyGlobs, true)
		Reset(func() {
			filesystem.SetOsFs()
			viper.Set(key.ProjectRoot, ".")
			viper.Set(key.ProjectFile, "")
			viper.Set(key.ValidateStrict, false)
			viper.Set(key.ValidateWarnEmptyGlobs, true)
		})

		lo.Must0(filesystem.API().WriteFile("/project/tailwind.config.json", []byte(document), 0o644))
		lo.Must0(filesystem.API().WriteFile("/project/templates/index.html", nil, 0o644))

		Convey("The document should be discovered in the root", func() {
			p, err := loadProject()
			So(err, ShouldBeNil)
			So(p.Root, ShouldEqual, "/project")
			So(p.File, ShouldEqual, "/project/tailwind.config.json")
			So(p.Cfg.Source, ShouldEqual, "tailwind.config.json")
		})

		Convey("The invalid literal should be a warning by default", func() {
			p, err := loadProject()
			So(err, ShouldBeNil)
			So(p.Cfg.Colors, ShouldNotContainKey, "ink")
			So(p.Diags.Of(theme.ErrInvalidColorLiteral), ShouldHaveLength, 1)
		})

		Convey("The invalid literal should be fatal in strict mode", func() {
			viper.Set(key.ValidateStrict, true)
			_, err := loadProject()
			So(errors.Is(err, theme.ErrInvalidColorLiteral), ShouldBeTrue)
		})

		Convey("Resolving should add the empty pattern warnings", func() {
			p, err := loadProject()
			So(err, ShouldBeNil)

			resolution, err := p.resolve()
			So(err, ShouldBeNil)
			So(resolution.All(), ShouldResemble, []string{"/project/templates/index.html"})
			So(p.warnings().Of(theme.ErrGlobResolutionEmpty), ShouldHaveLength, 1)

			viper.Set(key.ValidateWarnEmptyGlobs, false)
			So(p.warnings().Of(theme.ErrGlobResolutionEmpty), ShouldBeEmpty)
			So(p.warnings(), ShouldHaveLength, 1)
		})

		Convey("An explicit file should be taken relative to the root", func() {
			viper.Set(key.ProjectFile, "static/tailwind.config.yaml")
			file, err := documentPath("/project")
			So(err, ShouldBeNil)
			So(file, ShouldEqual, "/project/static/tailwind.config.yaml")
		})

		Convey("A root without documents should fail", func() {
			lo.Must0(filesystem.API().MkdirAll("/empty", 0o755))
			_, err := documentPath("/empty")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "no theme document found")
		})

		Convey("A root with only a script config should fail naming it", func() {
			lo.Must0(filesystem.API().WriteFile("/scripted/tailwind.config.js", []byte("module.exports = {}"), 0o644))
			_, err := documentPath("/scripted")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "only the script config tailwind.config.js")
		})

		Convey("A script config next to a document should be reported and skipped", func() {
			lo.Must0(filesystem.API().WriteFile("/project/static/tailwind.config.ts", nil, 0o644))
			scripts, err := scriptConfigs("/project")
			So(err, ShouldBeNil)
			So(scripts, ShouldResemble, []string{"static/tailwind.config.ts"})

			file, err := documentPath("/project")
			So(err, ShouldBeNil)
			So(file, ShouldEqual, "/project/tailwind.config.json")
		})
	})

	Convey("The script warning should point at a loadable equivalent", t, func() {
		So(scriptWarning("static/tailwind.config.mjs"), ShouldContainSubstring, "such as static/tailwind.config.json")
		So(scriptWarning("tailwind.config.ts"), ShouldEndWith, "such as tailwind.config.json")
	})
}

func TestScaffold(t *testing.T) {
	Convey("A scaffolded document should load back", t, func() {
		for _, format := range []theme.Format{theme.FormatJSON, theme.FormatYAML, theme.FormatTOML} {
			data, err := scaffold(defaultGlobs, format)
			So(err, ShouldBeNil)

			cfg, diags, err := theme.Parse(data, format, theme.Options{})
			So(err, ShouldBeNil)
			So(diags, ShouldBeEmpty)
			So(cfg.ContentGlobs, ShouldResemble, defaultGlobs)
		}
	})

	Convey("Globs escaping the root should be refused", t, func() {
		_, err := scaffold([]string{"../elsewhere/*.html"}, theme.FormatJSON)
		So(errors.Is(err, theme.ErrMalformedConfig), ShouldBeTrue)
	})

	Convey("Answers should be split on commas", t, func() {
		So(splitGlobs(" ./a/**/*.html, ,./b/*.js "), ShouldResemble, []string{"./a/**/*.html", "./b/*.js"})
	})
}

func TestRelative(t *testing.T) {
	Convey("Paths under the root should be shortened", t, func() {
		So(relative("/project", "/project/static/tailwind.config.yaml"), ShouldEqual, "static/tailwind.config.yaml")
		So(relative("/project", "/elsewhere/tailwind.config.json"), ShouldEqual, "/elsewhere/tailwind.config.json")
	})
}

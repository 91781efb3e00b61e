package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/montre/themecfg/filesystem"
	"github.com/montre/themecfg/key"
	"github.com/montre/themecfg/where"
	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)

		Convey("Setup should be a no-op", func() {
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeFalse)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		Reset(func() {
			viper.Set(key.LogsWrite, false)
			enabled = false
		})

		Convey("Setup should open a dated log file", func() {
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeTrue)
			So(logrus.GetLevel(), ShouldEqual, logrus.DebugLevel)

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			So(lo.Must(filesystem.API().Exists(path)), ShouldBeTrue)

			Convey("And write entries to it", func() {
				Info("hello from the test")
				data := lo.Must(filesystem.API().ReadFile(path))
				So(string(data), ShouldContainSubstring, "hello from the test")
			})
		})

		Convey("An unknown level should fall back to info", func() {
			viper.Set(key.LogsLevel, "chatty")
			So(Setup(), ShouldBeNil)
			So(logrus.GetLevel(), ShouldEqual, logrus.InfoLevel)
		})
	})
}

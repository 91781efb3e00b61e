package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "file", "files"), ShouldEqual, "1 file")
		So(Quantify(2, "file", "files"), ShouldEqual, "2 files")
		So(Quantify(0, "warning", "warnings"), ShouldEqual, "0 warnings")
	})
}

func TestTerminalWidth(t *testing.T) {
	Convey("TerminalWidth", t, func() {
		So(TerminalWidth(80), ShouldBeGreaterThan, 0)
	})
}

func TestInteractive(t *testing.T) {
	Convey("Interactive should agree with TerminalWidth", t, func() {
		if !Interactive() {
			So(TerminalWidth(42), ShouldEqual, 42)
		}
	})
}

func TestMax(t *testing.T) {
	Convey("Max", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Max("a", "c", "b"), ShouldEqual, "c")
		So(Max[int](), ShouldEqual, 0)
	})
}

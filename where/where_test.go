package where

import (
	"path/filepath"
	"testing"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(filepath.Dir(path), ShouldEqual, Config())
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("ConfigFile()", func() {
			So(filepath.Base(ConfigFile()), ShouldEqual, "lifo.toml")
		})

		Convey("LIFO_CONFIG_PATH overrides the config dir", func() {
			t.Setenv(EnvConfigPath, "/custom/lifo")
			So(Config(), ShouldEqual, "/custom/lifo")
			So(lo.Must(filesystem.API().IsDir("/custom/lifo")), ShouldBeTrue)
		})
	})
}

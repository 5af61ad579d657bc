package log

import (
	"testing"
	"time"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Log Setup", t, func() {
		Reset(func() {
			viper.Set(key.LogsWrite, false)
			_ = Setup()
		})

		Convey("Should stay disabled by default", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			So(enabled, ShouldBeFalse)
		})

		Convey("Should write entries to today's file when enabled", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "debug")
			viper.Set(key.LogsJson, true)
			So(Setup(), ShouldBeNil)

			Infof("pushed %d values", 3)
			WithFields(Fields{"law": "double-reverse"}, "law passed")

			data := string(lo.Must(filesystem.API().ReadFile(Path(time.Now()))))
			So(data, ShouldContainSubstring, "pushed 3 values")
			So(data, ShouldContainSubstring, `"law":"double-reverse"`)
		})
	})
}

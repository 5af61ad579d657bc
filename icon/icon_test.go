package icon

import (
	"testing"

	"github.com/lifo-cli/lifo/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given a registered icon", t, func() {
		Reset(func() { viper.Set(key.IconsVariant, plain) })

		Convey("It renders for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.IconsVariant, variant)
					So(Get(Empty), ShouldNotBeEmpty)
					So(Get(Success), ShouldNotEqual, Get(Fail))
				})
			}
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Fail), ShouldBeEmpty)
		})
	})
}

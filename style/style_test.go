package style

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRenderers(t *testing.T) {
	Convey("Renderers keep the text they style", t, func() {
		So(Top("c"), ShouldContainSubstring, "c")
		So(Pass("PASS"), ShouldContainSubstring, "PASS")
		So(Fail("FAIL"), ShouldContainSubstring, "FAIL")
		So(strings.TrimSpace(Bold("x")), ShouldContainSubstring, "x")
	})
}

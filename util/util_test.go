package util

import (
	"strings"
	"testing"

	"github.com/lifo-cli/lifo/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "law", "laws"), ShouldEqual, "1 law")
		So(Quantify(2, "law", "laws"), ShouldEqual, "2 laws")
		So(Quantify(0, "law", "laws"), ShouldEqual, "0 laws")
	})
}

func TestValues(t *testing.T) {
	Convey("Values", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)
		So(filesystem.API().WriteFile("/in.txt", []byte("x\ny\n"), 0644), ShouldBeNil)

		Convey("Arguments take precedence", func() {
			v, err := Values(Input{Args: []string{"a", "b"}, File: "/in.txt", Stdin: strings.NewReader("z")})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"a", "b"})
		})

		Convey("File is read when there are no arguments", func() {
			v, err := Values(Input{File: "/in.txt", Stdin: strings.NewReader("z")})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"x", "y"})
		})

		Convey("Stdin is the last resort", func() {
			v, err := Values(Input{Stdin: strings.NewReader("1\n2\n\n3\n")})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"1", "2", "3"})
		})

		Convey("Nothing at all is an error", func() {
			_, err := Values(Input{})
			So(err, ShouldEqual, ErrNoInput)
		})
	})
}

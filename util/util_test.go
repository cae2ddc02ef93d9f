package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/streamflix-cli/streamflix/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("my:provider?.lua"), ShouldEqual, "my_provider_.lua")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("movie  box"), ShouldEqual, "movie_box")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-movie-box-"), ShouldEqual, "movie-box")
		})
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("logs"), ShouldEqual, "Logs")
		So(Capitalize("émile"), ShouldEqual, "Émile")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("providers/moviebox.lua"), ShouldEqual, "moviebox")
		So(FileStem("moviebox"), ShouldEqual, "moviebox")
	})
}

func TestMax(t *testing.T) {
	Convey("Max", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a directory with a file", t, func() {
		fs := filesystem.API()
		So(fs.MkdirAll("/tmp/streamflix/sockets", 0755), ShouldBeNil)
		So(afero.WriteFile(fs, "/tmp/streamflix/sockets/mpv.sock", []byte{}, 0644), ShouldBeNil)

		Convey("Deleting the directory removes the tree", func() {
			So(Delete("/tmp/streamflix"), ShouldBeNil)
			exists, _ := afero.Exists(fs, "/tmp/streamflix/sockets/mpv.sock")
			So(exists, ShouldBeFalse)
		})

		Convey("Deleting a missing path fails", func() {
			So(Delete("/tmp/nothing-here"), ShouldNotBeNil)
		})
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[int]
		s.Push(1)
		s.Push(2)
		So(s.Len(), ShouldEqual, 2)
		So(s.Peek(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 2)

		s.Clear()
		So(s.Len(), ShouldEqual, 0)
		So(s.Pop(), ShouldEqual, 0)
	})
}

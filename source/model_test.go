package source

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestIdentity(t *testing.T) {
	Convey("Identity", t, func() {
		So(Identity{ID: "1", DetailPath: "/a"}.Valid(), ShouldBeTrue)
		So(Identity{ID: "1"}.Valid(), ShouldBeFalse)
		So(Identity{DetailPath: "/a"}.Valid(), ShouldBeFalse)
	})
}

func TestDetail(t *testing.T) {
	Convey("Detail", t, func() {
		Convey("ReleaseYear should keep the first four characters", func() {
			So(Detail{ReleaseDate: "2021-10-22"}.ReleaseYear(), ShouldEqual, "2021")
			So(Detail{ReleaseDate: "99"}.ReleaseYear(), ShouldEqual, "99")
			So(Detail{}.ReleaseYear(), ShouldBeEmpty)
		})

		Convey("Genres should drop blanks", func() {
			So(Detail{Genre: "Drama,, Crime "}.Genres(), ShouldResemble, []string{"Drama", "Crime"})
			So(Detail{}.Genres(), ShouldBeEmpty)
		})
	})
}

func TestCastMember(t *testing.T) {
	Convey("CastMember", t, func() {
		So(CastMember{Name: "Ann", Role: "Director"}.String(), ShouldEqual, "Ann (Director)")
		So(CastMember{Name: "Bob"}.String(), ShouldEqual, "Bob")
	})
}

func TestResource(t *testing.T) {
	Convey("Resource", t, func() {
		So(Resource{}.Playable(), ShouldBeFalse)
		So(Resource{}.MimeType(), ShouldBeEmpty)
		So(Resource{MP4: "m"}.Playable(), ShouldBeTrue)
	})
}

func TestEnvelope(t *testing.T) {
	Convey("Envelope", t, func() {
		So((&Envelope{StatusCode: 204}).OK(), ShouldBeTrue)
		So((&Envelope{StatusCode: 404}).OK(), ShouldBeFalse)
	})
}

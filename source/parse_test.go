package source

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func ok(body string) *Envelope {
	return &Envelope{StatusCode: 200, Body: []byte(body)}
}

func TestParseHot(t *testing.T) {
	Convey("Given a hot listing", t, func() {
		Convey("With an empty movie list and one series", func() {
			r := ParseHot(ok(`{"data":{"movie":[],"tv":[{"subjectId":"1","detailPath":"/x","title":"T"}]}}`), nil)

			So(r.Kind, ShouldEqual, Success)
			So(r.Movies, ShouldBeEmpty)
			So(r.Series, ShouldHaveLength, 1)
			So(r.Series[0].Title, ShouldEqual, "T")
			So(r.Series[0].Identity, ShouldResemble, Identity{ID: "1", DetailPath: "/x"})
		})

		Convey("With a plain id instead of subjectId", func() {
			r := ParseHot(ok(`{"data":{"movie":[],"tv":[{"id":"1","detailPath":"/x","title":"T"}]}}`), nil)

			So(r.Kind, ShouldEqual, Success)
			So(r.Series, ShouldHaveLength, 1)
			So(r.Series[0].Title, ShouldEqual, "T")
			So(r.Series[0].Identity, ShouldResemble, Identity{ID: "1", DetailPath: "/x"})
		})

		Convey("subjectId should win over id", func() {
			r := ParseHot(ok(`{"data":{"movie":[{"subjectId":"9","id":"1","detailPath":"/m"}]}}`), nil)
			So(r.Movies[0].ID, ShouldEqual, "9")
		})

		Convey("With no data at all both lists should be empty", func() {
			r := ParseHot(ok(`{}`), nil)
			So(r.Kind, ShouldEqual, Success)
			So(r.Movies, ShouldBeEmpty)
			So(r.Series, ShouldBeEmpty)
		})

		Convey("With numeric ids and ratings and nested covers", func() {
			r := ParseHot(ok(`{"data":{"movie":[{"subjectId":42,"detailPath":"/m","cover":{"url":"https://img/c.jpg"},"imdbRatingValue":7.5}]}}`), nil)
			So(r.Movies[0].ID, ShouldEqual, "42")
			So(r.Movies[0].CoverURL, ShouldEqual, "https://img/c.jpg")
			So(r.Movies[0].Rating, ShouldEqual, "7.5")
		})

		Convey("Non-object list elements should be skipped", func() {
			r := ParseHot(ok(`{"data":{"movie":["junk",null,{"subjectId":"1","detailPath":"/a"}]}}`), nil)
			So(r.Movies, ShouldHaveLength, 1)
		})

		Convey("A rejected status should be a transport failure", func() {
			r := ParseHot(&Envelope{StatusCode: 503, Body: []byte(`{}`)}, nil)
			So(r.Kind, ShouldEqual, TransportFailure)
			So(r.CauseText(), ShouldEqual, "HTTP error! Status: 503")

			var statusErr *StatusError
			So(errors.As(r.Cause, &statusErr), ShouldBeTrue)
			So(statusErr.Code, ShouldEqual, 503)
		})

		Convey("A network error should be a transport failure", func() {
			r := ParseHot(nil, errors.New("dial tcp: connection refused"))
			So(r.Kind, ShouldEqual, TransportFailure)
			So(r.Failed(), ShouldBeTrue)
		})

		Convey("A malformed body should be a transport failure", func() {
			r := ParseHot(ok(`<html>`), nil)
			So(r.Kind, ShouldEqual, TransportFailure)
			So(errors.Is(r.Cause, ErrMalformed), ShouldBeTrue)
		})

		Convey("A missing envelope should be a transport failure", func() {
			So(ParseHot(nil, nil).Kind, ShouldEqual, TransportFailure)
		})
	})
}

func TestParseSearch(t *testing.T) {
	Convey("Given a search listing", t, func() {
		Convey("With items it should succeed", func() {
			r := ParseSearch(ok(`{"data":{"items":[{"subjectId":"1","detailPath":"/a","title":"A"}]}}`), nil)
			So(r.Kind, ShouldEqual, Success)
			So(r.Items, ShouldHaveLength, 1)
		})

		Convey("Items lacking identity fields should be kept for the renderer to drop", func() {
			r := ParseSearch(ok(`{"data":{"items":[{"title":"orphan"}]}}`), nil)
			So(r.Kind, ShouldEqual, Success)
			So(r.Items[0].Valid(), ShouldBeFalse)
		})

		Convey("Without items it should be empty", func() {
			So(ParseSearch(ok(`{"data":{"items":[]}}`), nil).Kind, ShouldEqual, Empty)
			So(ParseSearch(ok(`{"data":null}`), nil).Kind, ShouldEqual, Empty)
		})

		Convey("The status code should not be consulted", func() {
			r := ParseSearch(&Envelope{StatusCode: 500, Body: []byte(`{"data":{"items":[]}}`)}, nil)
			So(r.Kind, ShouldEqual, Empty)
		})

		Convey("A malformed body should be a transport failure", func() {
			So(ParseSearch(ok(`{"data":`), nil).Kind, ShouldEqual, TransportFailure)
		})
	})
}

func TestParseDetail(t *testing.T) {
	Convey("Given a detail lookup", t, func() {
		Convey("With only a title it should succeed with empty fields", func() {
			r := ParseDetail(ok(`{"status":"success","data":{"title":"Foo"}}`), nil)
			So(r.Kind, ShouldEqual, Success)
			So(r.Detail, ShouldResemble, Detail{Title: "Foo"})
		})

		Convey("With every field", func() {
			r := ParseDetail(ok(`{"status":"success","data":{
				"title":"Foo","imdbRatingValue":"8.1","releaseDate":"2019-05-01",
				"genre":"Action, Drama","countryName":"US","description":"Plot",
				"staffList":[{"name":"Ann","role":"Director"},{"role":"nameless"},{"name":"Bob"}]}}`), nil)

			So(r.Kind, ShouldEqual, Success)
			So(r.Detail.ReleaseYear(), ShouldEqual, "2019")
			So(r.Detail.Genres(), ShouldResemble, []string{"Action", "Drama"})
			So(r.Detail.Country, ShouldEqual, "US")
			So(r.Detail.Staff, ShouldResemble, []CastMember{{Name: "Ann", Role: "Director"}, {Name: "Bob"}})
		})

		Convey("An error status should be an API error", func() {
			r := ParseDetail(ok(`{"status":"error","message":"gone"}`), nil)
			So(r.Kind, ShouldEqual, APIError)
			So(r.Message, ShouldEqual, "gone")
		})

		Convey("Success without data should be an unknown shape", func() {
			r := ParseDetail(ok(`{"status":"success"}`), nil)
			So(r.Kind, ShouldEqual, UnknownShape)
			So(string(r.Raw), ShouldEqual, `{"status":"success"}`)
		})

		Convey("A network error should be a transport failure", func() {
			So(ParseDetail(nil, errors.New("timeout")).Kind, ShouldEqual, TransportFailure)
		})
	})
}

func TestParseStream(t *testing.T) {
	Convey("Given a stream resolution", t, func() {
		Convey("HLS should win over MP4", func() {
			r := ParseStream(ok(`{"data":{"resource":{"hls":"https://h/a.m3u8","mp4":"https://h/a.mp4"}}}`), nil)
			So(r.Kind, ShouldEqual, Success)
			So(r.Resource.Link(), ShouldEqual, "https://h/a.m3u8")
			So(r.Resource.MimeType(), ShouldEqual, MimeHLS)
		})

		Convey("MP4 alone should be used", func() {
			r := ParseStream(ok(`{"data":{"resource":{"mp4":"https://h/a.mp4"}}}`), nil)
			So(r.Resource.Link(), ShouldEqual, "https://h/a.mp4")
			So(r.Resource.MimeType(), ShouldEqual, MimeMP4)
		})

		Convey("A resource with empty links should be link-missing", func() {
			r := ParseStream(ok(`{"data":{"resource":{"hls":"","mp4":null}}}`), nil)
			So(r.Kind, ShouldEqual, LinkMissing)
		})

		Convey("A resource should win over an error status", func() {
			r := ParseStream(ok(`{"status":"error","message":"X","data":{"resource":{"mp4":"https://h/a.mp4"}}}`), nil)
			So(r.Kind, ShouldEqual, Success)
		})

		Convey("An error status should surface its message", func() {
			r := ParseStream(ok(`{"status":"error","message":"X"}`), nil)
			So(r.Kind, ShouldEqual, APIError)
			So(r.Message, ShouldEqual, "X")
		})

		Convey("An error status without message should use the default text", func() {
			r := ParseStream(ok(`{"status":"error"}`), nil)
			So(r.Message, ShouldEqual, DefaultAPIErrorMessage)
		})

		Convey("A bare message should be not-found", func() {
			r := ParseStream(ok(`{"message":"no source"}`), nil)
			So(r.Kind, ShouldEqual, NotFound)
			So(r.Message, ShouldEqual, "no source")
		})

		Convey("A null resource should fall through to the message checks", func() {
			r := ParseStream(ok(`{"data":{"resource":null},"message":"no source"}`), nil)
			So(r.Kind, ShouldEqual, NotFound)
		})

		Convey("Anything else should be an unknown shape with the raw body kept", func() {
			r := ParseStream(ok(`{"data":{"foo":1}}`), nil)
			So(r.Kind, ShouldEqual, UnknownShape)
			So(string(r.Raw), ShouldEqual, `{"data":{"foo":1}}`)
		})

		Convey("A malformed body should be a transport failure", func() {
			So(ParseStream(ok(`nope`), nil).Kind, ShouldEqual, TransportFailure)
		})
	})
}

func TestText(t *testing.T) {
	Convey("text", t, func() {
		for raw, want := range map[string]string{
			`"7.5"`: "7.5",
			`7.5`:   "7.5",
			`0`:     "",
			`null`:  "",
			`true`:  "",
			`{}`:    "",
		} {
			var got text
			So(got.UnmarshalJSON([]byte(raw)), ShouldBeNil)
			So(string(got), ShouldEqual, want)
		}
	})
}

package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/streamflix-cli/streamflix/source"
)

// stubSource answers every endpoint with the same envelope.
type stubSource struct {
	body string
	err  error
}

func (s stubSource) Name() string { return "Stub" }
func (s stubSource) ID() string   { return "stub" }

func (s stubSource) reply() (*source.Envelope, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &source.Envelope{StatusCode: 200, Body: []byte(s.body)}, nil
}

func (s stubSource) Hot(context.Context) (*source.Envelope, error)            { return s.reply() }
func (s stubSource) Search(context.Context, string) (*source.Envelope, error) { return s.reply() }
func (s stubSource) Details(context.Context, source.Identity) (*source.Envelope, error) {
	return s.reply()
}
func (s stubSource) Media(context.Context, source.Identity) (*source.Envelope, error) {
	return s.reply()
}

func run(options *Options) (string, error) {
	var buf bytes.Buffer
	options.Out = &buf
	options.Json = true

	err := Run(context.Background(), options)
	return buf.String(), err
}

func TestRun(t *testing.T) {
	Convey("Given a hot listing", t, func() {
		src := stubSource{body: `{"data":{"movie":[{"subjectId":"1","detailPath":"/a","title":"Dune"}],"tv":[]}}`}

		Convey("Json output should carry both home regions", func() {
			var buf bytes.Buffer
			err := Run(context.Background(), &Options{Out: &buf, Json: true, Source: src, Command: Hot})
			So(err, ShouldBeNil)

			var raw map[string]any
			So(json.Unmarshal(buf.Bytes(), &raw), ShouldBeNil)
			So(raw["command"], ShouldEqual, "hot")
			So(raw["kind"], ShouldEqual, "success")
			So(raw["state"], ShouldResemble, map[string]any{"screen": "home", "playerVisible": false})

			regions := raw["regions"].([]any)
			So(regions, ShouldHaveLength, 2)
			So(regions[0].(map[string]any)["type"], ShouldEqual, "cards")
			So(regions[1].(map[string]any)["type"], ShouldEqual, "empty")
		})

		Convey("Text output should list one card per line", func() {
			var buf bytes.Buffer
			err := Run(context.Background(), &Options{Out: &buf, Source: src, Command: Hot})
			So(err, ShouldBeNil)
			So(buf.String(), ShouldStartWith, "1\t/a\tDune\tN/A\n")
			So(buf.String(), ShouldContainSubstring, "No trending series found")
		})
	})

	Convey("Given a failing source", t, func() {
		src := stubSource{err: errors.New("offline")}

		Convey("Search should report a failure region", func() {
			var buf bytes.Buffer
			err := Run(context.Background(), &Options{Out: &buf, Json: true, Source: src, Command: Search, Query: "dune"})
			So(err, ShouldBeNil)

			var raw map[string]any
			So(json.Unmarshal(buf.Bytes(), &raw), ShouldBeNil)
			So(raw["kind"], ShouldEqual, "transport-failure")
			So(raw["message"], ShouldEqual, "offline")
			So(raw["state"].(map[string]any)["screen"], ShouldEqual, "search-results")

			region := raw["regions"].([]any)[0].(map[string]any)
			So(region["name"], ShouldEqual, "search")
			So(region["type"], ShouldEqual, "failure")
		})
	})

	Convey("Given a stream resource", t, func() {
		src := stubSource{body: `{"data":{"resource":{"mp4":"https://h/a.mp4"}}}`}
		id := source.Identity{ID: "1", DetailPath: "/a"}

		Convey("Text output should be the link", func() {
			var buf bytes.Buffer
			err := Run(context.Background(), &Options{Out: &buf, Source: src, Command: Stream, Identity: id, Title: "Dune"})
			So(err, ShouldBeNil)
			So(strings.TrimSpace(buf.String()), ShouldEqual, "https://h/a.mp4")
		})
	})

	Convey("Given invalid options", t, func() {
		Convey("A missing source should fail", func() {
			out, err := run(&Options{Command: Hot})
			So(err, ShouldNotBeNil)
			So(out, ShouldBeEmpty)
		})

		Convey("Detail without identity should fail", func() {
			_, err := run(&Options{Source: stubSource{}, Command: Detail})
			So(err, ShouldNotBeNil)
		})

		Convey("A one letter search should fail", func() {
			_, err := run(&Options{Source: stubSource{}, Command: Search, Query: "a"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParseCommand(t *testing.T) {
	Convey("Commands should resolve by name", t, func() {
		c, err := ParseCommand("Detail")
		So(err, ShouldBeNil)
		So(c, ShouldEqual, Detail)

		_, err = ParseCommand("episodes")
		So(err, ShouldNotBeNil)
	})
}

package browse

import (
	"context"
	"errors"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/streamflix-cli/streamflix/key"
	"github.com/streamflix-cli/streamflix/query"
	"github.com/streamflix-cli/streamflix/source"
	"github.com/streamflix-cli/streamflix/view"
)

func init() {
	viper.Set(key.SearchSuggestions, true)
}

type response struct {
	body   string
	status int
	err    error
}

// fakeSource answers every endpoint from a fixed response and counts requests.
type fakeSource struct {
	mu       sync.Mutex
	hot      response
	search   response
	details  response
	media    response
	keywords []string
	calls    int

	// gate, when set, blocks Search until a value is received.
	gate chan struct{}
}

func (f *fakeSource) Name() string { return "Fake" }
func (f *fakeSource) ID() string   { return "fake" }

func (f *fakeSource) reply(r response) (*source.Envelope, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if r.err != nil {
		return nil, r.err
	}
	status := r.status
	if status == 0 {
		status = 200
	}
	return &source.Envelope{StatusCode: status, Body: []byte(r.body)}, nil
}

func (f *fakeSource) Hot(context.Context) (*source.Envelope, error) {
	return f.reply(f.hot)
}

func (f *fakeSource) Search(_ context.Context, keyword string) (*source.Envelope, error) {
	f.mu.Lock()
	f.keywords = append(f.keywords, keyword)
	gate := f.gate
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return f.reply(f.search)
}

func (f *fakeSource) Details(context.Context, source.Identity) (*source.Envelope, error) {
	return f.reply(f.details)
}

func (f *fakeSource) Media(context.Context, source.Identity) (*source.Envelope, error) {
	return f.reply(f.media)
}

func (f *fakeSource) requests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakePlayer struct {
	err    error
	played []string
}

func (p *fakePlayer) Name() string { return "fake" }

func (p *fakePlayer) Play(link, _ string) error {
	if p.err != nil {
		return p.err
	}
	p.played = append(p.played, link)
	return nil
}

func (p *fakePlayer) IsRunning() bool { return len(p.played) > 0 }
func (p *fakePlayer) Close() error    { return nil }

func newBrowser(src *fakeSource, options Options) (*Browser, *view.Recorder) {
	rec := view.NewRecorder()
	options.Source = src
	options.Sinks = rec.Sinks()
	return New(options), rec
}

func TestViewState(t *testing.T) {
	Convey("Given a view state", t, func() {
		var states []view.State
		v := NewViewState(view.NavigatorFunc(func(s view.State) { states = append(states, s) }))

		Convey("It should start at home", func() {
			So(v.State(), ShouldResemble, view.State{Screen: view.Home})
		})

		Convey("Searching should show the search screen only", func() {
			s := v.Set(true, false)
			So(s.Screen, ShouldEqual, view.SearchResults)
			So(s.Visible(view.Search), ShouldBeTrue)
			So(s.Visible(view.Movies), ShouldBeFalse)
			So(s.Visible(view.Detail), ShouldBeFalse)
		})

		Convey("Detail should take precedence over searching", func() {
			So(v.Set(true, true).Screen, ShouldEqual, view.DetailScreen)
		})

		Convey("Any screen change should hide the player overlay", func() {
			So(v.ShowPlayer().PlayerVisible, ShouldBeTrue)
			So(v.Set(false, true).PlayerVisible, ShouldBeFalse)
		})

		Convey("Hiding the overlay should keep the screen", func() {
			v.Set(true, false)
			v.ShowPlayer()
			s := v.HidePlayer()
			So(s.Screen, ShouldEqual, view.SearchResults)
			So(s.PlayerVisible, ShouldBeFalse)
		})

		Convey("The navigator should only hear about changes", func() {
			v.Set(true, false)
			v.Set(true, false)
			v.Set(false, false)
			So(states, ShouldHaveLength, 2)
		})
	})

	Convey("Given the overlay raised while the user goes home", t, func() {
		for range 200 {
			v := NewViewState(nil)
			v.Set(false, true)

			var wg sync.WaitGroup
			for range 8 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					v.ShowPlayer()
				}()
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				v.Set(false, false)
			}()
			wg.Wait()

			So(v.State().Screen, ShouldEqual, view.Home)
		}
	})
}

func TestLoadHot(t *testing.T) {
	Convey("Given a hot listing with no movies and one series", t, func() {
		src := &fakeSource{hot: response{body: `{"data":{"movie":[],"tv":[{"subjectId":"1","detailPath":"/x","title":"T"}]}}`}}
		b, rec := newBrowser(src, Options{})

		result := b.LoadHot(context.Background())

		Convey("Both regions should show loading first", func() {
			So(rec.Of(view.Movies)[0], ShouldResemble, view.Loading{Text: view.LoadingMovies})
			So(rec.Of(view.Series)[0], ShouldResemble, view.Loading{Text: view.LoadingSeries})
		})

		Convey("Movies should show the empty notice and series one card", func() {
			So(result.Kind, ShouldEqual, source.Success)
			So(rec.Latest(view.Movies), ShouldResemble, view.Empty{Text: view.NoHotMovies})

			cards, ok := rec.Latest(view.Series).(view.Cards)
			So(ok, ShouldBeTrue)
			So(cards.Cards, ShouldHaveLength, 1)
			So(cards.Cards[0].Title, ShouldEqual, "T")
			So(cards.Cards[0].Cover, ShouldEqual, view.PlaceholderCover)
			So(cards.Cards[0].Rating, ShouldEqual, view.NotAvailable)
		})

		Convey("It should land on the home screen", func() {
			So(b.State().Screen, ShouldEqual, view.Home)
		})
	})

	Convey("Given a hot listing whose series carry a plain id", t, func() {
		src := &fakeSource{hot: response{body: `{"data":{"movie":[],"tv":[{"id":"1","detailPath":"/x","title":"T"}]}}`}}
		b, rec := newBrowser(src, Options{})

		b.LoadHot(context.Background())

		Convey("Series should show one card titled T", func() {
			cards, ok := rec.Latest(view.Series).(view.Cards)
			So(ok, ShouldBeTrue)
			So(cards.Cards, ShouldHaveLength, 1)
			So(cards.Cards[0].Title, ShouldEqual, "T")
			So(cards.Cards[0].Identity, ShouldResemble, source.Identity{ID: "1", DetailPath: "/x"})
		})
	})

	Convey("Given a rejected hot listing", t, func() {
		src := &fakeSource{hot: response{status: 500, body: `{}`}}
		b, rec := newBrowser(src, Options{})

		b.LoadHot(context.Background())

		Convey("Movies should show the error and series the follow-up", func() {
			So(view.Text(rec.Latest(view.Movies)), ShouldContainSubstring, "HTTP error! Status: 500")
			So(rec.Latest(view.Series), ShouldResemble, view.Failure{Text: view.HotFailureFollowUp})
		})
	})

	Convey("Given items without identity", t, func() {
		src := &fakeSource{hot: response{body: `{"data":{"movie":[{"title":"no id"},{"subjectId":"2","detailPath":"/b"}]}}`}}
		b, rec := newBrowser(src, Options{})

		b.LoadHot(context.Background())

		Convey("Only renderable items should become cards", func() {
			cards := rec.Latest(view.Movies).(view.Cards)
			So(cards.Cards, ShouldHaveLength, 1)
			So(cards.Cards[0].ID, ShouldEqual, "2")
			So(cards.Cards[0].Title, ShouldEqual, view.TitleUnknown)
		})
	})
}

func TestSearch(t *testing.T) {
	Convey("Given a browser with a search backend", t, func() {
		src := &fakeSource{search: response{body: `{"data":{"items":[{"subjectId":"7","detailPath":"/s","title":"Dune"}]}}`}}
		queries := query.NewSession()
		b, rec := newBrowser(src, Options{Queries: queries})

		Convey("A one character keyword should issue no request and show home", func() {
			b.Search(context.Background(), "a")
			So(src.requests(), ShouldEqual, 0)
			So(b.State().Screen, ShouldEqual, view.Home)
			So(rec.Of(view.Search), ShouldBeEmpty)
		})

		Convey("A whitespace padded keyword should be trimmed", func() {
			result := b.Search(context.Background(), "  dune  ")
			So(result.IsPresent(), ShouldBeTrue)
			So(src.keywords, ShouldResemble, []string{"dune"})
			So(b.State().Screen, ShouldEqual, view.SearchResults)

			cards := rec.Latest(view.Search).(view.Cards)
			So(cards.Heading, ShouldEqual, `Search Results for "dune"`)
			So(cards.Cards, ShouldHaveLength, 1)
		})

		Convey("The keyword should be remembered for suggestions", func() {
			b.Search(context.Background(), "dune")
			So(queries.SuggestMany("du"), ShouldContain, "dune")
		})

		Convey("An empty item list should show the no results notice", func() {
			src.search = response{body: `{"data":{"items":[]}}`}
			b.Search(context.Background(), "zz")
			So(rec.Latest(view.Search), ShouldResemble, view.Empty{Text: `No results found for "zz".`})
		})

		Convey("A network error should show the search failure", func() {
			src.search = response{err: errors.New("offline")}
			b.Search(context.Background(), "zz")
			So(rec.Latest(view.Search), ShouldResemble, view.Failure{Text: view.SearchFailure})
		})

		Convey("Clearing the search should return home without a request", func() {
			b.Search(context.Background(), "dune")
			So(b.ClearSearch().Screen, ShouldEqual, view.Home)
			So(src.requests(), ShouldEqual, 1)
		})
	})

	Convey("Given a threshold configured below the default", t, func() {
		src := &fakeSource{search: response{body: `{"data":{"items":[]}}`}}
		b, _ := newBrowser(src, Options{MinKeywordLength: 1})

		Convey("A one character keyword should still issue no request", func() {
			So(b.Search(context.Background(), "a").IsAbsent(), ShouldBeTrue)
			So(src.requests(), ShouldEqual, 0)
		})
	})

	Convey("Given a threshold configured above the default", t, func() {
		src := &fakeSource{search: response{body: `{"data":{"items":[]}}`}}
		b, _ := newBrowser(src, Options{MinKeywordLength: 4})

		Convey("A three character keyword should issue no request", func() {
			b.Search(context.Background(), "abc")
			So(src.requests(), ShouldEqual, 0)
		})
	})

	Convey("Given two overlapping searches", t, func() {
		gate := make(chan struct{})
		src := &fakeSource{gate: gate, search: response{body: `{"data":{"items":[{"subjectId":"1","detailPath":"/a","title":"A"}]}}`}}
		b, rec := newBrowser(src, Options{})

		done := make(chan struct{})
		go func() {
			b.Search(context.Background(), "first")
			close(done)
		}()

		// Wait until the first request is in flight.
		for {
			src.mu.Lock()
			n := len(src.keywords)
			src.mu.Unlock()
			if n == 1 {
				break
			}
		}

		src.mu.Lock()
		src.gate = nil
		src.mu.Unlock()

		b.Search(context.Background(), "second")
		close(gate)
		<-done

		Convey("The earlier response should not overwrite the later one", func() {
			cards := rec.Latest(view.Search).(view.Cards)
			So(cards.Heading, ShouldEqual, `Search Results for "second"`)

			headings := 0
			for _, ins := range rec.Of(view.Search) {
				if c, ok := ins.(view.Cards); ok && c.Heading == `Search Results for "first"` {
					headings++
				}
			}
			So(headings, ShouldEqual, 0)
		})
	})
}

func TestShowDetail(t *testing.T) {
	Convey("Given a detail record with only a title", t, func() {
		src := &fakeSource{details: response{body: `{"status":"success","data":{"title":"Foo"}}`}}
		b, rec := newBrowser(src, Options{})
		card := view.Card{Identity: source.Identity{ID: "1", DetailPath: "/foo"}, Title: "Foo", Cover: view.PlaceholderCover}

		result := b.ShowDetail(context.Background(), card)

		Convey("It should render a page with placeholders", func() {
			So(result.Kind, ShouldEqual, source.Success)
			So(b.State().Screen, ShouldEqual, view.DetailScreen)
			So(rec.Of(view.Detail)[0], ShouldResemble, view.Loading{Text: view.LoadingDetail})

			page := rec.Latest(view.Detail).(view.Page).Page
			So(page.Title, ShouldEqual, "Foo")
			So(page.Rating, ShouldEqual, view.NotAvailable)
			So(page.Year, ShouldEqual, view.NotAvailable)
			So(page.Synopsis, ShouldEqual, view.NoSynopsis)
			So(page.CastText(), ShouldEqual, view.NoCast)
		})
	})

	Convey("Given detail failures", t, func() {
		card := view.Card{Identity: source.Identity{ID: "1", DetailPath: "/foo"}}

		Convey("An API error should show the generic failure", func() {
			src := &fakeSource{details: response{body: `{"status":"error","message":"gone"}`}}
			b, rec := newBrowser(src, Options{})
			b.ShowDetail(context.Background(), card)
			So(rec.Latest(view.Detail), ShouldResemble, view.Failure{Text: view.DetailFailure})
		})

		Convey("A network error should show the network failure", func() {
			src := &fakeSource{details: response{err: errors.New("offline")}}
			b, rec := newBrowser(src, Options{})
			b.ShowDetail(context.Background(), card)
			So(rec.Latest(view.Detail), ShouldResemble, view.Failure{Text: view.DetailNetworkFailure})
		})

		Convey("A card without identity should not issue a request", func() {
			src := &fakeSource{}
			b, rec := newBrowser(src, Options{})
			b.ShowDetail(context.Background(), view.Card{Title: "x"})
			So(src.requests(), ShouldEqual, 0)
			So(rec.Latest(view.Detail), ShouldResemble, view.Failure{Text: view.DetailFailure})
		})
	})
}

func TestPlayStream(t *testing.T) {
	id := source.Identity{ID: "1", DetailPath: "/foo"}

	Convey("Given a playable resource", t, func() {
		src := &fakeSource{media: response{body: `{"data":{"resource":{"hls":"https://h/a.m3u8","mp4":"https://h/a.mp4"}}}`}}

		Convey("With autoplay it should hand the HLS link to the player", func() {
			p := &fakePlayer{}
			b, rec := newBrowser(src, Options{Player: p, Autoplay: true})

			state := b.PlayStream(context.Background(), id, "Foo")
			So(state.Status, ShouldEqual, view.Ready)
			So(state.Message, ShouldEqual, view.StreamFound)
			So(p.played, ShouldResemble, []string{"https://h/a.m3u8"})
			So(b.State().PlayerVisible, ShouldBeTrue)

			first := rec.Of(view.Player)[0].(view.Overlay).Player
			So(first.Status, ShouldEqual, view.Fetching)
			So(first.Heading, ShouldEqual, "Now Playing: Foo")
		})

		Convey("When the player refuses it should ask for a manual start", func() {
			p := &fakePlayer{err: errors.New("no display")}
			b, rec := newBrowser(src, Options{Player: p, Autoplay: true})

			state := b.PlayStream(context.Background(), id, "Foo")
			So(state.Status, ShouldEqual, view.Manual)
			So(state.Message, ShouldEqual, view.AutoplayFailed)
			So(state.Link, ShouldEqual, "https://h/a.m3u8")
			So(rec.Latest(view.Player).(view.Overlay).Player, ShouldResemble, state)
		})

		Convey("Without autoplay it should wait for the user", func() {
			p := &fakePlayer{}
			b, _ := newBrowser(src, Options{Player: p})

			state := b.PlayStream(context.Background(), id, "Foo")
			So(state.Status, ShouldEqual, view.Manual)
			So(state.Message, ShouldEqual, view.StreamReady)
			So(p.played, ShouldBeEmpty)

			Convey("Starting manually should play the link", func() {
				started, err := b.Start(state)
				So(err, ShouldBeNil)
				So(started.Status, ShouldEqual, view.Ready)
				So(p.played, ShouldHaveLength, 1)
			})
		})

		Convey("An empty title should fall back to the generic label", func() {
			b, _ := newBrowser(src, Options{})
			state := b.PlayStream(context.Background(), id, "")
			So(state.Heading, ShouldEqual, "Now Playing: "+view.MediaContent)
		})
	})

	Convey("Given unplayable responses", t, func() {
		cases := []struct {
			name    string
			resp    response
			message string
		}{
			{"missing links", response{body: `{"data":{"resource":{"hls":""}}}`}, view.LinkMissingText},
			{"an API error", response{body: `{"status":"error","message":"X"}`}, "API Error: X"},
			{"a bare message", response{body: `{"message":"gone"}`}, "Media Source Error: gone"},
			{"an unknown shape", response{body: `{"data":{}}`}, view.UnknownText},
			{"a network error", response{err: errors.New("offline")}, view.NetworkText},
		}

		for _, c := range cases {
			c := c
			Convey("With "+c.name, func() {
				p := &fakePlayer{}
				b, _ := newBrowser(&fakeSource{media: c.resp}, Options{Player: p, Autoplay: true})

				state := b.PlayStream(context.Background(), id, "Foo")
				So(state.Status, ShouldEqual, view.Unavailable)
				So(state.Message, ShouldEqual, c.message)
				So(state.Link, ShouldBeEmpty)
				So(p.played, ShouldBeEmpty)
			})
		}

		Convey("Starting without a link should fail", func() {
			b, _ := newBrowser(&fakeSource{}, Options{})
			_, err := b.Start(view.PlayerState{})
			So(err, ShouldEqual, ErrNothingToPlay)
		})
	})

	Convey("Given navigation while a stream resolves", t, func() {
		src := &fakeSource{media: response{body: `{"data":{"resource":{"mp4":"https://h/a.mp4"}}}`}}
		p := &fakePlayer{}
		b, _ := newBrowser(src, Options{Player: p, Autoplay: true})

		b.view.ShowPlayer()
		tok := b.tokens.begin(view.Player, nil)
		b.ClearSearch()

		Convey("The stale stream should not render", func() {
			So(b.tokens.commit(view.Player, tok, func() {}), ShouldBeFalse)
		})
	})

	Convey("Given the overlay is closed while a stream resolves", t, func() {
		b, _ := newBrowser(&fakeSource{}, Options{})

		b.view.ShowPlayer()
		tok := b.tokens.begin(view.Player, nil)
		state := b.ClosePlayer()

		Convey("The overlay should be hidden and the stream discarded", func() {
			So(state.PlayerVisible, ShouldBeFalse)
			So(b.tokens.commit(view.Player, tok, func() {}), ShouldBeFalse)
		})
	})
}

package view

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/streamflix-cli/streamflix/source"
)

func TestNewDetailPage(t *testing.T) {
	card := Card{
		Identity: source.Identity{ID: "1", DetailPath: "/foo"},
		Title:    "Card Title",
		Cover:    "https://img/card.jpg",
		Rating:   "7.0",
	}

	Convey("Given a detail record with only a title", t, func() {
		page := NewDetailPage(source.Detail{Title: "Foo"}, card)

		Convey("The title should come from the record", func() {
			So(page.Title, ShouldEqual, "Foo")
		})

		Convey("Every other field should be a placeholder", func() {
			So(page.Rating, ShouldEqual, NotAvailable)
			So(page.Year, ShouldEqual, NotAvailable)
			So(page.Genres, ShouldEqual, NotAvailable)
			So(page.Country, ShouldEqual, NotAvailable)
			So(page.Synopsis, ShouldEqual, NoSynopsis)
			So(page.CastText(), ShouldEqual, NoCast)
		})

		Convey("The poster should come from the card", func() {
			So(page.Poster, ShouldEqual, "https://img/card.jpg")
			So(page.Identity, ShouldResemble, card.Identity)
		})

		Convey("Play and Back actions should be offered", func() {
			So(page.Actions, ShouldResemble, []Action{PlayAction, BackAction})
		})
	})

	Convey("Given a record without a title", t, func() {
		Convey("The card title should be used", func() {
			So(NewDetailPage(source.Detail{}, card).Title, ShouldEqual, "Card Title")
		})

		Convey("Without a card title the fixed fallback should be used", func() {
			So(NewDetailPage(source.Detail{}, Card{}).Title, ShouldEqual, TitleUnavailable)
		})
	})

	Convey("Given a full record", t, func() {
		page := NewDetailPage(source.Detail{
			Title:       "Foo",
			Rating:      "8.1",
			ReleaseDate: "2019-05-01",
			Genre:       "Action,Drama",
			Country:     "US",
			Description: "Plot",
			Staff:       []source.CastMember{{Name: "Ann", Role: "Director"}, {Name: "Bob"}},
		}, card)

		So(page.Meta(), ShouldEqual, "8.1 | 2019 | Action / Drama | US")
		So(page.Synopsis, ShouldEqual, "Plot")
		So(page.CastText(), ShouldEqual, "Ann (Director), Bob")
	})
}

package view

import (
	"strings"

	"github.com/samber/lo"
	"github.com/streamflix-cli/streamflix/source"
)

// Action is an activatable control on the detail page.
type Action int

const (
	// PlayAction resolves and plays the stream of the page's title.
	PlayAction Action = iota + 1
	// BackAction returns to the home screen.
	BackAction
)

func (a Action) String() string {
	switch a {
	case PlayAction:
		return "Play Now"
	case BackAction:
		return "Back to Home"
	default:
		return ""
	}
}

// DetailPage is the rendered detail record. Every text field holds either data or a fallback.
type DetailPage struct {
	source.Identity
	Title    string   `json:"title"`
	Poster   string   `json:"poster"`
	Rating   string   `json:"rating"`
	Year     string   `json:"year"`
	Genres   string   `json:"genres"`
	Country  string   `json:"country"`
	Synopsis string   `json:"synopsis"`
	Cast     []string `json:"cast"`
	Actions  []Action `json:"-"`
}

// CastText joins the cast entries, or returns the no-cast fallback.
func (p DetailPage) CastText() string {
	if len(p.Cast) == 0 {
		return NoCast
	}
	return strings.Join(p.Cast, ", ")
}

// Meta is the one-line summary of rating, year, genres and country.
func (p DetailPage) Meta() string {
	return strings.Join([]string{p.Rating, p.Year, p.Genres, p.Country}, " | ")
}

// NewDetailPage renders d for the title behind card. The poster always comes from the card.
func NewDetailPage(d source.Detail, card Card) DetailPage {
	genres := d.Genres()

	return DetailPage{
		Identity: card.Identity,
		Title:    firstNonEmpty(d.Title, card.Title, TitleUnavailable),
		Poster:   card.Cover,
		Rating:   firstNonEmpty(d.Rating, NotAvailable),
		Year:     firstNonEmpty(d.ReleaseYear(), NotAvailable),
		Genres:   lo.Ternary(len(genres) > 0, strings.Join(genres, " / "), NotAvailable),
		Country:  firstNonEmpty(d.Country, NotAvailable),
		Synopsis: firstNonEmpty(d.Description, NoSynopsis),
		Cast: lo.Map(d.Staff, func(c source.CastMember, _ int) string {
			return c.String()
		}),
		Actions: []Action{PlayAction, BackAction},
	}
}

func firstNonEmpty(values ...string) string {
	v, _ := lo.Find(values, func(s string) bool {
		return strings.TrimSpace(s) != ""
	})
	return v
}

package view

import (
	"github.com/streamflix-cli/streamflix/source"
)

// PlaceholderCover is shown for items without a cover image.
const PlaceholderCover = "data:image/svg+xml;charset=UTF-8,%3Csvg%20xmlns%3D%22http%3A%2F%2Fwww.w3.org%2F2000%2Fsvg%22%20width%3D%22150%22%20height%3D%22225%22%20viewBox%3D%220%200%20150%20225%22%3E%3Crect%20width%3D%22150%22%20height%3D%22225%22%20fill%3D%22%23333%22%2F%3E%3Ctext%20x%3D%2275%22%20y%3D%22115%22%20fill%3D%22%23E50914%22%20font-size%3D%2214%22%20text-anchor%3D%22middle%22%3ENo%20Image%3C%2Ftext%3E%3C%2Fsvg%3E"

// zeroRating is the value the API uses for unrated titles.
const zeroRating = "0.0"

// Card is a rendered list tile. Activating it opens the detail page of Identity.
type Card struct {
	source.Identity
	Title  string `json:"title"`
	Cover  string `json:"cover"`
	Rating string `json:"rating"`
}

// HasCover reports whether the card shows a real cover rather than the placeholder.
func (c Card) HasCover() bool {
	return c.Cover != PlaceholderCover
}

func (c Card) String() string {
	return c.Title
}

// NewCard renders item. Items without both identity fields produce no card.
func NewCard(item source.Item) (Card, bool) {
	if !item.Valid() {
		return Card{}, false
	}

	card := Card{
		Identity: item.Identity,
		Title:    item.Title,
		Cover:    item.CoverURL,
		Rating:   item.Rating,
	}

	if card.Title == "" {
		card.Title = TitleUnknown
	}
	if card.Cover == "" {
		card.Cover = PlaceholderCover
	}
	if card.Rating == "" || card.Rating == zeroRating {
		card.Rating = NotAvailable
	}

	return card, true
}

// NewCards renders every valid item in order and reports how many were dropped.
func NewCards(items []source.Item) (cards []Card, dropped int) {
	cards = make([]Card, 0, len(items))
	for _, item := range items {
		if card, ok := NewCard(item); ok {
			cards = append(cards, card)
		} else {
			dropped++
		}
	}
	return cards, dropped
}

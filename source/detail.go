package source

import (
	"strings"

	"github.com/samber/lo"
)

// CastMember is one entry of a title's staff list.
type CastMember struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

func (c CastMember) String() string {
	if c.Role == "" {
		return c.Name
	}
	return c.Name + " (" + c.Role + ")"
}

// Detail is the detail record of a title. Every field may be empty.
type Detail struct {
	Title       string       `json:"title,omitempty"`
	Rating      string       `json:"rating,omitempty"`
	ReleaseDate string       `json:"releaseDate,omitempty"`
	Genre       string       `json:"genre,omitempty"`
	Country     string       `json:"country,omitempty"`
	Description string       `json:"description,omitempty"`
	Staff       []CastMember `json:"staff,omitempty"`
}

// ReleaseYear is the leading four characters of the release date.
func (d Detail) ReleaseYear() string {
	r := []rune(strings.TrimSpace(d.ReleaseDate))
	if len(r) > 4 {
		r = r[:4]
	}
	return string(r)
}

// Genres splits the comma separated genre string.
func (d Detail) Genres() []string {
	return lo.FilterMap(strings.Split(d.Genre, ","), func(g string, _ int) (string, bool) {
		g = strings.TrimSpace(g)
		return g, g != ""
	})
}

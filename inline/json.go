package inline

import (
	"encoding/json"
	"io"

	"github.com/streamflix-cli/streamflix/source"
	"github.com/streamflix-cli/streamflix/view"
)

// Region is the final content of one render target.
type Region struct {
	Name string `json:"name" jsonschema:"enum=movies,enum=series,enum=search,enum=detail,enum=player"`

	// Type is the instruction that produced the content.
	Type string `json:"type" jsonschema:"enum=loading,enum=empty,enum=failure,enum=cards,enum=page,enum=overlay"`

	Text    string            `json:"text,omitempty" jsonschema:"description=Notice text of loading, empty and failure regions."`
	Heading string            `json:"heading,omitempty"`
	Cards   []view.Card       `json:"cards,omitempty"`
	Page    *view.DetailPage  `json:"page,omitempty"`
	Player  *view.PlayerState `json:"player,omitempty"`
}

type Output struct {
	Command string `json:"command"`
	Query   string `json:"query,omitempty"`

	// Kind is the normalized outcome of the request. Stream runs leave it unset;
	// their player region carries the status.
	Kind    source.Kind `json:"kind,omitempty"`
	Message string      `json:"message,omitempty"`

	State   view.State `json:"state"`
	Regions []*Region  `json:"regions"`
}

func newRegion(region view.Region, ins view.Instruction) *Region {
	r := &Region{Name: region.String()}

	switch i := ins.(type) {
	case view.Loading:
		r.Type, r.Text = "loading", i.Text
	case view.Empty:
		r.Type, r.Text = "empty", i.Text
	case view.Failure:
		r.Type, r.Text = "failure", i.Text
	case view.Cards:
		r.Type, r.Heading, r.Cards = "cards", i.Heading, i.Cards
	case view.Page:
		page := i.Page
		r.Type, r.Page = "page", &page
	case view.Overlay:
		player := i.Player
		r.Type, r.Player = "overlay", &player
	}

	return r
}

func writeJson(out io.Writer, output *Output) error {
	if output.Regions == nil {
		output.Regions = []*Region{}
	}

	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(output)
}

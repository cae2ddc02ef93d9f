package view

// Instruction is a render instruction for a single region.
// The set is closed: Loading, Empty, Failure, Cards, Page and Overlay.
type Instruction interface {
	instruction()
}

// Loading replaces the region with a placeholder while a request is in flight.
type Loading struct {
	Text string `json:"text"`
}

// Empty replaces the region with a "nothing found" notice.
type Empty struct {
	Text string `json:"text"`
}

// Failure replaces the region with an error notice.
type Failure struct {
	Text string `json:"text"`
}

// Cards replaces the region with tiles. Heading is optional.
type Cards struct {
	Heading string `json:"heading,omitempty"`
	Cards   []Card `json:"cards"`
}

// Page replaces the detail region with a full detail page.
type Page struct {
	Page DetailPage `json:"page"`
}

// Overlay updates the player overlay.
type Overlay struct {
	Player PlayerState `json:"player"`
}

func (Loading) instruction() {}
func (Empty) instruction()   {}
func (Failure) instruction() {}
func (Cards) instruction()   {}
func (Page) instruction()    {}
func (Overlay) instruction() {}

// Text returns the human readable text of notice instructions, and "" for the others.
func Text(ins Instruction) string {
	switch i := ins.(type) {
	case Loading:
		return i.Text
	case Empty:
		return i.Text
	case Failure:
		return i.Text
	default:
		return ""
	}
}

package source

// Identity is the key pair that detail and stream lookups need.
type Identity struct {
	ID         string `json:"id"`
	DetailPath string `json:"detailPath"`
}

// Valid reports whether both halves of the pair are present.
func (i Identity) Valid() bool {
	return i.ID != "" && i.DetailPath != ""
}

func (i Identity) String() string {
	return i.ID + ":" + i.DetailPath
}

// Item is one entry of a hot or search listing.
type Item struct {
	Identity
	Title    string `json:"title,omitempty"`
	CoverURL string `json:"coverUrl,omitempty"`
	Rating   string `json:"rating,omitempty"`
}

func (i Item) String() string {
	return i.Title
}

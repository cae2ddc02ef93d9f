package source

// Mime types of the two link flavours.
const (
	MimeHLS = "application/x-mpegURL"
	MimeMP4 = "video/mp4"
)

// Resource holds the stream links of a title.
type Resource struct {
	HLS string `json:"hls,omitempty"`
	MP4 string `json:"mp4,omitempty"`
}

// Link returns the HLS link when present, else the MP4 link.
func (r Resource) Link() string {
	if r.HLS != "" {
		return r.HLS
	}
	return r.MP4
}

// MimeType describes the link returned by Link.
func (r Resource) MimeType() string {
	switch {
	case r.HLS != "":
		return MimeHLS
	case r.MP4 != "":
		return MimeMP4
	default:
		return ""
	}
}

// Playable reports whether any link is present.
func (r Resource) Playable() bool {
	return r.Link() != ""
}

package source

import "encoding/json"

// Kind discriminates normalized responses.
type Kind int

const (
	// Success carries the expected payload.
	Success Kind = iota + 1
	// Empty is a well-formed response with nothing to show.
	Empty
	// LinkMissing is a stream resource without any usable link.
	LinkMissing
	// APIError is an explicit error status reported by the API.
	APIError
	// NotFound is a bare message in place of a stream resource.
	NotFound
	// UnknownShape is well-formed JSON without any expected field.
	UnknownShape
	// TransportFailure covers network errors, rejected statuses and undecodable bodies.
	TransportFailure
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Empty:
		return "empty"
	case LinkMissing:
		return "link-missing"
	case APIError:
		return "api-error"
	case NotFound:
		return "not-found"
	case UnknownShape:
		return "unknown-shape"
	case TransportFailure:
		return "transport-failure"
	default:
		return "invalid"
	}
}

// MarshalJSON encodes the kind by name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Outcome is the part every normalized response shares.
type Outcome struct {
	Kind Kind `json:"kind"`

	// Message is the API-provided text for APIError and NotFound.
	Message string `json:"message,omitempty"`

	// Cause is set for TransportFailure.
	Cause error `json:"-"`

	// Raw keeps the body of an UnknownShape response for diagnostics.
	Raw json.RawMessage `json:"-"`
}

// Failed reports whether the outcome is anything other than Success or Empty.
func (o Outcome) Failed() bool {
	return o.Kind != Success && o.Kind != Empty
}

// CauseText is the cause's message, or an empty string.
func (o Outcome) CauseText() string {
	if o.Cause == nil {
		return ""
	}
	return o.Cause.Error()
}

// HotResult is the normalized hot listing. Movies and Series are evaluated independently;
// on Success either may be empty.
type HotResult struct {
	Outcome
	Movies []Item `json:"movies"`
	Series []Item `json:"series"`
}

// SearchResult is the normalized search listing.
type SearchResult struct {
	Outcome
	Items []Item `json:"items"`
}

// DetailResult is the normalized detail lookup.
type DetailResult struct {
	Outcome
	Detail Detail `json:"detail"`
}

// StreamResult is the normalized stream resolution.
type StreamResult struct {
	Outcome
	Resource Resource `json:"resource"`
}

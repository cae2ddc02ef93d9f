package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrMalformed is the cause of a TransportFailure for bodies that are not JSON.
var ErrMalformed = errors.New("malformed response body")

var errNoResponse = errors.New("provider returned no response")

// DefaultAPIErrorMessage stands in for an error status that carries no message.
const DefaultAPIErrorMessage = "The API returned an error status."

// ParseHot normalizes a hot listing. A rejected status is a TransportFailure.
func ParseHot(env *Envelope, err error) HotResult {
	if err = check(env, err); err != nil {
		return HotResult{Outcome: transport(err)}
	}
	if !env.OK() {
		return HotResult{Outcome: transport(&StatusError{Code: env.StatusCode})}
	}

	p, err := decodePayload(env.Body)
	if err != nil {
		return HotResult{Outcome: transport(err)}
	}

	var data struct {
		Movie json.RawMessage `json:"movie"`
		TV    json.RawMessage `json:"tv"`
	}
	decodeObject(p.Data, &data)

	return HotResult{
		Outcome: Outcome{Kind: Success},
		Movies:  decodeItems(data.Movie),
		Series:  decodeItems(data.TV),
	}
}

// ParseSearch normalizes a search listing. The status code is not consulted.
func ParseSearch(env *Envelope, err error) SearchResult {
	if err = check(env, err); err != nil {
		return SearchResult{Outcome: transport(err)}
	}

	p, err := decodePayload(env.Body)
	if err != nil {
		return SearchResult{Outcome: transport(err)}
	}

	var data struct {
		Items json.RawMessage `json:"items"`
	}
	decodeObject(p.Data, &data)

	items := decodeItems(data.Items)
	if len(items) == 0 {
		return SearchResult{Outcome: Outcome{Kind: Empty}}
	}

	return SearchResult{Outcome: Outcome{Kind: Success}, Items: items}
}

// ParseDetail normalizes a detail lookup. Only status "success" with a data object succeeds.
func ParseDetail(env *Envelope, err error) DetailResult {
	if err = check(env, err); err != nil {
		return DetailResult{Outcome: transport(err)}
	}

	p, err := decodePayload(env.Body)
	if err != nil {
		return DetailResult{Outcome: transport(err)}
	}

	switch {
	case p.Status == "success" && isObject(p.Data):
		var d detailPayload
		decodeObject(p.Data, &d)
		return DetailResult{Outcome: Outcome{Kind: Success}, Detail: d.detail()}
	case p.Status == "error":
		return DetailResult{Outcome: Outcome{Kind: APIError, Message: orDefault(string(p.Message))}}
	default:
		return DetailResult{Outcome: unknown(env.Body)}
	}
}

// ParseStream normalizes a stream resolution. Checks run in strict order:
// a resource object wins over an error status, which wins over a bare message.
func ParseStream(env *Envelope, err error) StreamResult {
	if err = check(env, err); err != nil {
		return StreamResult{Outcome: transport(err)}
	}

	p, err := decodePayload(env.Body)
	if err != nil {
		return StreamResult{Outcome: transport(err)}
	}

	var data struct {
		Resource json.RawMessage `json:"resource"`
	}
	if decodeObject(p.Data, &data) && truthy(data.Resource) {
		var links struct {
			HLS text `json:"hls"`
			MP4 text `json:"mp4"`
		}
		decodeObject(data.Resource, &links)

		resource := Resource{HLS: string(links.HLS), MP4: string(links.MP4)}
		if !resource.Playable() {
			return StreamResult{Outcome: Outcome{Kind: LinkMissing}}
		}
		return StreamResult{Outcome: Outcome{Kind: Success}, Resource: resource}
	}

	switch {
	case p.Status == "error":
		return StreamResult{Outcome: Outcome{Kind: APIError, Message: orDefault(string(p.Message))}}
	case p.Message != "":
		return StreamResult{Outcome: Outcome{Kind: NotFound, Message: string(p.Message)}}
	default:
		return StreamResult{Outcome: unknown(env.Body)}
	}
}

type payload struct {
	Status  text            `json:"status"`
	Message text            `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type itemPayload struct {
	SubjectID  text            `json:"subjectId"`
	ID         text            `json:"id"`
	DetailPath text            `json:"detailPath"`
	Title      text            `json:"title"`
	Cover      json.RawMessage `json:"cover"`
	Rating     text            `json:"imdbRatingValue"`
}

func (p itemPayload) item() Item {
	var cover struct {
		URL text `json:"url"`
	}
	decodeObject(p.Cover, &cover)

	id := p.SubjectID
	if id == "" {
		id = p.ID
	}

	return Item{
		Identity: Identity{ID: string(id), DetailPath: string(p.DetailPath)},
		Title:    string(p.Title),
		CoverURL: string(cover.URL),
		Rating:   string(p.Rating),
	}
}

type detailPayload struct {
	Title       text            `json:"title"`
	Rating      text            `json:"imdbRatingValue"`
	ReleaseDate text            `json:"releaseDate"`
	Genre       text            `json:"genre"`
	Country     text            `json:"countryName"`
	Description text            `json:"description"`
	StaffList   json.RawMessage `json:"staffList"`
}

func (p detailPayload) detail() Detail {
	var staff []json.RawMessage
	_ = json.Unmarshal(p.StaffList, &staff)

	var cast []CastMember
	for _, raw := range staff {
		var member struct {
			Name text `json:"name"`
			Role text `json:"role"`
		}
		if decodeObject(raw, &member) && member.Name != "" {
			cast = append(cast, CastMember{Name: string(member.Name), Role: string(member.Role)})
		}
	}

	return Detail{
		Title:       string(p.Title),
		Rating:      string(p.Rating),
		ReleaseDate: string(p.ReleaseDate),
		Genre:       string(p.Genre),
		Country:     string(p.Country),
		Description: string(p.Description),
		Staff:       cast,
	}
}

// decodeItems keeps every object element; identity checks belong to the renderer.
func decodeItems(raw json.RawMessage) []Item {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil
	}

	items := make([]Item, 0, len(elems))
	for _, elem := range elems {
		var p itemPayload
		if decodeObject(elem, &p) {
			items = append(items, p.item())
		}
	}
	return items
}

// decodePayload accepts any JSON document. Non-object documents decode to an empty payload.
func decodePayload(body []byte) (payload, error) {
	var p payload
	if !json.Valid(body) {
		return p, fmt.Errorf("%w (%d bytes)", ErrMalformed, len(body))
	}
	decodeObject(body, &p)
	return p, nil
}

func decodeObject(raw json.RawMessage, v any) bool {
	if !isObject(raw) {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// truthy mirrors the loose presence checks of a JSON consumer: null, false, "", 0 and absence are falsy.
func truthy(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) == 0:
		return false
	case bytes.Equal(trimmed, []byte("null")), bytes.Equal(trimmed, []byte("false")), bytes.Equal(trimmed, []byte(`""`)):
		return false
	case trimmed[0] == '-' || (trimmed[0] >= '0' && trimmed[0] <= '9'):
		f, err := strconv.ParseFloat(string(trimmed), 64)
		return err == nil && f != 0
	default:
		return true
	}
}

func check(env *Envelope, err error) error {
	if err == nil && env == nil {
		return errNoResponse
	}
	return err
}

func transport(err error) Outcome {
	return Outcome{Kind: TransportFailure, Cause: err}
}

func unknown(body []byte) Outcome {
	return Outcome{Kind: UnknownShape, Raw: append(json.RawMessage(nil), body...)}
}

func orDefault(message string) string {
	if message == "" {
		return DefaultAPIErrorMessage
	}
	return message
}

// text decodes any JSON scalar into display text. Strings are kept verbatim and
// non-zero numbers keep their literal form. Everything else, including 0, decodes to "".
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	*t = ""

	switch {
	case len(trimmed) == 0:
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*t = text(s)
	case trimmed[0] == '-' || (trimmed[0] >= '0' && trimmed[0] <= '9'):
		if truthy(trimmed) {
			*t = text(trimmed)
		}
	}

	return nil
}

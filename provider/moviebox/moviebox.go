// Package moviebox is the builtin provider backed by the MovieBox REST API.
package moviebox

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/samber/mo"
	"github.com/streamflix-cli/streamflix/constant"
	"github.com/streamflix-cli/streamflix/log"
	"github.com/streamflix-cli/streamflix/source"
)

const (
	ID   = "moviebox"
	Name = "MovieBox"
)

// Endpoints relative to the base URL.
const (
	hotEndpoint     = "hot-movies-series"
	searchEndpoint  = "search"
	detailsEndpoint = "item-details"
	mediaEndpoint   = "media"
)

// Source talks to the REST API. Responses are returned unparsed.
type Source struct {
	base   *url.URL
	apiKey mo.Option[string]
	client *http.Client
}

// New creates a source rooted at baseURL. A missing apiKey omits the apikey parameter.
func New(baseURL string, apiKey mo.Option[string], client *http.Client) (*Source, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must be http or https", baseURL)
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &Source{base: base, apiKey: apiKey, client: client}, nil
}

func (*Source) Name() string { return Name }
func (*Source) ID() string   { return ID }

func (s *Source) Hot(ctx context.Context) (*source.Envelope, error) {
	return s.get(ctx, hotEndpoint, nil)
}

func (s *Source) Search(ctx context.Context, keyword string) (*source.Envelope, error) {
	return s.get(ctx, searchEndpoint, url.Values{"keyword": {keyword}})
}

func (s *Source) Details(ctx context.Context, id source.Identity) (*source.Envelope, error) {
	return s.get(ctx, detailsEndpoint, identityParams(id))
}

func (s *Source) Media(ctx context.Context, id source.Identity) (*source.Envelope, error) {
	return s.get(ctx, mediaEndpoint, identityParams(id))
}

func identityParams(id source.Identity) url.Values {
	return url.Values{
		"subjectId":  {id.ID},
		"detailPath": {id.DetailPath},
	}
}

// Endpoint builds the request URL of endpoint with params.
func (s *Source) Endpoint(endpoint string, params url.Values) string {
	u := s.base.ResolveReference(&url.URL{Path: endpoint})

	query := url.Values{}
	if apiKey, ok := s.apiKey.Get(); ok {
		query.Set("apikey", apiKey)
	}
	for k, v := range params {
		query[k] = v
	}

	// spaces as %20; a literal + is already %2B
	u.RawQuery = strings.ReplaceAll(query.Encode(), "+", "%20")
	return u.String()
}

func (s *Source) get(ctx context.Context, endpoint string, params url.Values) (*source.Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Endpoint(endpoint, params), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "application/json")

	log.WithField("endpoint", endpoint).Debugf("GET %s", params.Encode())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, redact(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", endpoint, err)
	}

	return &source.Envelope{StatusCode: resp.StatusCode, Body: body}, nil
}

// redact drops the request URL from transport errors so the api key never reaches the screen or the logs.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

package restcountries

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/custodia-labs/corpusfetch/internal/connectors/httpapi"
	"github.com/custodia-labs/corpusfetch/internal/core/domain"
	"github.com/custodia-labs/corpusfetch/internal/core/ports/driven"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// Connector renders country profiles from the REST Countries API.
type Connector struct {
	client    *httpapi.Client
	pacer     httpapi.Pacer
	apiURL    string
	countries []string
}

// Option configures a Connector.
type Option func(*Connector)

// WithAPIURL overrides the name lookup endpoint. Used by tests.
func WithAPIURL(apiURL string) Option {
	return func(c *Connector) {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		c.apiURL = apiURL
	}
}

// WithCountries overrides the default countries. An empty list keeps the defaults.
func WithCountries(countries []string) Option {
	return func(c *Connector) {
		if len(countries) > 0 {
			c.countries = append([]string(nil), countries...)
		}
	}
}

// New creates a new REST Countries connector.
func New(client *httpapi.Client, pacer httpapi.Pacer, opts ...Option) *Connector {
	c := &Connector{
		client:    client,
		pacer:     pacer,
		apiURL:    DefaultAPIURL,
		countries: DefaultCountries(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "restcountries"
}

// Source returns the document source label.
func (c *Connector) Source() domain.SourceLabel {
	return domain.SourceRESTCountries
}

// DefaultKeys returns the configured country names.
func (c *Connector) DefaultKeys() []string {
	return append([]string(nil), c.countries...)
}

// Fetch requests one profile per country name.
func (c *Connector) Fetch(ctx context.Context, keys []string, observe driven.ResultHandler) []domain.FetchResult {
	if len(keys) == 0 {
		keys = c.DefaultKeys()
	}
	return httpapi.FetchEach(ctx, c.Source(), keys, c.pacer, c.fetchCountry, observe)
}

// fetchCountry looks up a country by display name and renders the first match.
// An empty result list produces no document.
func (c *Connector) fetchCountry(ctx context.Context, name string) ([]domain.Document, error) {
	var matches []country
	if err := c.client.GetJSON(ctx, c.apiURL+url.PathEscape(name), nil, &matches); err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no country matches %q", domain.ErrNoContent, name)
	}

	match := &matches[0]
	return []domain.Document{{
		Title:   TitlePrefix + match.commonName(name),
		Content: match.Render(name),
		Source:  domain.SourceRESTCountries,
		URL:     ReferenceURL,
	}}, nil
}

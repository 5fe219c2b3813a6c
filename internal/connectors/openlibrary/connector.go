package openlibrary

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/custodia-labs/corpusfetch/internal/connectors/httpapi"
	"github.com/custodia-labs/corpusfetch/internal/core/domain"
	"github.com/custodia-labs/corpusfetch/internal/core/ports/driven"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// Connector lists top works per subject from the Open Library catalog.
// The subject list is fixed; keys passed to Fetch are ignored.
type Connector struct {
	client   *httpapi.Client
	pacer    httpapi.Pacer
	apiURL   string
	baseURL  string
	limit    int
	subjects []string
}

// Option configures a Connector.
type Option func(*Connector)

// WithAPIURL overrides the subject endpoint. Used by tests.
func WithAPIURL(apiURL string) Option {
	return func(c *Connector) {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		c.apiURL = apiURL
	}
}

// WithLimit caps the works taken per subject. Non-positive values keep the default.
func WithLimit(limit int) Option {
	return func(c *Connector) {
		if limit > 0 {
			c.limit = limit
		}
	}
}

// New creates a new Open Library connector.
func New(client *httpapi.Client, pacer httpapi.Pacer, opts ...Option) *Connector {
	c := &Connector{
		client:   client,
		pacer:    pacer,
		apiURL:   DefaultAPIURL,
		baseURL:  BaseURL,
		limit:    DefaultLimit,
		subjects: DefaultSubjects(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "openlibrary"
}

// Source returns the document source label.
func (c *Connector) Source() domain.SourceLabel {
	return domain.SourceOpenLibrary
}

// DefaultKeys returns the fixed subject list.
func (c *Connector) DefaultKeys() []string {
	return append([]string(nil), c.subjects...)
}

// Limit returns the per-subject work cap.
func (c *Connector) Limit() int {
	return c.limit
}

// Fetch lists works for every subject in the fixed list.
func (c *Connector) Fetch(ctx context.Context, _ []string, observe driven.ResultHandler) []domain.FetchResult {
	return httpapi.FetchEach(ctx, c.Source(), c.DefaultKeys(), c.pacer, c.fetchSubject, observe)
}

// fetchSubject renders up to limit works listed under subject.
func (c *Connector) fetchSubject(ctx context.Context, subject string) ([]domain.Document, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(c.limit))

	var listing subjectListing
	endpoint := c.apiURL + url.PathEscape(subject) + ".json"
	if err := c.client.GetJSON(ctx, endpoint, query, &listing); err != nil {
		return nil, err
	}
	if listing.Works == nil {
		return nil, fmt.Errorf("%w: response has no works", domain.ErrNoContent)
	}

	works := *listing.Works
	if len(works) > c.limit {
		works = works[:c.limit]
	}

	docs := make([]domain.Document, 0, len(works))
	for i := range works {
		w := &works[i]
		docs = append(docs, domain.Document{
			Title:   TitlePrefix + w.title(),
			Content: w.Render(subject),
			Source:  domain.SourceOpenLibrary,
			URL:     c.baseURL + w.Key,
		})
	}
	return docs, nil
}

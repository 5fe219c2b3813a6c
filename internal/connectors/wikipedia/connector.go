package wikipedia

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/corpusfetch/internal/connectors/httpapi"
	"github.com/custodia-labs/corpusfetch/internal/core/domain"
	"github.com/custodia-labs/corpusfetch/internal/core/ports/driven"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// queryResponse is the formatversion=2 shape of action=query&prop=extracts.
type queryResponse struct {
	Query *struct {
		Pages []page `json:"pages"`
	} `json:"query"`
}

type page struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
	Missing bool   `json:"missing"`
}

// Connector fetches plain-text article extracts from Wikipedia.
type Connector struct {
	client *httpapi.Client
	pacer  httpapi.Pacer
	apiURL string
	topics []string
}

// Option configures a Connector.
type Option func(*Connector)

// WithAPIURL overrides the API endpoint. Used by tests.
func WithAPIURL(apiURL string) Option {
	return func(c *Connector) {
		c.apiURL = apiURL
	}
}

// WithTopics overrides the default topics. An empty list keeps the defaults.
func WithTopics(topics []string) Option {
	return func(c *Connector) {
		if len(topics) > 0 {
			c.topics = append([]string(nil), topics...)
		}
	}
}

// New creates a new Wikipedia connector.
func New(client *httpapi.Client, pacer httpapi.Pacer, opts ...Option) *Connector {
	c := &Connector{
		client: client,
		pacer:  pacer,
		apiURL: DefaultAPIURL,
		topics: DefaultTopics(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "wikipedia"
}

// Source returns the document source label.
func (c *Connector) Source() domain.SourceLabel {
	return domain.SourceWikipedia
}

// DefaultKeys returns the configured topics.
func (c *Connector) DefaultKeys() []string {
	return append([]string(nil), c.topics...)
}

// Fetch requests one extract per topic.
func (c *Connector) Fetch(ctx context.Context, keys []string, observe driven.ResultHandler) []domain.FetchResult {
	if len(keys) == 0 {
		keys = c.DefaultKeys()
	}
	return httpapi.FetchEach(ctx, c.Source(), keys, c.pacer, c.fetchTopic, observe)
}

// fetchTopic requests the extract for one title and keeps every page whose
// extract clears the length floor.
func (c *Connector) fetchTopic(ctx context.Context, topic string) ([]domain.Document, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("titles", topic)
	params.Set("prop", "extracts")
	params.Set("explaintext", "1")
	params.Set("exsectionformat", "plain")
	params.Set("formatversion", "2")

	var resp queryResponse
	if err := c.client.GetJSON(ctx, c.apiURL, params, &resp); err != nil {
		return nil, err
	}
	if resp.Query == nil || resp.Query.Pages == nil {
		return nil, ErrMissingPages
	}

	var docs []domain.Document
	for _, p := range resp.Query.Pages {
		if p.Missing || utf8.RuneCountInString(p.Extract) <= MinExtractLength {
			continue
		}
		docs = append(docs, domain.Document{
			Title:   p.Title,
			Content: truncate(p.Extract, MaxContentLength),
			Source:  domain.SourceWikipedia,
			URL:     ArticleURL(p.Title),
		})
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: extract missing or not longer than %d characters", domain.ErrNoContent, MinExtractLength)
	}
	return docs, nil
}

// ArticleURL builds the article link for a canonical title.
func ArticleURL(title string) string {
	return ArticleBaseURL + strings.ReplaceAll(title, " ", "_")
}

// truncate returns the first n characters of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

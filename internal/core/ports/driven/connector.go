package driven

import (
	"context"

	"github.com/custodia-labs/corpusfetch/internal/core/domain"
)

// ResultHandler receives each per-key result as soon as it is known.
type ResultHandler func(domain.FetchResult)

// Connector fetches documents from one upstream API.
// Each connector type (wikipedia, restcountries, openlibrary) implements this interface.
type Connector interface {
	// Type returns the connector type identifier.
	Type() string

	// Source returns the label stamped on every document this connector produces.
	Source() domain.SourceLabel

	// DefaultKeys returns the request keys used when none are supplied.
	DefaultKeys() []string

	// Fetch issues one request per key, in order, and returns one result per key.
	// Failures are recorded in the results and never returned or panicked.
	// A nil or empty keys slice means DefaultKeys. observe may be nil.
	Fetch(ctx context.Context, keys []string, observe ResultHandler) []domain.FetchResult
}

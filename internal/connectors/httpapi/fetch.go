package httpapi

import (
	"context"
	"fmt"

	"github.com/custodia-labs/corpusfetch/internal/core/domain"
	"github.com/custodia-labs/corpusfetch/internal/core/ports/driven"
	"github.com/custodia-labs/corpusfetch/internal/logger"
)

// Pacer spaces requests toward an upstream. *ratelimit.Limiter implements it.
type Pacer interface {
	// Acquire blocks until a request may be issued.
	Acquire(ctx context.Context) error

	// Hold blocks for the post-call delay.
	Hold(ctx context.Context) error
}

// FetchFunc fetches and normalises the documents for one request key.
type FetchFunc func(ctx context.Context, key string) ([]domain.Document, error)

// FetchEach runs fetch once per key, in order, and returns one result per key.
//
// Every failure (transport, status, decode, filtering, invalid document) is
// recorded as an Err result and logged; nothing is retried and nothing
// escapes. The pacer's hold is applied after every request, successful
// or not. Once ctx is done the remaining keys are reported as failed
// without issuing requests.
func FetchEach(
	ctx context.Context,
	source domain.SourceLabel,
	keys []string,
	pacer Pacer,
	fetch FetchFunc,
	observe driven.ResultHandler,
) []domain.FetchResult {
	total := len(keys)
	results := make([]domain.FetchResult, 0, total)

	for i, key := range keys {
		result := domain.FetchResult{Index: i + 1, Total: total, Key: key}

		if err := pacer.Acquire(ctx); err != nil {
			result.Err = &domain.FetchError{Source: source, Key: key, Err: err}
			results = append(results, result)
			notify(observe, result)
			continue
		}

		docs, err := safeFetch(ctx, fetch, key)
		if err == nil {
			err = checkDocuments(source, docs)
		}

		if err != nil {
			result.Err = &domain.FetchError{Source: source, Key: key, Err: err}
			logger.Warn("[%d/%d] %s", result.Index, total, result.Err)
		} else {
			result.Documents = docs
			logger.Debug("[%d/%d] %s: %q -> %d document(s)", result.Index, total, source, key, len(docs))
		}

		results = append(results, result)
		notify(observe, result)

		// Hold after every request; a cancelled hold is picked up by the
		// next Acquire.
		_ = pacer.Hold(ctx)
	}

	return results
}

// safeFetch converts a panic in fetch into an error so one bad payload
// cannot abort the connector.
func safeFetch(ctx context.Context, fetch FetchFunc, key string) (docs []domain.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			docs = nil
			err = fmt.Errorf("panic while fetching: %v", r)
		}
	}()
	return fetch(ctx, key)
}

func checkDocuments(source domain.SourceLabel, docs []domain.Document) error {
	if len(docs) == 0 {
		return domain.ErrNoContent
	}
	for i := range docs {
		if docs[i].Source != source {
			return fmt.Errorf("%w: document source %q, want %q", domain.ErrInvalidInput, docs[i].Source, source)
		}
		if err := docs[i].Validate(); err != nil {
			return fmt.Errorf("document %q: %w", docs[i].Title, err)
		}
	}
	return nil
}

func notify(observe driven.ResultHandler, result domain.FetchResult) {
	if observe != nil {
		observe(result)
	}
}

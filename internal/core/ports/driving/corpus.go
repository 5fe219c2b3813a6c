package driving

import (
	"context"

	"github.com/custodia-labs/corpusfetch/internal/core/domain"
)

// CorpusBuilder runs the ingestion pipeline.
type CorpusBuilder interface {
	// Build fetches every source in order, assembles the corpus and writes it.
	// Per-item failures never surface here; only output failures do.
	Build(ctx context.Context, opts BuildOptions) (*domain.RunReport, error)
}

// BuildOptions tunes a single run.
type BuildOptions struct {
	// DryRun assembles the corpus without writing files.
	DryRun bool

	// Observer receives progress callbacks. May be nil.
	Observer Observer
}

// Observer receives progress events during a build.
type Observer interface {
	// SourceStarted is called before a connector issues its first request.
	SourceStarted(source domain.SourceLabel, keys int)

	// ItemFetched is called once per request key.
	ItemFetched(source domain.SourceLabel, result domain.FetchResult)

	// SourceFinished is called after the connector's last request.
	SourceFinished(summary domain.SourceSummary)
}

// CorpusInspector reads back a written corpus.
type CorpusInspector interface {
	// Inspect loads the aggregate file at path and summarises it.
	Inspect(ctx context.Context, path string) (*Inspection, error)
}

// Inspection is the summary of an aggregate corpus file.
type Inspection struct {
	Path      string
	Documents []domain.Document
	BySource  []domain.SourceCount
}

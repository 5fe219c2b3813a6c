package driven

import (
	"context"

	"github.com/custodia-labs/corpusfetch/internal/core/domain"
)

// CorpusWriter persists an assembled corpus.
type CorpusWriter interface {
	// WriteAggregate writes the whole corpus as one structured file,
	// replacing any previous file.
	WriteAggregate(ctx context.Context, corpus *domain.Corpus) error

	// WriteDocuments writes one flat text file per document in corpus order.
	// There is no rollback: a failure leaves the files written so far.
	WriteDocuments(ctx context.Context, corpus *domain.Corpus) error

	// Locations returns the aggregate file path and the documents directory.
	Locations() (jsonPath, documentsDir string)
}

// CorpusReader reads an aggregate corpus file.
type CorpusReader interface {
	// ReadAggregate returns the documents stored at path.
	ReadAggregate(ctx context.Context, path string) ([]domain.Document, error)
}

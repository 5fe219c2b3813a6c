package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/corpusfetch/internal/core/domain"
	"github.com/custodia-labs/corpusfetch/internal/core/ports/driven"
	"github.com/custodia-labs/corpusfetch/internal/core/ports/driving"
)

// Ensure InspectService implements the interface.
var _ driving.CorpusInspector = (*InspectService)(nil)

// InspectService summarises aggregate corpus files.
type InspectService struct {
	reader driven.CorpusReader
}

// NewInspectService creates a new inspect service.
func NewInspectService(reader driven.CorpusReader) *InspectService {
	return &InspectService{reader: reader}
}

// Inspect reads the aggregate file at path and counts documents per source.
func (s *InspectService) Inspect(ctx context.Context, path string) (*driving.Inspection, error) {
	docs, err := s.reader.ReadAggregate(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return &driving.Inspection{
		Path:      path,
		Documents: docs,
		BySource:  domain.CountBySource(docs),
	}, nil
}

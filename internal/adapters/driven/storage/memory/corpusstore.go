package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/corpusfetch/internal/core/domain"
	"github.com/custodia-labs/corpusfetch/internal/core/ports/driven"
)

// Ensure CorpusStore implements the interfaces.
var (
	_ driven.CorpusWriter = (*CorpusStore)(nil)
	_ driven.CorpusReader = (*CorpusStore)(nil)
)

// CorpusStore is an in-memory implementation of driven.CorpusWriter and
// driven.CorpusReader. It backs dry runs and tests.
type CorpusStore struct {
	mu        sync.RWMutex
	aggregate map[string][]domain.Document
	documents []domain.Document
	jsonPath  string
	docsDir   string
	failWith  error
}

// NewCorpusStore creates a new in-memory corpus store that records writes
// under the given logical locations.
func NewCorpusStore(jsonPath, documentsDir string) *CorpusStore {
	return &CorpusStore{
		aggregate: make(map[string][]domain.Document),
		jsonPath:  jsonPath,
		docsDir:   documentsDir,
	}
}

// FailWith makes every subsequent write return err. Nil restores normal writes.
func (s *CorpusStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

// Locations returns the logical aggregate path and documents directory.
func (s *CorpusStore) Locations() (jsonPath, documentsDir string) {
	return s.jsonPath, s.docsDir
}

// WriteAggregate stores a copy of the corpus under the aggregate path.
func (s *CorpusStore) WriteAggregate(ctx context.Context, corpus *domain.Corpus) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	s.aggregate[s.jsonPath] = corpus.Documents()
	return nil
}

// WriteDocuments stores a copy of the corpus as the per-document output.
func (s *CorpusStore) WriteDocuments(ctx context.Context, corpus *domain.Corpus) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	s.documents = corpus.Documents()
	return nil
}

// ReadAggregate returns the documents written under path.
func (s *CorpusStore) ReadAggregate(_ context.Context, path string) ([]domain.Document, error) {
	if path == "" {
		path = s.jsonPath
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs, ok := s.aggregate[path]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]domain.Document(nil), docs...), nil
}

// Documents returns the last per-document write, nil if none happened.
func (s *CorpusStore) Documents() []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.documents == nil {
		return nil
	}
	return append([]domain.Document(nil), s.documents...)
}

// Written reports whether any aggregate has been written.
func (s *CorpusStore) Written() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.aggregate) > 0
}

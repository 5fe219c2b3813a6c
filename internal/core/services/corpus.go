package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/corpusfetch/internal/core/domain"
	"github.com/custodia-labs/corpusfetch/internal/core/ports/driven"
	"github.com/custodia-labs/corpusfetch/internal/core/ports/driving"
	"github.com/custodia-labs/corpusfetch/internal/logger"
)

// Ensure CorpusService implements the interface.
var _ driving.CorpusBuilder = (*CorpusService)(nil)

// CorpusService assembles a corpus from connectors, in order, and writes it.
type CorpusService struct {
	connectors []driven.Connector
	writer     driven.CorpusWriter
	now        func() time.Time
}

// NewCorpusService creates a corpus service. Connectors run in the order given;
// that order is the order of the written corpus.
func NewCorpusService(connectors []driven.Connector, writer driven.CorpusWriter) *CorpusService {
	return &CorpusService{
		connectors: connectors,
		writer:     writer,
		now:        time.Now,
	}
}

// Build runs every connector to completion, then writes the frozen corpus.
//
// Per-key failures are absorbed by the connectors and only show up in the
// report. A cancelled context skips the remaining connectors and all writing,
// leaving previous output untouched. Write failures propagate.
func (s *CorpusService) Build(ctx context.Context, opts driving.BuildOptions) (*domain.RunReport, error) {
	observer := opts.Observer
	if observer == nil {
		observer = nopObserver{}
	}

	report := &domain.RunReport{
		RunID:     uuid.NewString(),
		StartedAt: s.now(),
		DryRun:    opts.DryRun,
	}
	logger.Section("Corpus build " + report.RunID)

	corpus := domain.NewCorpus()
	for _, conn := range s.connectors {
		if err := ctx.Err(); err != nil {
			logger.Warn("skipping %s: %v", conn.Source(), err)
			break
		}

		summary, err := s.runConnector(ctx, conn, corpus, observer)
		if err != nil {
			return nil, err
		}
		report.Sources = append(report.Sources, summary)
	}

	corpus.Freeze()
	report.Total = corpus.Len()
	report.FinishedAt = s.now()

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("build interrupted: %w", err)
	}

	if opts.DryRun {
		logger.Info("dry run: %d document(s) assembled, nothing written", report.Total)
		return report, nil
	}

	if err := s.writer.WriteAggregate(ctx, corpus); err != nil {
		return report, fmt.Errorf("write aggregate: %w", err)
	}
	if err := s.writer.WriteDocuments(ctx, corpus); err != nil {
		return report, fmt.Errorf("write documents: %w", err)
	}
	report.JSONPath, report.DocumentsDir = s.writer.Locations()
	report.FinishedAt = s.now()

	logger.Info("run %s: %d document(s) written in %s", report.RunID, report.Total, report.Duration())
	return report, nil
}

func (s *CorpusService) runConnector(
	ctx context.Context,
	conn driven.Connector,
	corpus *domain.Corpus,
	observer driving.Observer,
) (domain.SourceSummary, error) {
	source := conn.Source()
	keys := conn.DefaultKeys()

	logger.Debug("fetching %d key(s) from %s", len(keys), source)
	observer.SourceStarted(source, len(keys))

	results := conn.Fetch(ctx, keys, func(r domain.FetchResult) {
		observer.ItemFetched(source, r)
	})

	docs := domain.Successful(results)
	if err := corpus.Append(docs...); err != nil {
		return domain.SourceSummary{}, fmt.Errorf("append %s documents: %w", source, err)
	}

	summary := domain.SourceSummary{
		Source:    source,
		Requested: len(results),
		Fetched:   len(docs),
		Failed:    len(domain.Failures(results)),
	}
	observer.SourceFinished(summary)
	return summary, nil
}

type nopObserver struct{}

func (nopObserver) SourceStarted(domain.SourceLabel, int)              {}
func (nopObserver) ItemFetched(domain.SourceLabel, domain.FetchResult) {}
func (nopObserver) SourceFinished(domain.SourceSummary)                {}

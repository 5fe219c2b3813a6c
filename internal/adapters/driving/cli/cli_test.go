package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/custodia-labs/corpusfetch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/corpusfetch/internal/core/domain"
	"github.com/custodia-labs/corpusfetch/internal/core/ports/driving"
	"github.com/custodia-labs/corpusfetch/internal/core/services"
)

// mockBuilder implements driving.CorpusBuilder for testing.
type mockBuilder struct {
	report   *domain.RunReport
	err      error
	results  map[domain.SourceLabel][]domain.FetchResult
	gotOpts  driving.BuildOptions
	settings domain.FetchSettings
}

func (m *mockBuilder) Build(_ context.Context, opts driving.BuildOptions) (*domain.RunReport, error) {
	m.gotOpts = opts
	if opts.Observer != nil {
		for _, summary := range m.report.Sources {
			results := m.results[summary.Source]
			opts.Observer.SourceStarted(summary.Source, len(results))
			for _, r := range results {
				opts.Observer.ItemFetched(summary.Source, r)
			}
			opts.Observer.SourceFinished(summary)
		}
	}
	return m.report, m.err
}

// mockInspector implements driving.CorpusInspector for testing.
type mockInspector struct {
	inspection *driving.Inspection
	err        error
	gotPath    string
}

func (m *mockInspector) Inspect(_ context.Context, path string) (*driving.Inspection, error) {
	m.gotPath = path
	if m.err != nil {
		return nil, m.err
	}
	m.inspection.Path = path
	return m.inspection, nil
}

func sampleReport() *domain.RunReport {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &domain.RunReport{
		RunID:      "run-1",
		StartedAt:  start,
		FinishedAt: start.Add(1500 * time.Millisecond),
		Sources: []domain.SourceSummary{
			{Source: domain.SourceWikipedia, Requested: 2, Fetched: 1, Failed: 1},
			{Source: domain.SourceOpenLibrary, Requested: 1, Fetched: 2},
		},
		Total:        3,
		JSONPath:     "fetched_documents.json",
		DocumentsDir: "sample_documents",
	}
}

func sampleResults() map[domain.SourceLabel][]domain.FetchResult {
	return map[domain.SourceLabel][]domain.FetchResult{
		domain.SourceWikipedia: {
			{Index: 1, Total: 2, Key: "Warranty", Documents: []domain.Document{{Title: "Warranty"}}},
			{Index: 2, Total: 2, Key: "Shipping", Err: &domain.FetchError{
				Source: domain.SourceWikipedia, Key: "Shipping", Err: errors.New("http 503 Service Unavailable"),
			}},
		},
		domain.SourceOpenLibrary: {
			{Index: 1, Total: 1, Key: "retail", Documents: []domain.Document{
				{Title: "Book: One"}, {Title: "Book: Two"},
			}},
		},
	}
}

// setupCLITest installs services backed by an in-memory config store and
// resets every flag touched by the commands.
func setupCLITest(t *testing.T, builder *mockBuilder, inspector *mockInspector) *memory.ConfigStore {
	t.Helper()
	store := memory.NewConfigStore()
	old := wired

	var inspectorPort driving.CorpusInspector
	if inspector != nil {
		inspectorPort = inspector
	}
	SetServices(Services{
		Settings: func(string) (driving.SettingsService, error) {
			return services.NewSettingsService(store), nil
		},
		Builder: func(settings domain.FetchSettings) (driving.CorpusBuilder, error) {
			if builder == nil {
				return nil, errors.New("no builder")
			}
			builder.settings = settings
			return builder, nil
		},
		Inspector: inspectorPort,
		Defaults:  domain.DefaultFetchSettings,
	})

	t.Cleanup(func() {
		wired = old
		verbose, configPath = false, ""
		fetchOutput, fetchDocsDir, fetchDryRun = "", "", false
		fetchTopics, fetchCountries = nil, nil
		configForce = false
		rootCmd.SetArgs(nil)
	})
	return store
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

package domain

import "time"

// SourceSummary reports what one connector did during a run.
type SourceSummary struct {
	Source    SourceLabel
	Requested int
	Fetched   int
	Failed    int
}

// RunReport summarises a completed pipeline run.
type RunReport struct {
	// RunID uniquely identifies the run in logs.
	RunID string

	StartedAt  time.Time
	FinishedAt time.Time

	// Sources holds one summary per connector in pipeline order.
	Sources []SourceSummary

	// Total is the number of documents in the corpus.
	Total int

	// JSONPath and DocumentsDir are empty for dry runs.
	JSONPath     string
	DocumentsDir string
	DryRun       bool
}

// Fetched returns the document count for a source, or 0 if it did not run.
func (r *RunReport) Fetched(source SourceLabel) int {
	for _, s := range r.Sources {
		if s.Source == source {
			return s.Fetched
		}
	}
	return 0
}

// Duration returns the wall-clock run time.
func (r *RunReport) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

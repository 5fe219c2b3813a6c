package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/corpusfetch/internal/core/domain"
)

func TestFetchCmd_Use(t *testing.T) {
	assert.Equal(t, "fetch", fetchCmd.Use)
}

func TestFetchCmd_Flags(t *testing.T) {
	for _, name := range []string{"output", "docs-dir", "dry-run", "topic", "country"} {
		assert.NotNil(t, fetchCmd.Flags().Lookup(name), name)
	}
}

func TestFetchCmd_PrintsProgressAndSummary(t *testing.T) {
	builder := &mockBuilder{report: sampleReport(), results: sampleResults()}
	setupCLITest(t, builder, nil)

	out, err := execute(t, "fetch")

	require.NoError(t, err)
	assert.Contains(t, out, "FETCHING DOCUMENTS FROM PUBLIC SOURCES")
	assert.Contains(t, out, "Fetching from Wikipedia (2 requests)...")
	assert.Contains(t, out, "[1/2] ✓ Fetched: Warranty")
	assert.Contains(t, out, "[2/2] ✗ Error fetching Shipping: http 503 Service Unavailable")
	assert.Contains(t, out, "[1/1] ✓ Fetched: Book: One")
	assert.Contains(t, out, "[1/1] ✓ Fetched: Book: Two")
	assert.Contains(t, out, "✓ Fetched 1 Wikipedia document(s), 1 failed")
	assert.Contains(t, out, "SUMMARY")
	assert.Contains(t, out, "Total documents fetched: 3")
	assert.Contains(t, out, "  - Wikipedia: 1")
	assert.Contains(t, out, "  - Open Library: 2")
	assert.Contains(t, out, "Run run-1 took 1.5s")
	assert.Contains(t, out, "✓ Documents saved to: fetched_documents.json")
	assert.Contains(t, out, "✓ Individual documents saved to: sample_documents/")
	assert.False(t, builder.gotOpts.DryRun)
}

func TestFetchCmd_FlagsOverrideSettings(t *testing.T) {
	builder := &mockBuilder{report: sampleReport()}
	store := setupCLITest(t, builder, nil)
	_ = store.Set("output.json_path", "from-config.json")
	_ = store.Set("wikipedia.topics", []string{"Retail"})

	_, err := execute(t, "fetch",
		"--output", "out.json",
		"--docs-dir", "docs",
		"--topic", "Refund", "--topic", "Warranty",
		"--country", "Japan",
	)

	require.NoError(t, err)
	assert.Equal(t, "out.json", builder.settings.Output.JSONPath)
	assert.Equal(t, "docs", builder.settings.Output.DocumentsDir)
	assert.Equal(t, []string{"Refund", "Warranty"}, builder.settings.Wikipedia.Keys)
	assert.Equal(t, []string{"Japan"}, builder.settings.RESTCountries.Keys)
}

func TestFetchCmd_UsesConfigWithoutFlags(t *testing.T) {
	builder := &mockBuilder{report: sampleReport()}
	store := setupCLITest(t, builder, nil)
	_ = store.Set("output.json_path", "from-config.json")
	_ = store.Set("wikipedia.delay_ms", int64(0))

	_, err := execute(t, "fetch")

	require.NoError(t, err)
	assert.Equal(t, "from-config.json", builder.settings.Output.JSONPath)
	assert.Zero(t, builder.settings.Wikipedia.Delay)
	assert.Equal(t, 300*time.Millisecond, builder.settings.RESTCountries.Delay)
}

func TestFetchCmd_DryRun(t *testing.T) {
	report := sampleReport()
	report.DryRun = true
	report.JSONPath, report.DocumentsDir = "", ""
	builder := &mockBuilder{report: report}
	setupCLITest(t, builder, nil)

	out, err := execute(t, "fetch", "--dry-run")

	require.NoError(t, err)
	assert.True(t, builder.gotOpts.DryRun)
	assert.Contains(t, out, "Dry run: no files written")
	assert.NotContains(t, out, "Documents saved to")
}

func TestFetchCmd_WriteErrorFails(t *testing.T) {
	builder := &mockBuilder{report: sampleReport(), err: errors.New("write aggregate: disk full")}
	setupCLITest(t, builder, nil)

	out, err := execute(t, "fetch")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, out, "Total documents fetched: 3")
}

func TestFetchCmd_InvalidConfig(t *testing.T) {
	builder := &mockBuilder{report: sampleReport()}
	store := setupCLITest(t, builder, nil)
	_ = store.Set("wikipedia.delay_ms", int64(-5))

	_, err := execute(t, "fetch")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFetchCmd_NotConfigured(t *testing.T) {
	setupCLITest(t, nil, nil)
	wired.Builder = nil

	_, err := execute(t, "fetch")

	assert.ErrorIs(t, err, errNotConfigured)
}

func TestCauseOf(t *testing.T) {
	inner := errors.New("timeout")

	assert.Equal(t, "timeout", causeOf(&domain.FetchError{Source: domain.SourceWikipedia, Key: "x", Err: inner}))
	assert.Equal(t, "plain", causeOf(errors.New("plain")))
	assert.Equal(t, "context canceled", causeOf(&domain.FetchError{Err: context.Canceled}))
}

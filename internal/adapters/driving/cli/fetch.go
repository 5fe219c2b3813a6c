package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/corpusfetch/internal/adapters/driving/cli/styles"
	"github.com/custodia-labs/corpusfetch/internal/core/domain"
	"github.com/custodia-labs/corpusfetch/internal/core/ports/driving"
)

// rule separates output sections.
var rule = strings.Repeat("=", 60)

// Fetch flags.
var (
	fetchOutput    string
	fetchDocsDir   string
	fetchDryRun    bool
	fetchTopics    []string
	fetchCountries []string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch documents from all sources and write the corpus",
	Long: `Fetches every configured source in order (Wikipedia, REST Countries,
Open Library), then writes the aggregate JSON file and one text file per
document. Failed items are reported and skipped; the run still succeeds
with whatever was fetched.`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "aggregate JSON file (default fetched_documents.json)")
	fetchCmd.Flags().StringVar(&fetchDocsDir, "docs-dir", "", "directory for per-document text files (default sample_documents)")
	fetchCmd.Flags().BoolVar(&fetchDryRun, "dry-run", false, "fetch and assemble without writing files")
	fetchCmd.Flags().StringSliceVar(&fetchTopics, "topic", nil, "Wikipedia article title to fetch (repeatable)")
	fetchCmd.Flags().StringSliceVar(&fetchCountries, "country", nil, "country name to profile (repeatable)")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	if wired.Builder == nil {
		return errNotConfigured
	}

	settings, err := loadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	applyFetchFlags(settings)

	builder, err := wired.Builder(*settings)
	if err != nil {
		return fmt.Errorf("build pipeline: %w", err)
	}

	st := styles.For(cmd.OutOrStdout())
	cmd.Println(rule)
	cmd.Println(st.Title.Render("FETCHING DOCUMENTS FROM PUBLIC SOURCES"))
	cmd.Println(rule)

	report, err := builder.Build(cmd.Context(), driving.BuildOptions{
		DryRun:   fetchDryRun,
		Observer: &progressPrinter{cmd: cmd, styles: st},
	})
	if report != nil {
		printSummary(cmd, st, report)
	}
	return err
}

// applyFetchFlags overrides settings with explicitly set flags.
func applyFetchFlags(settings *domain.FetchSettings) {
	if fetchOutput != "" {
		settings.Output.JSONPath = fetchOutput
	}
	if fetchDocsDir != "" {
		settings.Output.DocumentsDir = fetchDocsDir
	}
	if len(fetchTopics) > 0 {
		settings.Wikipedia.Keys = fetchTopics
	}
	if len(fetchCountries) > 0 {
		settings.RESTCountries.Keys = fetchCountries
	}
}

// progressPrinter prints one line per fetched item.
type progressPrinter struct {
	cmd    *cobra.Command
	styles *styles.Styles
}

func (p *progressPrinter) SourceStarted(source domain.SourceLabel, keys int) {
	p.cmd.Printf("\n%s\n", p.styles.Subtitle.Render(fmt.Sprintf("Fetching from %s (%d requests)...", source, keys)))
}

func (p *progressPrinter) ItemFetched(_ domain.SourceLabel, r domain.FetchResult) {
	prefix := fmt.Sprintf("  [%d/%d]", r.Index, r.Total)
	if !r.Ok() {
		p.cmd.Printf("%s %s Error fetching %s: %s\n", prefix, p.styles.Cross(), r.Key, causeOf(r.Err))
		return
	}
	for _, doc := range r.Documents {
		p.cmd.Printf("%s %s Fetched: %s\n", prefix, p.styles.Check(), doc.Title)
	}
}

func (p *progressPrinter) SourceFinished(s domain.SourceSummary) {
	mark := p.styles.Check()
	if s.Fetched == 0 {
		mark = p.styles.Warning.Render("!")
	}
	p.cmd.Printf("  %s Fetched %d %s document(s), %d failed\n", mark, s.Fetched, s.Source, s.Failed)
}

// causeOf strips the source and key prefix already shown on the line.
func causeOf(err error) string {
	var fe *domain.FetchError
	if errors.As(err, &fe) && fe.Err != nil {
		return fe.Err.Error()
	}
	return err.Error()
}

func printSummary(cmd *cobra.Command, st *styles.Styles, report *domain.RunReport) {
	cmd.Printf("\n%s\n%s\n%s\n", rule, st.Title.Render("SUMMARY"), rule)
	cmd.Printf("Total documents fetched: %d\n", report.Total)
	for _, s := range report.Sources {
		cmd.Printf("  - %s: %d\n", s.Source, s.Fetched)
	}
	cmd.Println(st.Muted.Render(fmt.Sprintf("Run %s took %s", report.RunID, report.Duration().Round(time.Millisecond))))

	switch {
	case report.DryRun:
		cmd.Printf("\n%s Dry run: no files written\n", st.Warning.Render("!"))
	case report.JSONPath != "":
		cmd.Printf("\n%s Documents saved to: %s\n", st.Check(), report.JSONPath)
		cmd.Printf("%s Individual documents saved to: %s/\n", st.Check(), strings.TrimSuffix(report.DocumentsDir, "/"))
	}
}

// Package cli provides the command-line interface for corpusfetch.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/corpusfetch/internal/core/domain"
	"github.com/custodia-labs/corpusfetch/internal/core/ports/driving"
	"github.com/custodia-labs/corpusfetch/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Global flags.
var (
	verbose    bool
	configPath string
)

// Services wires the CLI to the core. Settings and builders depend on
// flags, so they are constructed per command.
type Services struct {
	// Settings opens the settings service for the config file at path.
	// An empty path selects the default location.
	Settings func(path string) (driving.SettingsService, error)

	// Builder assembles a pipeline for the resolved settings.
	Builder func(settings domain.FetchSettings) (driving.CorpusBuilder, error)

	// Inspector reads back aggregate corpus files.
	Inspector driving.CorpusInspector

	// Defaults returns the built-in settings, including each source's
	// default request keys.
	Defaults func() domain.FetchSettings
}

var wired Services

var errNotConfigured = errors.New("services not configured")

var rootCmd = &cobra.Command{
	Use:   "corpusfetch",
	Short: "Build a RAG document corpus from public APIs",
	Long: `corpusfetch fetches articles from Wikipedia, country profiles from the
REST Countries API and book listings from Open Library, normalises them into
one document schema and writes the corpus as a JSON file plus one text file
per document.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.corpusfetch/config.toml)")
}

// SetServices installs the services used by the commands.
func SetServices(s Services) {
	wired = s
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// loadSettings resolves settings from the --config file.
func loadSettings() (*domain.FetchSettings, error) {
	if wired.Settings == nil {
		return nil, errNotConfigured
	}
	svc, err := wired.Settings(configPath)
	if err != nil {
		return nil, err
	}
	return svc.Get()
}

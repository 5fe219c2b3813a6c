package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/corpusfetch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/corpusfetch/internal/adapters/driving/cli/styles"
	"github.com/custodia-labs/corpusfetch/internal/core/domain"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long: `Writes a commented TOML config file containing every setting and its
default value, including the default topic and country lists. Uses the
--config path when given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a value in the config file",
	Long: `Sets one setting in the config file, creating the file if needed.

Keys:
  http.timeout_seconds                 seconds, may be fractional
  http.user_agent
  rate_limit.max_requests_per_second   0 disables the ceiling
  wikipedia.topics                     comma-separated
  wikipedia.delay_ms
  restcountries.countries              comma-separated
  restcountries.delay_ms
  openlibrary.delay_ms
  openlibrary.limit                    1 to 3
  output.json_path
  output.documents_dir`,
	Example: `  corpusfetch config set wikipedia.topics "E-commerce,Warranty"
  corpusfetch config set openlibrary.limit 2`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if wired.Defaults == nil {
		return errNotConfigured
	}

	path := configPath
	if path == "" {
		p, err := file.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := file.WriteTemplate(path, file.NewTemplate(wired.Defaults()), configForce); err != nil {
		return err
	}

	cmd.Printf("%s Config written to: %s\n", styles.For(cmd.OutOrStdout()).Check(), path)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if wired.Settings == nil {
		return errNotConfigured
	}
	svc, err := wired.Settings(configPath)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	key, value := args[0], args[1]
	if err := svc.Set(key, value); err != nil {
		return err
	}

	cmd.Printf("%s %s = %s\n", styles.For(cmd.OutOrStdout()).Check(), key, value)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	printSettings(cmd, settings)
	return nil
}

func printSettings(cmd *cobra.Command, s *domain.FetchSettings) {
	cmd.Printf("HTTP timeout:        %s\n", s.HTTP.Timeout)
	cmd.Printf("User agent:          %s\n", s.HTTP.UserAgent)
	if s.HTTP.MaxRequestsPerSecond > 0 {
		cmd.Printf("Request ceiling:     %g/s\n", s.HTTP.MaxRequestsPerSecond)
	} else {
		cmd.Println("Request ceiling:     disabled")
	}
	cmd.Printf("Wikipedia:           %s, delay %s\n", keysLabel(s.Wikipedia.Keys), s.Wikipedia.Delay)
	cmd.Printf("REST Countries:      %s, delay %s\n", keysLabel(s.RESTCountries.Keys), s.RESTCountries.Delay)
	cmd.Printf("Open Library:        %d works per subject, delay %s\n", s.OpenLibrary.Limit, s.OpenLibrary.Delay)
	cmd.Printf("Aggregate file:      %s\n", s.Output.JSONPath)
	cmd.Printf("Documents directory: %s\n", s.Output.DocumentsDir)
}

func keysLabel(keys []string) string {
	if len(keys) == 0 {
		return "default keys"
	}
	return strings.Join(keys, ", ")
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/corpusfetch/internal/adapters/driving/cli/styles"
)

const (
	inspectSampleSize  = 5
	inspectTitleLength = 60
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [path]",
	Short: "Summarise an aggregate corpus file",
	Long: `Reads an aggregate JSON file written by fetch and prints the document
count, the per-source breakdown and the first few titles.
Defaults to the configured output path.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	if wired.Inspector == nil {
		return errNotConfigured
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		settings, err := loadSettings()
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
		path = settings.Output.JSONPath
	}

	inspection, err := wired.Inspector.Inspect(cmd.Context(), path)
	if err != nil {
		return err
	}

	st := styles.For(cmd.OutOrStdout())
	cmd.Printf("%s Loaded %d documents from %s\n", st.Check(), len(inspection.Documents), inspection.Path)

	cmd.Println("\nDocument sources breakdown:")
	for _, c := range inspection.BySource {
		cmd.Printf("  - %s: %d documents\n", c.Source, c.Count)
	}

	if len(inspection.Documents) == 0 {
		return nil
	}
	cmd.Println("\nSample documents:")
	for i, doc := range inspection.Documents {
		if i == inspectSampleSize {
			break
		}
		cmd.Printf("  %d. %s\n", i+1, truncateTitle(doc.Title))
	}
	return nil
}

// truncateTitle shortens titles longer than inspectTitleLength characters.
func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= inspectTitleLength {
		return title
	}
	return fmt.Sprintf("%s...", string(runes[:inspectTitleLength]))
}

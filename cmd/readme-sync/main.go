// readme-sync rewrites the "Proverb of the Day" block in README.md,
// selecting today's proverb by UTC day of year. Idempotent: only the
// content between the START/END markers is touched.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aminkakar/pashto-matal-bot/internal/readme"
)

var (
	rootDir string
	dateStr string
	dryRun  bool
)

var rootCmd = &cobra.Command{
	Use:   "readme-sync",
	Short: "Update the README proverb-of-the-day section",
	RunE:  run,

	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&rootDir, "root", ".", "Project root containing README.md and proverbs.json")
	rootCmd.Flags().StringVar(&dateStr, "date", "", "Override date as YYYY-MM-DD (UTC)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the updated README instead of writing it")
}

func run(cmd *cobra.Command, _ []string) error {
	date := time.Now().UTC()
	if dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return fmt.Errorf("invalid --date, expected YYYY-MM-DD: %w", err)
		}
		date = parsed
	}

	return readme.Sync(cmd.Context(), rootDir, date, dryRun, os.Stdout)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

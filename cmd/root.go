package cmd

import (
	"github.com/spf13/cobra"

	"github.com/eliaath/triviahoard/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "triviahoard",
	Short: "Accumulate Open Trivia DB questions into a local store",
	Long: "Triviahoard polls the Open Trivia DB API, deduplicates the questions it\n" +
		"gets back into a JSON store, and keeps a CSV export alongside it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScrape(cmd)
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the JSON store file (overrides TRIVIAHOARD_DB)")
	rootCmd.PersistentFlags().String("csv", "", "Path to the CSV export file (overrides TRIVIAHOARD_CSV)")
	rootCmd.PersistentFlags().Duration("interval", 0, "Pause between fetch cycles (overrides TRIVIAHOARD_INTERVAL)")

	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig builds the runtime config from the environment, then
// applies flag overrides (flags win).
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("csv"); p != "" {
		cfg.CSVPath = p
	}
	if d, _ := cmd.Flags().GetDuration("interval"); d > 0 {
		cfg.Interval = d
	}
	return cfg, nil
}

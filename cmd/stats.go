package cmd

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/eliaath/triviahoard/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-category store counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		st := store.Load(cfg.DBPath, slog.Default())
		counts := st.CategoryCounts()

		categories := make([]string, 0, len(counts))
		for c := range counts {
			categories = append(categories, c)
		}
		slices.Sort(categories)

		for _, c := range categories {
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s %d\n", c, counts[c])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-24s %d\n", "total", st.Len())
		return nil
	},
}

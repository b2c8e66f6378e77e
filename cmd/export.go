package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/eliaath/triviahoard/internal/export"
	"github.com/eliaath/triviahoard/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the current store as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		st := store.Load(cfg.DBPath, slog.Default())
		if err := export.NewCSV(cfg.CSVPath).Export(st.Records()); err != nil {
			return fmt.Errorf("export store: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d questions to %s\n", st.Len(), cfg.CSVPath)
		return nil
	},
}

package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/eliaath/triviahoard/internal/archive"
	"github.com/eliaath/triviahoard/internal/store"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Mirror the store into a SQLite database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		sqlitePath, _ := cmd.Flags().GetString("sqlite")

		st := store.Load(cfg.DBPath, slog.Default())

		arc, err := archive.Open(sqlitePath)
		if err != nil {
			return err
		}
		defer arc.Close()

		n, err := arc.Import(st.Records())
		if err != nil {
			return fmt.Errorf("archive store: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Archived %d questions to %s\n", n, sqlitePath)
		return nil
	},
}

func init() {
	archiveCmd.Flags().String("sqlite", "db.sqlite", "Path to the SQLite archive")
}

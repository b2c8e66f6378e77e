package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/eliaath/triviahoard/cmd"
)

func main() {
	godotenv.Load()
	// Logs go to stderr so the progress line and command output keep
	// stdout to themselves.
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

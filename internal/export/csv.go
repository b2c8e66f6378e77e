// Package export flattens the store into delimited tabular files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/eliaath/triviahoard/internal/store"
)

// header mirrors the record fields, macro category first. There is no
// row-index column.
var header = []string{
	"macro_category",
	"category",
	"type",
	"difficulty",
	"question",
	"correct_answer",
	"incorrect_answers",
}

// CSV writes store snapshots to a fixed path as comma-delimited text.
type CSV struct {
	Path string
}

// NewCSV returns an exporter writing to path.
func NewCSV(path string) *CSV {
	return &CSV{Path: path}
}

// Export overwrites the target with one row per record plus a header
// row. Incorrect answers are joined with "|" into a single column.
func (e *CSV) Export(records []store.Record) error {
	f, err := os.Create(e.Path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.MacroCategory,
			r.Category,
			r.Type,
			r.Difficulty,
			r.Question,
			r.CorrectAnswer,
			strings.Join(r.IncorrectAnswers, "|"),
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}

// Package store persists the accumulated question records as a single
// JSON document on disk.
package store

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/eliaath/triviahoard/internal/category"
	"github.com/eliaath/triviahoard/internal/opentdb"
)

// Record is one stored question together with its macro category.
type Record struct {
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
	MacroCategory    string   `json:"macro_category"`
}

// Key builds the deduplication key for a question: the macro category
// plus a digest of the question text. Identical questions collapse onto
// one key while category grouping stays lossless.
func Key(macro, question string) string {
	sum := sha256.Sum256([]byte(question))
	return fmt.Sprintf("%s/%x", macro, sum[:8])
}

// Store accumulates question records keyed for deduplication. It is the
// single source of truth: every save writes the whole document.
type Store struct {
	path    string
	records map[string]Record
	logger  *slog.Logger
}

// Load reads the store at path. A missing or malformed file is a normal
// start condition, not an error: it is logged and an empty store is
// returned.
func Load(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{path: path, records: make(map[string]Record), logger: logger}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("no store file, starting empty", "path", path)
		return s
	}
	if err != nil {
		logger.Warn("store unreadable, starting empty", "path", path, "error", err)
		return s
	}
	if err := json.Unmarshal(raw, &s.records); err != nil {
		logger.Warn("store malformed, starting empty", "path", path, "error", err)
		s.records = make(map[string]Record)
		return s
	}

	logger.Info("store loaded", "path", path, "questions", len(s.records))
	return s
}

// Merge folds a batch into the store. A re-fetched question overwrites
// its previous record (last write wins on key collision). Returns how
// many records were new to the store.
func (s *Store) Merge(questions []opentdb.Question) int {
	added := 0
	for _, q := range questions {
		macro := category.Macro(q.Category)
		key := Key(macro, q.Question)
		if _, seen := s.records[key]; !seen {
			added++
		}
		s.records[key] = Record{
			Category:         q.Category,
			Type:             q.Type,
			Difficulty:       q.Difficulty,
			Question:         q.Question,
			CorrectAnswer:    q.CorrectAnswer,
			IncorrectAnswers: q.IncorrectAnswers,
			MacroCategory:    macro,
		}
	}
	return added
}

// Save writes the store compactly.
func (s *Store) Save() error { return s.save(false) }

// SaveIndented writes the store pretty-printed, used for the final flush
// when the scraper drains.
func (s *Store) SaveIndented() error { return s.save(true) }

// save writes to a temp file in the target directory and renames it over
// the store path, so a crash mid-write cannot truncate the previous
// document.
func (s *Store) save(indent bool) error {
	var (
		raw []byte
		err error
	)
	if indent {
		raw, err = json.MarshalIndent(s.records, "", "    ")
	} else {
		raw, err = json.Marshal(s.records)
	}
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp store: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp store: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}

// Len returns the number of stored records.
func (s *Store) Len() int { return len(s.records) }

// Path returns the file the store persists to.
func (s *Store) Path() string { return s.path }

// Records returns all records ordered by key. Keys start with the macro
// category, so the result is grouped by category for free.
func (s *Store) Records() []Record {
	keys := make([]string, 0, len(s.records))
	for k := range s.records {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]Record, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.records[k])
	}
	return out
}

// CategoryCounts returns the number of records per macro category.
func (s *Store) CategoryCounts() map[string]int {
	counts := make(map[string]int)
	for _, r := range s.records {
		counts[r.MacroCategory]++
	}
	return counts
}

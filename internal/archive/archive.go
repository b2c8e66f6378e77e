// Package archive mirrors the JSON store into a SQLite database so the
// accumulated questions can be queried with plain SQL.
package archive

import (
	"database/sql"
	"fmt"
	"strings"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"

	"github.com/eliaath/triviahoard/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS questions (
	key               TEXT PRIMARY KEY,
	macro_category    TEXT NOT NULL,
	category          TEXT NOT NULL,
	type              TEXT NOT NULL,
	difficulty        TEXT NOT NULL,
	question          TEXT NOT NULL,
	correct_answer    TEXT NOT NULL,
	incorrect_answers TEXT NOT NULL
);`

// Archive is a SQLite mirror of the question store.
type Archive struct {
	db *sql.DB
}

// Open opens the archive at dsn, creating the schema if needed.
func Open(dsn string) (*Archive, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Archive{db: db}, nil
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// Import upserts records into the questions table, keyed the same way as
// the JSON store, and returns the number of rows written.
func (a *Archive) Import(records []store.Record) (int, error) {
	tx, err := a.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO questions
		(key, macro_category, category, type, difficulty, question, correct_answer, incorrect_answers)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("prepare import: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			store.Key(r.MacroCategory, r.Question),
			r.MacroCategory,
			r.Category,
			r.Type,
			r.Difficulty,
			r.Question,
			r.CorrectAnswer,
			strings.Join(r.IncorrectAnswers, "|"),
		)
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("insert question: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return len(records), nil
}

// Count returns the number of archived questions.
func (a *Archive) Count() (int, error) {
	var n int
	if err := a.db.QueryRow("SELECT COUNT(*) FROM questions").Scan(&n); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

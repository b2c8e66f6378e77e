package scraper

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eliaath/triviahoard/internal/opentdb"
	"github.com/eliaath/triviahoard/internal/store"
)

// fakeFetcher scripts one return value per cycle and then keeps
// repeating the last one.
type fakeFetcher struct {
	token    string
	tokenErr error
	batches  [][]opentdb.Question
	errs     []error
	calls    int
}

func (f *fakeFetcher) RequestToken(ctx context.Context) (string, error) {
	if f.tokenErr != nil {
		return "", f.tokenErr
	}
	return f.token, nil
}

func (f *fakeFetcher) FetchBatch(ctx context.Context, token string) ([]opentdb.Question, error) {
	i := f.calls
	f.calls++
	if i >= len(f.batches) {
		i = len(f.batches) - 1
	}
	if err := f.errs[i]; err != nil {
		return nil, err
	}
	return f.batches[i], nil
}

type recordingExporter struct {
	calls int
	last  []store.Record
	err   error
}

func (e *recordingExporter) Export(records []store.Record) error {
	e.calls++
	e.last = records
	return e.err
}

func question(text string) opentdb.Question {
	return opentdb.Question{
		Category:      "History",
		Type:          "multiple",
		Difficulty:    "easy",
		Question:      text,
		CorrectAnswer: "yes",
	}
}

// instantSleep never blocks; cancel stops the loop after n sleeps.
func instantSleep(n int, cancel context.CancelFunc) func(context.Context, time.Duration) error {
	calls := 0
	return func(ctx context.Context, d time.Duration) error {
		calls++
		if calls >= n {
			cancel()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return nil
	}
}

func testStore(t *testing.T) *store.Store {
	t.Helper()
	return store.Load(filepath.Join(t.TempDir(), "db.json"), nil)
}

func TestRunCleanInterrupt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fetcher := &fakeFetcher{
		token: "tok",
		batches: [][]opentdb.Question{
			{question("Q1?"), question("Q2?")},
			{question("Q3?")},
		},
		errs: []error{nil, nil},
	}
	exporter := &recordingExporter{}
	st := testStore(t)

	var reports []Progress
	s := New(fetcher, st, Options{
		Sleep:      instantSleep(2, cancel),
		Exporter:   exporter,
		OnProgress: func(p Progress) { reports = append(reports, p) },
	})

	err := s.Run(ctx)
	require.NoError(t, err, "interrupt must be a clean stop")

	require.Len(t, reports, 2)
	assert.Equal(t, Progress{Cycle: 1, Fetched: 2, New: 2, Total: 2}, reports[0])
	assert.Equal(t, Progress{Cycle: 2, Fetched: 1, New: 1, Total: 3}, reports[1])
	assert.Equal(t, 2, exporter.calls)
	assert.Len(t, exporter.last, 3)

	// The drain flush is pretty-printed.
	raw, readErr := os.ReadFile(st.Path())
	require.NoError(t, readErr)
	assert.Contains(t, string(raw), "\n    ")
}

func TestRunAPIErrorDrains(t *testing.T) {
	apiErr := &opentdb.APIError{Code: opentdb.CodeRateLimit, Message: "rate limited"}
	fetcher := &fakeFetcher{
		token: "tok",
		batches: [][]opentdb.Question{
			{question("Q1?")},
			nil,
		},
		errs: []error{nil, apiErr},
	}
	st := testStore(t)

	s := New(fetcher, st, Options{
		Sleep: func(ctx context.Context, d time.Duration) error { return nil },
	})

	err := s.Run(context.Background())
	var got *opentdb.APIError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, opentdb.CodeRateLimit, got.Code)

	// The first cycle's data survived the drain.
	loaded := store.Load(st.Path(), nil)
	assert.Equal(t, 1, loaded.Len())
}

func TestRunAuthErrorIsFatalBeforeLoop(t *testing.T) {
	authErr := &opentdb.AuthError{Err: errors.New("no route")}
	fetcher := &fakeFetcher{tokenErr: authErr}
	st := testStore(t)

	s := New(fetcher, st, Options{})
	err := s.Run(context.Background())

	var got *opentdb.AuthError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, 0, fetcher.calls, "no batch may be fetched without a token")

	// The loop never started, so nothing was flushed.
	_, statErr := os.Stat(st.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunExportFailureIsNonFatal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fetcher := &fakeFetcher{
		token:   "tok",
		batches: [][]opentdb.Question{{question("Q1?")}},
		errs:    []error{nil},
	}
	exporter := &recordingExporter{err: errors.New("disk full")}
	st := testStore(t)

	s := New(fetcher, st, Options{
		Sleep:    instantSleep(2, cancel),
		Exporter: exporter,
	})

	err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, exporter.calls, "export keeps being attempted")
	assert.Equal(t, 1, st.Len())
}

func TestRunNilExporterSkipsExport(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fetcher := &fakeFetcher{
		token:   "tok",
		batches: [][]opentdb.Question{{question("Q1?")}},
		errs:    []error{nil},
	}
	st := testStore(t)

	s := New(fetcher, st, Options{Sleep: instantSleep(1, cancel)})
	require.NoError(t, s.Run(ctx))
	assert.Equal(t, 1, st.Len())
}

func TestRunPersistsEveryCycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fetcher := &fakeFetcher{
		token:   "tok",
		batches: [][]opentdb.Question{{question("Q1?")}},
		errs:    []error{nil},
	}
	st := testStore(t)

	var sizeDuringSleep int
	sleep := func(sctx context.Context, d time.Duration) error {
		loaded := store.Load(st.Path(), nil)
		sizeDuringSleep = loaded.Len()
		cancel()
		return sctx.Err()
	}

	s := New(fetcher, st, Options{Sleep: sleep})
	require.NoError(t, s.Run(ctx))
	assert.Equal(t, 1, sizeDuringSleep, "store must be on disk before the pause")
}

func TestStateString(t *testing.T) {
	states := map[state]string{
		stateStarting: "starting",
		stateRunning:  "running",
		stateDraining: "draining",
		stateStopped:  "stopped",
		state(99):     "unknown",
	}
	for s, want := range states {
		assert.Equal(t, want, s.String())
	}
}

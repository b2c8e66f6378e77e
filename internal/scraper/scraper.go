// Package scraper drives the accumulation loop: fetch a batch, merge it
// into the store, persist, export, sleep, repeat until interrupted.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/eliaath/triviahoard/internal/opentdb"
	"github.com/eliaath/triviahoard/internal/store"
)

// DefaultInterval is the pause between fetch cycles. The API rate-limits
// each IP to one request every 5 seconds.
const DefaultInterval = 5500 * time.Millisecond

// Fetcher is the slice of the API client the scraper needs.
type Fetcher interface {
	RequestToken(ctx context.Context) (string, error)
	FetchBatch(ctx context.Context, token string) ([]opentdb.Question, error)
}

// Exporter receives a store snapshot after every cycle. A nil Exporter
// on Options disables export; a failing one is logged and skipped, never
// stopping the loop.
type Exporter interface {
	Export(records []store.Record) error
}

// Progress is the per-cycle report handed to the progress callback.
type Progress struct {
	Cycle   int
	Fetched int
	New     int
	Total   int
}

// Options configures a Scraper. Zero values fall back to defaults.
type Options struct {
	Interval time.Duration
	// Sleep pauses between cycles; tests inject an instant version.
	Sleep func(ctx context.Context, d time.Duration) error
	// OnProgress, if set, is called after every completed cycle.
	OnProgress func(Progress)
	Exporter   Exporter
	Logger     *slog.Logger
}

// Scraper runs the accumulation loop against a store.
type Scraper struct {
	fetcher    Fetcher
	store      *store.Store
	interval   time.Duration
	sleep      func(ctx context.Context, d time.Duration) error
	onProgress func(Progress)
	exporter   Exporter
	logger     *slog.Logger
}

// New builds a Scraper over fetcher and st.
func New(fetcher Fetcher, st *store.Store, opts Options) *Scraper {
	s := &Scraper{
		fetcher:    fetcher,
		store:      st,
		interval:   opts.Interval,
		sleep:      opts.Sleep,
		onProgress: opts.OnProgress,
		exporter:   opts.Exporter,
		logger:     opts.Logger,
	}
	if s.interval <= 0 {
		s.interval = DefaultInterval
	}
	if s.sleep == nil {
		s.sleep = sleepContext
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Loop lifecycle states.
type state int

const (
	stateStarting state = iota
	stateRunning
	stateDraining
	stateStopped
)

func (s state) String() string {
	switch s {
	case stateStarting:
		return "starting"
	case stateRunning:
		return "running"
	case stateDraining:
		return "draining"
	case stateStopped:
		return "stopped"
	}
	return "unknown"
}

// Run executes the loop until ctx is cancelled or a cycle fails. Once
// the loop has started, the store is flushed pretty-printed before Run
// returns, whatever the cause. A cancelled ctx is a clean stop and
// returns nil; token-acquisition failure aborts before the first cycle;
// anything else drains and is returned to the caller.
func (s *Scraper) Run(ctx context.Context) error {
	logger := s.logger.With("run_id", uuid.NewString())
	logger.Info("scraper state", "state", stateStarting, "store", s.store.Len())

	token, err := s.fetcher.RequestToken(ctx)
	if err != nil {
		return fmt.Errorf("start scraper: %w", err)
	}

	logger.Info("scraper state", "state", stateRunning)
	runErr := s.loop(ctx, logger, token)

	logger.Info("scraper state", "state", stateDraining)
	if err := s.store.SaveIndented(); err != nil {
		logger.Error("final store flush failed", "error", err)
		if runErr == nil {
			runErr = err
		}
	} else {
		logger.Info("store flushed", "path", s.store.Path(), "questions", s.store.Len())
	}
	logger.Info("scraper state", "state", stateStopped)

	if errors.Is(runErr, context.Canceled) || errors.Is(runErr, context.DeadlineExceeded) {
		return nil
	}
	return runErr
}

func (s *Scraper) loop(ctx context.Context, logger *slog.Logger, token string) error {
	for cycle := 1; ; cycle++ {
		questions, err := s.fetcher.FetchBatch(ctx, token)
		if err != nil {
			return fmt.Errorf("cycle %d: %w", cycle, err)
		}

		added := s.store.Merge(questions)
		if err := s.store.Save(); err != nil {
			return fmt.Errorf("cycle %d: %w", cycle, err)
		}

		if s.exporter != nil {
			if err := s.exporter.Export(s.store.Records()); err != nil {
				logger.Warn("export skipped", "error", err)
			}
		}

		report := Progress{
			Cycle:   cycle,
			Fetched: len(questions),
			New:     added,
			Total:   s.store.Len(),
		}
		logger.Info("cycle complete",
			"cycle", report.Cycle,
			"fetched", report.Fetched,
			"new", report.New,
			"total", report.Total)
		if s.onProgress != nil {
			s.onProgress(report)
		}

		if err := s.sleep(ctx, s.interval); err != nil {
			return err
		}
	}
}

// sleepContext blocks for d or until ctx is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

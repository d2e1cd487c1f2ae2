// Package state owns the in-memory pipeline state: the current snapshot
// and the append-only history. Exactly one Store exists per process; it
// is the single writer, and all mutation happens through RunCycle.
package state

import (
	"context"
	"sync"
	"time"

	"codeberg.org/mvbarbosa/robodata/internal/errors"
	"codeberg.org/mvbarbosa/robodata/internal/feed"
	"codeberg.org/mvbarbosa/robodata/internal/logger"
	"codeberg.org/mvbarbosa/robodata/internal/storage"
)

type Config struct {
	// HistoryLimit caps the retained history when > 0. The default of 0
	// preserves the original unbounded behavior.
	HistoryLimit int
}

func (c Config) Validate() error {
	if c.HistoryLimit < 0 {
		return errors.New().WithData(ErrInvalidHistoryLimit, c.HistoryLimit)
	}
	return nil
}

// Store holds current + historical snapshots and drives the cycle:
// generate, transform, swap current, append history, persist. Reads and
// the single writer share the mutex, so a reader never observes a
// half-built snapshot.
type Store struct {
	mu      sync.RWMutex
	current *feed.Snapshot
	history []feed.HistoricalRecord

	gen  Generator
	docs storage.DocumentStore
	cfg  Config
	now  func() time.Time

	obsMu     sync.Mutex
	observers []Observer
}

// New builds the store and loads any previously persisted documents.
// Load problems are tolerated per document: a missing file starts that
// document empty, a corrupt one is logged and skipped. Construction only
// fails on invalid arguments.
func New(cfg Config, gen Generator, docs storage.DocumentStore) (*Store, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if docs == nil {
		return nil, errFactory.New(ErrNilDocumentStore)
	}

	s := &Store{
		gen:  gen,
		docs: docs,
		cfg:  cfg,
		now:  time.Now,
	}
	s.loadCurrent()
	s.loadHistory()

	return s, nil
}

func (s *Store) loadCurrent() {
	var snap feed.Snapshot
	err := s.docs.Read(storage.CurrentDocument, &snap)
	switch {
	case err == nil:
		s.current = &snap
		logger.Info().Msg("Loaded persisted current snapshot")
	case storage.IsNotFound(err):
		logger.Debug().Msg("No persisted current snapshot, starting empty")
	default:
		logger.Warn().Err(err).Msg("Failed to load current snapshot, starting empty")
	}
}

func (s *Store) loadHistory() {
	var history []feed.HistoricalRecord
	err := s.docs.Read(storage.HistoryDocument, &history)
	switch {
	case err == nil:
		s.history = history
		logger.Info().Int("records", len(history)).Msg("Loaded persisted history")
	case storage.IsNotFound(err):
		logger.Debug().Msg("No persisted history, starting empty")
	default:
		logger.Warn().Err(err).Msg("Failed to load history, starting empty")
	}
}

// RunCycle executes one full update pass. The in-memory swap and append
// always complete together under the lock; persistence failures are
// logged and swallowed, leaving the next cycle to resync the files.
func (s *Store) RunCycle(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.New().Wrap(ErrCycleCancelled, err)
	}

	s.mu.Lock()
	result := s.runCycleLocked()
	s.mu.Unlock()

	s.notify(result)

	return nil
}

// runCycleLocked does the actual work; callers hold s.mu.
func (s *Store) runCycleLocked() CycleResult {
	started := s.now()

	raw := s.gen.Generate()
	snap := feed.Transform(raw)

	s.current = &snap

	collectedAt := s.now().UTC().Format(time.RFC3339Nano)
	s.history = append(s.history, feed.HistoricalRecord{
		CollectedAt: collectedAt,
		Data:        snap,
	})
	if s.cfg.HistoryLimit > 0 && len(s.history) > s.cfg.HistoryLimit {
		s.history = s.history[len(s.history)-s.cfg.HistoryLimit:]
	}

	persistOK := true
	if err := s.docs.Write(storage.CurrentDocument, snap); err != nil {
		persistOK = false
		logger.Error().Err(err).Msg("Failed to persist current snapshot")
	}
	if err := s.docs.Write(storage.HistoryDocument, s.history); err != nil {
		persistOK = false
		logger.Error().Err(err).Msg("Failed to persist history")
	}

	logger.Debug().
		Str("collected_at", collectedAt).
		Int("history_records", len(s.history)).
		Bool("persist_ok", persistOK).
		Msg("Cycle complete")

	return CycleResult{
		Snapshot:       snap,
		CollectedAt:    collectedAt,
		Duration:       s.now().Sub(started),
		PersistOK:      persistOK,
		HistoryRecords: len(s.history),
	}
}

// Current returns the latest snapshot without triggering a cycle.
func (s *Store) Current() (feed.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return feed.Snapshot{}, false
	}
	return *s.current, true
}

// CurrentOrBootstrap returns the latest snapshot, running one cycle
// synchronously iff none exists yet. The bootstrap shares the writer
// lock, so concurrent first readers collapse onto a single cycle.
func (s *Store) CurrentOrBootstrap(ctx context.Context) (feed.Snapshot, error) {
	s.mu.RLock()
	if s.current != nil {
		snap := *s.current
		s.mu.RUnlock()
		return snap, nil
	}
	s.mu.RUnlock()

	if err := ctx.Err(); err != nil {
		return feed.Snapshot{}, errors.New().Wrap(ErrCycleCancelled, err)
	}

	s.mu.Lock()
	if s.current != nil {
		// Another reader bootstrapped while we waited for the lock
		snap := *s.current
		s.mu.Unlock()
		return snap, nil
	}

	logger.Info().Msg("No current snapshot, bootstrapping first cycle")
	result := s.runCycleLocked()
	s.mu.Unlock()

	s.notify(result)

	return result.Snapshot, nil
}

// History returns the in-memory history in insertion order. Callers must
// treat the returned slice as read-only.
func (s *Store) History() []feed.HistoricalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.history
}

// Subscribe registers an observer for completed cycles.
func (s *Store) Subscribe(obs Observer) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()

	s.observers = append(s.observers, obs)
}

func (s *Store) notify(result CycleResult) {
	s.obsMu.Lock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.obsMu.Unlock()

	for _, obs := range observers {
		obs(result)
	}
}

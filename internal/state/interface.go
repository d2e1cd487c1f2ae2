package state

import (
	"time"

	"codeberg.org/mvbarbosa/robodata/internal/feed"
)

// Generator produces one raw reading per collection cycle.
type Generator interface {
	Generate() feed.RawReading
}

// CycleResult describes one completed update cycle. Observers receive a
// copy after the in-memory state has been swapped and persistence has
// been attempted.
type CycleResult struct {
	Snapshot       feed.Snapshot
	CollectedAt    string
	Duration       time.Duration
	PersistOK      bool
	HistoryRecords int
}

// Observer is notified after every completed cycle, outside the store's
// lock. Observers must not call back into the store synchronously.
type Observer func(CycleResult)

package metrics

import (
	"context"
	"time"
)

// Collector defines the core domain interface
type Collector interface {
	Record(ctx context.Context, snapshot *CycleSnapshot) error
	Close() error
}

// Repository defines the interface for metrics data storage
type Repository interface {
	Record(snapshot *CycleSnapshot) error
	Close() error
}

// CycleSnapshot captures the observable stats of one update cycle
type CycleSnapshot struct {
	Timestamp      time.Time
	Duration       time.Duration
	PersistOK      bool
	PalletID       int
	MeanMotorTemp  float64
	HistoryRecords int
}

package metrics_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"codeberg.org/mvbarbosa/robodata/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func TestDisabledCollectorIsNoop(t *testing.T) {
	collector, err := metrics.NewService(metrics.Config{Enabled: false})
	require.NoError(t, err)

	err = collector.Record(context.Background(), &metrics.CycleSnapshot{Timestamp: time.Now()})
	require.NoError(t, err)
	require.NoError(t, collector.Close())
}

func TestEnabledRequiresDBPath(t *testing.T) {
	_, err := metrics.NewService(metrics.Config{Enabled: true, DBPath: ""})
	require.Error(t, err)
}

func TestRecordPersistsCycleRow(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "metrics.db")
	collector, err := metrics.NewService(metrics.Config{Enabled: true, DBPath: dbPath})
	require.NoError(t, err)

	snap := &metrics.CycleSnapshot{
		Timestamp:      time.Now(),
		Duration:       1500 * time.Microsecond,
		PersistOK:      true,
		PalletID:       42,
		MeanMotorTemp:  71.5,
		HistoryRecords: 3,
	}
	require.NoError(t, collector.Record(context.Background(), snap))
	require.NoError(t, collector.Close())

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count, palletID int
	var meanTemp float64
	row := db.QueryRow("SELECT COUNT(*), pallet_id, mean_motor_temperature FROM cycles")
	require.NoError(t, row.Scan(&count, &palletID, &meanTemp))
	assert.Equal(t, 1, count)
	assert.Equal(t, 42, palletID)
	assert.InDelta(t, 71.5, meanTemp, 1e-9)
}

func TestRecordNilSnapshot(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "metrics.db")
	collector, err := metrics.NewService(metrics.Config{Enabled: true, DBPath: dbPath})
	require.NoError(t, err)
	defer collector.Close()

	err = collector.Record(context.Background(), nil)
	require.Error(t, err)
}

func TestRecordCancelledContext(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "metrics.db")
	collector, err := metrics.NewService(metrics.Config{Enabled: true, DBPath: dbPath})
	require.NoError(t, err)
	defer collector.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = collector.Record(ctx, &metrics.CycleSnapshot{Timestamp: time.Now()})
	require.Error(t, err)
}

package metrics

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	"codeberg.org/mvbarbosa/robodata/internal/errors"
	"codeberg.org/mvbarbosa/robodata/internal/logger"

	_ "github.com/mattn/go-sqlite3"
)

type sqliteRepository struct {
	db *sql.DB
	mu sync.Mutex
}

func NewRepository(cfg Config) (Repository, error) {
	errFactory := errors.New()

	if cfg.DBPath == "" {
		return nil, errFactory.New(ErrInvalidDBPath)
	}

	logger.Debug().Msgf("Initializing metrics repository at: %s", cfg.DBPath)

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), defaultDirPerm); err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	return &sqliteRepository{
		db: db,
	}, nil
}

func (r *sqliteRepository) Record(snapshot *CycleSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`
        INSERT INTO cycles (
            timestamp, duration_us, persist_ok,
            pallet_id, mean_motor_temperature, history_records
        ) VALUES (?, ?, ?, ?, ?, ?)
        ON CONFLICT(timestamp) DO UPDATE SET
            duration_us = excluded.duration_us,
            persist_ok = excluded.persist_ok,
            pallet_id = excluded.pallet_id,
            mean_motor_temperature = excluded.mean_motor_temperature,
            history_records = excluded.history_records
    `,
		snapshot.Timestamp.UnixNano(),
		snapshot.Duration.Microseconds(),
		boolToInt(snapshot.PersistOK),
		snapshot.PalletID,
		snapshot.MeanMotorTemp,
		snapshot.HistoryRecords,
	)
	if err != nil {
		return errors.New().Wrap(ErrStorageAccess, err)
	}

	return nil
}

func (r *sqliteRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.db.Close(); err != nil {
		return errors.New().Wrap(ErrStorageClose, err)
	}
	return nil
}

package metrics

import (
	"database/sql"

	"codeberg.org/mvbarbosa/robodata/internal/errors"
)

// initSchema initializes the database schema for cycle metrics
func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS cycles (
            timestamp INTEGER PRIMARY KEY,
            duration_us INTEGER,
            persist_ok INTEGER,
            pallet_id INTEGER,
            mean_motor_temperature REAL,
            history_records INTEGER
        )
    `)
	if err != nil {
		return errors.New().Wrap(ErrSchemaInit, err)
	}

	return nil
}

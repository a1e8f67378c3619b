package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

var pragmas = []string{
	"PRAGMA journal_mode = WAL;",
	"PRAGMA foreign_keys = ON;",
	"PRAGMA busy_timeout = 5000;",
}

// InitDB opens/creates a SQLite DB file and ensures tables exist.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", p, err)
		}
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const schemaInventory = `
CREATE TABLE IF NOT EXISTS inventory (
    product_id TEXT PRIMARY KEY,
    owned BOOLEAN NOT NULL,
    bottle_size_ml REAL NOT NULL,
    current_ml REAL NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

const schemaDoseLogs = `
CREATE TABLE IF NOT EXISTS dose_logs (
    id TEXT PRIMARY KEY,
    logged_at TIMESTAMP NOT NULL,
    liters REAL NOT NULL,
    week INTEGER NOT NULL,
    substrate TEXT NOT NULL,
    products TEXT NOT NULL,
    total_ml REAL NOT NULL,
    notes TEXT
);
`

const schemaPlants = `
CREATE TABLE IF NOT EXISTS plants (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    strain TEXT,
    stage TEXT NOT NULL,
    planted_date TIMESTAMP,
    harvest_date TIMESTAMP,
    created_at TIMESTAMP NOT NULL
);
`

const schemaGrowEvents = `
CREATE TABLE IF NOT EXISTS grow_events (
    id TEXT PRIMARY KEY,
    occurred_at TIMESTAMP NOT NULL,
    type TEXT NOT NULL,
    message TEXT NOT NULL,
    meta TEXT
);
`

const schemaGrowEventsIndex = `
CREATE INDEX IF NOT EXISTS idx_grow_events_occurred_at ON grow_events (occurred_at);
`

const schemaTelemetryState = `
CREATE TABLE IF NOT EXISTS telemetry_state (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    ec REAL NOT NULL,
    ph REAL NOT NULL,
    temp_c REAL NOT NULL,
    tank_percent REAL NOT NULL,
    soil TEXT,
    pump_running BOOLEAN NOT NULL,
    pump_progress REAL NOT NULL,
    alerts TEXT,
    updated_at TIMESTAMP NOT NULL
);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaInventory,
		schemaDoseLogs,
		schemaPlants,
		schemaGrowEvents,
		schemaGrowEventsIndex,
		schemaTelemetryState,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}

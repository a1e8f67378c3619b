package db

import (
	"path/filepath"
	"testing"
)

func TestInitDB_CreatesSchema(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "grow.db")
	conn, err := InitDB(path)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer conn.Close()

	for _, table := range []string{"inventory", "dose_logs", "plants", "grow_events", "telemetry_state"} {
		var name string
		err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}

	// a second open must be a no-op for the schema
	again, err := InitDB(path)
	if err != nil {
		t.Fatalf("re-InitDB: %v", err)
	}
	_ = again.Close()
}

func TestInitDB_TelemetrySingleRow(t *testing.T) {
	t.Parallel()

	conn, err := InitDB(filepath.Join(t.TempDir(), "grow.db"))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer conn.Close()

	_, err = conn.Exec(`INSERT INTO telemetry_state (id, ec, ph, temp_c, tank_percent, pump_running, pump_progress, updated_at)
		VALUES (2, 0, 0, 0, 0, 0, 0, CURRENT_TIMESTAMP)`)
	if err == nil {
		t.Fatalf("expected CHECK (id = 1) to reject id 2")
	}
}

package db

// SchemaSQL is the complete schema for fresh patrol installs.
//
// This is the single source of truth for the database schema. All tests
// use it via GetSchemaSQL() so the schema under test never drifts from
// the schema shipped to users.
//
// Column formats are the wire formats of the original data files and
// must be preserved for compatibility with existing databases:
// start_time/end_time are HHmm strings ("" = unset), date is yyyy-MM-dd.
const SchemaSQL = `
-- Current state (crash recovery): at most one in-flight row per location
CREATE TABLE IF NOT EXISTS current_patrol_state (
	location TEXT PRIMARY KEY,
	start_time TEXT NOT NULL DEFAULT '',
	end_time TEXT NOT NULL DEFAULT ''
);

-- History (append-only ledger of completed patrols)
CREATE TABLE IF NOT EXISTS patrol_records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL,
	shift TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL,
	start_time TEXT NOT NULL DEFAULT '',
	end_time TEXT NOT NULL DEFAULT '',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_patrol_records_date ON patrol_records(date);
CREATE INDEX IF NOT EXISTS idx_patrol_records_shift ON patrol_records(shift);
`

// InitSchema creates the tables for a fresh install. Every statement is
// idempotent, so running it against an existing database is a no-op.
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	_, err = db.Exec(SchemaSQL)
	return err
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}

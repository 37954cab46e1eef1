package db

// SchemaSQL is the complete schema for fresh fftpub installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All repository
// tests use it via GetSchemaSQL() instead of hardcoding CREATE TABLE
// statements, so repository code referencing a column that does not exist
// here fails immediately with "no such column" at development time.
const SchemaSQL = `
-- Monthly national rolling totals, one row per service type and period
CREATE TABLE IF NOT EXISTS rolling_totals (
	service TEXT NOT NULL,
	period TEXT NOT NULL,
	period_key INTEGER NOT NULL,
	total_responses INTEGER NOT NULL,
	total_eligible INTEGER NOT NULL,
	entity_count INTEGER NOT NULL,
	excl_is_responses INTEGER NOT NULL,
	excl_is_eligible INTEGER NOT NULL,
	recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (service, period)
);

CREATE INDEX IF NOT EXISTS idx_rolling_totals_order ON rolling_totals(service, period_key);

-- Processing run history
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	service TEXT NOT NULL,
	period TEXT NOT NULL,
	entities INTEGER NOT NULL,
	masked INTEGER NOT NULL,
	output_path TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`

// InitSchema creates the database schema
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	if _, err := db.Exec(SchemaSQL); err != nil {
		return err
	}

	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}

package journal

import "database/sql"

// runMigrations creates the journal schema if it does not exist yet.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS transitions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			item_id TEXT NOT NULL,
			pipeline TEXT NOT NULL,
			from_stage TEXT NOT NULL,
			to_stage TEXT NOT NULL,
			moved_by TEXT NOT NULL,
			moved_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transitions_pipeline
		ON transitions(pipeline, id)
	`)
	return err
}

package db

import "database/sql"

// MigrateUp creates the schema if it does not exist and seeds the default
// settings. Safe to run on every startup.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS summaries (
    id                 SERIAL PRIMARY KEY,
    title              TEXT NOT NULL DEFAULT '',
    input_text         TEXT NOT NULL,
    summary_text       TEXT NOT NULL,
    summary_type       VARCHAR(20) NOT NULL,
    summary_length     VARCHAR(20) NOT NULL,
    target_percentage  INTEGER NOT NULL,
    input_word_count   INTEGER NOT NULL,
    summary_word_count INTEGER NOT NULL,
    actual_percentage  DOUBLE PRECISION NOT NULL,
    compression_ratio  DOUBLE PRECISION NOT NULL,
    created_at         TIMESTAMPTZ DEFAULT now(),
    deleted_at         TIMESTAMPTZ
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS settings (
    key        VARCHAR(64) PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at TIMESTAMPTZ DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS notifications (
    id         SERIAL PRIMARY KEY,
    title      TEXT NOT NULL,
    message    TEXT NOT NULL,
    read       BOOLEAN DEFAULT FALSE,
    created_at TIMESTAMPTZ DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// History listing orders by created_at DESC and skips deleted rows.
		`CREATE INDEX IF NOT EXISTS idx_summaries_created_at ON summaries(created_at DESC) WHERE deleted_at IS NULL`,
		// Purge scans soft-deleted rows by deletion time.
		`CREATE INDEX IF NOT EXISTS idx_summaries_deleted_at ON summaries(deleted_at) WHERE deleted_at IS NOT NULL`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_created_at ON notifications(created_at DESC)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite database schema.
// Dates are stored as 'YYYY-MM-DD' text and booleans as 0/1 integers.
func InitSchema(ctx context.Context, db *sql.DB) error {
	createDonorsQuery := `
	CREATE TABLE IF NOT EXISTS donors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		gender TEXT NOT NULL DEFAULT '',
		blood_type TEXT NOT NULL DEFAULT '',
		date_of_birth TEXT,
		state TEXT NOT NULL,
		city TEXT NOT NULL,
		registration_date TEXT NOT NULL,
		is_eligible INTEGER NOT NULL CHECK (is_eligible IN (0, 1))
	);
	`

	createInventoryQuery := `
	CREATE TABLE IF NOT EXISTS blood_inventory (
		blood_type TEXT PRIMARY KEY,
		units INTEGER NOT NULL DEFAULT 0 CHECK (units >= 0)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_donors_state_city_eligible
	ON donors(state, city, is_eligible);
	`

	return execSchema(ctx, db, []string{
		createDonorsQuery,
		createInventoryQuery,
		createIndexQuery,
	})
}

func execSchema(ctx context.Context, db *sql.DB, statements []string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

package repositories

import (
	"context"
	"database/sql"
)

// Initialize the PostgreSQL database schema.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	createDonorsQuery := `
	CREATE TABLE IF NOT EXISTS donors (
		id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		gender TEXT NOT NULL DEFAULT '',
		blood_type TEXT NOT NULL DEFAULT '',
		date_of_birth DATE,
		state TEXT NOT NULL,
		city TEXT NOT NULL,
		registration_date DATE NOT NULL,
		is_eligible BOOLEAN NOT NULL
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

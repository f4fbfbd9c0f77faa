package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blood-donation-service/internal/domain"
	"blood-donation-service/internal/platform/obs"
)

// SQLite-backed implementation of the InventoryRepository port.
type SqliteInventoryRepository struct{ DB *sql.DB }

func NewSqliteInventoryRepository(db *sql.DB) *SqliteInventoryRepository {
	return &SqliteInventoryRepository{DB: db}
}

// Return all inventory rows stored in the database.
func (s *SqliteInventoryRepository) ListInventory(ctx context.Context) (_ []domain.BloodInventory, err error) {
	defer obs.Time(ctx, "inventory.sqlite.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite inventory repository: DB is nil")
	}

	return listInventory(ctx, s.DB, `
	SELECT
		blood_type,
		units
	FROM blood_inventory
	ORDER BY blood_type;
	`)
}

func (s *SqliteInventoryRepository) GetInventory(ctx context.Context, bloodType string) (_ domain.BloodInventory, err error) {
	defer obs.Time(ctx, "inventory.sqlite.Get")(&err)

	if s.DB == nil {
		return domain.BloodInventory{}, errors.New("sqlite inventory repository: DB is nil")
	}

	return getInventory(ctx, s.DB, `
	SELECT
		blood_type,
		units
	FROM blood_inventory
	WHERE blood_type = ?;
	`, bloodType)
}

// Insert or overwrite inventory rows in a single transaction.
func (s *SqliteInventoryRepository) UpsertInventory(ctx context.Context, items []domain.BloodInventory) (err error) {
	defer obs.Time(ctx, "inventory.sqlite.Upsert")(&err)

	if s.DB == nil {
		return errors.New("sqlite inventory repository: DB is nil")
	}

	return upsertInventory(ctx, s.DB, `
	INSERT OR REPLACE INTO blood_inventory (
		blood_type,
		units
	)
	VALUES (?, ?);
	`, items)
}

func listInventory(ctx context.Context, db *sql.DB, query string) ([]domain.BloodInventory, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: query blood_inventory table: %w", err)
	}
	defer rows.Close()

	items := make([]domain.BloodInventory, 0, 8)
	for rows.Next() {
		var item domain.BloodInventory
		if err := rows.Scan(&item.BloodType, &item.Units); err != nil {
			return nil, fmt.Errorf("list inventory: scan row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list inventory: row iteration: %w", err)
	}

	return items, nil
}

func getInventory(ctx context.Context, db *sql.DB, query string, bloodType string) (domain.BloodInventory, error) {
	var item domain.BloodInventory
	err := db.QueryRowContext(ctx, query, bloodType).Scan(&item.BloodType, &item.Units)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.BloodInventory{}, fmt.Errorf("get inventory blood_type=%q: %w", bloodType, domain.ErrNotFound)
	}
	if err != nil {
		return domain.BloodInventory{}, fmt.Errorf("get inventory blood_type=%q: %w", bloodType, err)
	}
	return item, nil
}

func upsertInventory(ctx context.Context, db *sql.DB, query string, items []domain.BloodInventory) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("upsert inventory: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("upsert inventory: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("upsert inventory blood_type=%q: %w", item.BloodType, err)
		}
		if _, err := stmt.ExecContext(ctx, item.BloodType, item.Units); err != nil {
			return fmt.Errorf("upsert inventory blood_type=%q: %w", item.BloodType, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("upsert inventory: commit tx: %w", err)
	}

	return nil
}

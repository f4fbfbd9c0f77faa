package repositories

import (
	"context"
	"database/sql"
	"errors"

	"blood-donation-service/internal/domain"
	"blood-donation-service/internal/platform/obs"
)

// PostgreSQL-backed implementation of the InventoryRepository port.
type SQLInventoryRepository struct{ DB *sql.DB }

func NewSQLInventoryRepository(db *sql.DB) *SQLInventoryRepository {
	return &SQLInventoryRepository{DB: db}
}

func (s *SQLInventoryRepository) ListInventory(ctx context.Context) (_ []domain.BloodInventory, err error) {
	defer obs.Time(ctx, "inventory.sql.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql inventory repository: db is nil")
	}

	return listInventory(ctx, s.DB, `
	SELECT
		blood_type,
		units
	FROM blood_inventory
	ORDER BY blood_type;
	`)
}

func (s *SQLInventoryRepository) GetInventory(ctx context.Context, bloodType string) (_ domain.BloodInventory, err error) {
	defer obs.Time(ctx, "inventory.sql.Get")(&err)

	if s.DB == nil {
		return domain.BloodInventory{}, errors.New("sql inventory repository: db is nil")
	}

	return getInventory(ctx, s.DB, `
	SELECT
		blood_type,
		units
	FROM blood_inventory
	WHERE blood_type = $1;
	`, bloodType)
}

func (s *SQLInventoryRepository) UpsertInventory(ctx context.Context, items []domain.BloodInventory) (err error) {
	defer obs.Time(ctx, "inventory.sql.Upsert")(&err)

	if s.DB == nil {
		return errors.New("sql inventory repository: db is nil")
	}

	return upsertInventory(ctx, s.DB, `
	INSERT INTO blood_inventory (blood_type, units)
	VALUES ($1, $2)
	ON CONFLICT (blood_type) DO UPDATE
	SET units = EXCLUDED.units;
	`, items)
}

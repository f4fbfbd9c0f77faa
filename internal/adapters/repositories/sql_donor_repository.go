package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blood-donation-service/internal/domain"
	"blood-donation-service/internal/platform/obs"
)

// PostgreSQL-backed implementation of the DonorRepository port.
type SQLDonorRepository struct{ DB *sql.DB }

func NewSQLDonorRepository(db *sql.DB) *SQLDonorRepository {
	return &SQLDonorRepository{DB: db}
}

func (s *SQLDonorRepository) ListDonors(ctx context.Context) (_ []domain.Donor, err error) {
	defer obs.Time(ctx, "donors.sql.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql donor repository: db is nil")
	}

	query := `SELECT` + donorColumns + `
	FROM donors
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list donors: query donors table: %w", err)
	}

	donors, err := collectDonors(rows, scanSQLDonor)
	if err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	return donors, nil
}

func (s *SQLDonorRepository) CreateDonor(ctx context.Context, d domain.Donor) (_ domain.Donor, err error) {
	defer obs.Time(ctx, "donors.sql.Create")(&err)

	if s.DB == nil {
		return domain.Donor{}, errors.New("sql donor repository: db is nil")
	}

	query := `
	INSERT INTO donors (
		first_name,
		last_name,
		email,
		phone,
		gender,
		blood_type,
		date_of_birth,
		state,
		city,
		registration_date,
		is_eligible
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING id;
	`
	var dob sql.NullTime
	if d.DateOfBirth != nil {
		dob = sql.NullTime{Time: *d.DateOfBirth, Valid: true}
	}

	err = s.DB.QueryRowContext(ctx, query,
		d.FirstName,
		d.LastName,
		d.Email,
		d.Phone,
		d.Gender,
		d.BloodType,
		dob,
		d.State,
		d.City,
		d.RegistrationDate,
		d.IsEligible,
	).Scan(&d.ID)
	if err != nil {
		return domain.Donor{}, fmt.Errorf("create donor: insert: %w", err)
	}

	return d, nil
}

func (s *SQLDonorRepository) GetDonor(ctx context.Context, id int64) (_ domain.Donor, err error) {
	defer obs.Time(ctx, "donors.sql.Get")(&err)

	if s.DB == nil {
		return domain.Donor{}, errors.New("sql donor repository: db is nil")
	}

	query := `SELECT` + donorColumns + `
	FROM donors
	WHERE id = $1;
	`
	d, err := scanSQLDonor(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Donor{}, fmt.Errorf("get donor id=%d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Donor{}, fmt.Errorf("get donor id=%d: %w", id, err)
	}

	return d, nil
}

func (s *SQLDonorRepository) FindDonorsByLocation(
	ctx context.Context,
	state string,
	city string,
	eligible bool,
) (_ []domain.Donor, err error) {
	defer obs.Time(ctx, "donors.sql.FindByLocation")(&err)

	if s.DB == nil {
		return nil, errors.New("sql donor repository: db is nil")
	}

	query := `SELECT` + donorColumns + `
	FROM donors
	WHERE state = $1
		AND city = $2
		AND is_eligible = $3
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query, state, city, eligible)
	if err != nil {
		return nil, fmt.Errorf("find donors: query donors table: %w", err)
	}

	donors, err := collectDonors(rows, scanSQLDonor)
	if err != nil {
		return nil, fmt.Errorf("find donors: %w", err)
	}
	return donors, nil
}

func scanSQLDonor(row rowScanner) (domain.Donor, error) {
	var d domain.Donor
	var dob sql.NullTime

	err := row.Scan(
		&d.ID,
		&d.FirstName,
		&d.LastName,
		&d.Email,
		&d.Phone,
		&d.Gender,
		&d.BloodType,
		&dob,
		&d.State,
		&d.City,
		&d.RegistrationDate,
		&d.IsEligible,
	)
	if err != nil {
		return domain.Donor{}, err
	}

	d.RegistrationDate = domain.DateOf(d.RegistrationDate)
	if dob.Valid {
		t := domain.DateOf(dob.Time)
		d.DateOfBirth = &t
	}

	return d, nil
}

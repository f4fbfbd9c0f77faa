package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"blood-donation-service/internal/domain"
	"blood-donation-service/internal/platform/obs"
)

const donorColumns = `
		id,
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
		is_eligible`

type rowScanner interface {
	Scan(dest ...any) error
}

// SQLite-backed implementation of the DonorRepository port.
type SqliteDonorRepository struct{ DB *sql.DB }

func NewSqliteDonorRepository(db *sql.DB) *SqliteDonorRepository {
	return &SqliteDonorRepository{DB: db}
}

// Return all donors stored in the database.
func (s *SqliteDonorRepository) ListDonors(ctx context.Context) (_ []domain.Donor, err error) {
	defer obs.Time(ctx, "donors.sqlite.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite donor repository: DB is nil")
	}

	query := `SELECT` + donorColumns + `
	FROM donors
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list donors: query donors table: %w", err)
	}

	donors, err := collectDonors(rows, scanSqliteDonor)
	if err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	return donors, nil
}

// Insert a donor row and return it with the assigned id.
func (s *SqliteDonorRepository) CreateDonor(ctx context.Context, d domain.Donor) (_ domain.Donor, err error) {
	defer obs.Time(ctx, "donors.sqlite.Create")(&err)

	if s.DB == nil {
		return domain.Donor{}, errors.New("sqlite donor repository: DB is nil")
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
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	var dob sql.NullString
	if d.DateOfBirth != nil {
		dob = sql.NullString{String: d.DateOfBirth.Format(domain.DateLayout), Valid: true}
	}

	res, err := s.DB.ExecContext(ctx, query,
		d.FirstName,
		d.LastName,
		d.Email,
		d.Phone,
		d.Gender,
		d.BloodType,
		dob,
		d.State,
		d.City,
		d.RegistrationDate.Format(domain.DateLayout),
		boolToInt(d.IsEligible),
	)
	if err != nil {
		return domain.Donor{}, fmt.Errorf("create donor: insert: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Donor{}, fmt.Errorf("create donor: last insert id: %w", err)
	}
	d.ID = id

	return d, nil
}

// Return a single donor by id.
func (s *SqliteDonorRepository) GetDonor(ctx context.Context, id int64) (_ domain.Donor, err error) {
	defer obs.Time(ctx, "donors.sqlite.Get")(&err)

	if s.DB == nil {
		return domain.Donor{}, errors.New("sqlite donor repository: DB is nil")
	}

	query := `SELECT` + donorColumns + `
	FROM donors
	WHERE id = ?;
	`
	d, err := scanSqliteDonor(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Donor{}, fmt.Errorf("get donor id=%d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Donor{}, fmt.Errorf("get donor id=%d: %w", id, err)
	}

	return d, nil
}

// Return donors whose state and city match exactly and whose eligibility equals eligible.
func (s *SqliteDonorRepository) FindDonorsByLocation(
	ctx context.Context,
	state string,
	city string,
	eligible bool,
) (_ []domain.Donor, err error) {
	defer obs.Time(ctx, "donors.sqlite.FindByLocation")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite donor repository: DB is nil")
	}

	// TEXT comparison uses the BINARY collation, so matching is case-sensitive.
	query := `SELECT` + donorColumns + `
	FROM donors
	WHERE state = ?
		AND city = ?
		AND is_eligible = ?
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query, state, city, boolToInt(eligible))
	if err != nil {
		return nil, fmt.Errorf("find donors: query donors table: %w", err)
	}

	donors, err := collectDonors(rows, scanSqliteDonor)
	if err != nil {
		return nil, fmt.Errorf("find donors: %w", err)
	}
	return donors, nil
}

func scanSqliteDonor(row rowScanner) (domain.Donor, error) {
	var d domain.Donor
	var dob sql.NullString
	var registered string
	var eligible int64

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
		&registered,
		&eligible,
	)
	if err != nil {
		return domain.Donor{}, err
	}

	d.RegistrationDate, err = time.Parse(domain.DateLayout, registered)
	if err != nil {
		return domain.Donor{}, fmt.Errorf("parse registration_date %q for donor %d: %w", registered, d.ID, err)
	}
	if dob.Valid {
		t, err := time.Parse(domain.DateLayout, dob.String)
		if err != nil {
			return domain.Donor{}, fmt.Errorf("parse date_of_birth %q for donor %d: %w", dob.String, d.ID, err)
		}
		d.DateOfBirth = &t
	}
	d.IsEligible = eligible != 0

	return d, nil
}

// Drain rows into donors, always closing rows.
func collectDonors(rows *sql.Rows, scan func(rowScanner) (domain.Donor, error)) ([]domain.Donor, error) {
	defer rows.Close()

	donors := make([]domain.Donor, 0, 16)
	for rows.Next() {
		d, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		donors = append(donors, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}

	return donors, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

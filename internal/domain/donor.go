package domain

import (
	"strings"
	"time"
)

// Calendar-date wire and storage format.
const DateLayout = "2006-01-02"

// Represents a registered blood donor.
// RegistrationDate and IsEligible are owned by the server: they are assigned
// at registration and any client-supplied values are discarded.
type Donor struct {
	ID               int64
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Gender           string
	BloodType        string
	DateOfBirth      *time.Time
	State            string
	City             string
	RegistrationDate time.Time
	IsEligible       bool
}

// DateOf returns the calendar date of t (in t's location) as UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// PrepareRegistration returns a copy of d ready to be inserted: the store
// assigns the id, the registration date becomes the date of now and the
// donor starts out eligible.
func (d Donor) PrepareRegistration(now time.Time) Donor {
	d.ID = 0
	d.RegistrationDate = DateOf(now)
	d.IsEligible = true
	if d.DateOfBirth != nil {
		dob := DateOf(*d.DateOfBirth)
		d.DateOfBirth = &dob
	}
	return d
}

// Validate checks the fields backed by NOT NULL columns.
func (d Donor) Validate() error {
	var problems []string
	if strings.TrimSpace(d.FirstName) == "" {
		problems = append(problems, "firstName is required")
	}
	if strings.TrimSpace(d.State) == "" {
		problems = append(problems, "state is required")
	}
	if strings.TrimSpace(d.City) == "" {
		problems = append(problems, "city is required")
	}
	return newValidationError(problems)
}

// MatchesSearch reports whether d belongs in the eligible-donor search for
// state and city. Matching is exact and case-sensitive.
func (d Donor) MatchesSearch(state, city string) bool {
	return d.IsEligible && d.State == state && d.City == city
}

// Location filter for the eligible-donor search.
type DonorSearch struct {
	State string
	City  string
}

func (s DonorSearch) Validate() error {
	var problems []string
	if strings.TrimSpace(s.State) == "" {
		problems = append(problems, "state is required")
	}
	if strings.TrimSpace(s.City) == "" {
		problems = append(problems, "city is required")
	}
	return newValidationError(problems)
}

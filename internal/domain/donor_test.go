package domain

import (
	"errors"
	"testing"
	"time"
)

func TestDonorPrepareRegistration(t *testing.T) {
	old := time.Date(1999, 5, 4, 0, 0, 0, 0, time.UTC)
	dob := time.Date(1990, 2, 3, 15, 30, 0, 0, time.UTC)
	d := Donor{
		ID:               42,
		FirstName:        "A",
		State:            "CA",
		City:             "LA",
		DateOfBirth:      &dob,
		RegistrationDate: old,
		IsEligible:       false,
	}

	now := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)
	got := d.PrepareRegistration(now)

	if got.ID != 0 {
		t.Errorf("ID = %d, want 0", got.ID)
	}
	if !got.IsEligible {
		t.Errorf("IsEligible = false, want true")
	}
	want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	if !got.RegistrationDate.Equal(want) {
		t.Errorf("RegistrationDate = %v, want %v", got.RegistrationDate, want)
	}
	if got.DateOfBirth == nil || !got.DateOfBirth.Equal(time.Date(1990, 2, 3, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("DateOfBirth = %v, want 1990-02-03", got.DateOfBirth)
	}

	// the receiver is a value; the caller's donor is untouched
	if d.ID != 42 || d.IsEligible || !d.RegistrationDate.Equal(old) {
		t.Errorf("input donor mutated: %+v", d)
	}
}

func TestDateOfUsesLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*60*60)
	late := time.Date(2026, 1, 1, 22, 0, 0, 0, loc)

	got := DateOf(late)
	want := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("DateOf = %v, want %v", got, want)
	}
}

func TestDonorValidate(t *testing.T) {
	tests := []struct {
		name     string
		donor    Donor
		problems int
	}{
		{"complete", Donor{FirstName: "A", State: "CA", City: "LA"}, 0},
		{"missing first name", Donor{State: "CA", City: "LA"}, 1},
		{"blank location", Donor{FirstName: "A", State: " ", City: ""}, 2},
		{"empty", Donor{}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.donor.Validate()
			if tt.problems == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %T, want *ValidationError", err)
			}
			if len(verr.Problems) != tt.problems {
				t.Fatalf("problems = %v, want %d", verr.Problems, tt.problems)
			}
		})
	}
}

func TestDonorMatchesSearch(t *testing.T) {
	d := Donor{State: "CA", City: "LA", IsEligible: true}

	if !d.MatchesSearch("CA", "LA") {
		t.Errorf("eligible donor should match its own location")
	}
	if d.MatchesSearch("ca", "LA") {
		t.Errorf("match must be case-sensitive")
	}
	if d.MatchesSearch("CA", "SF") {
		t.Errorf("different city must not match")
	}

	d.IsEligible = false
	if d.MatchesSearch("CA", "LA") {
		t.Errorf("ineligible donor must not match")
	}
}

func TestDonorSearchValidate(t *testing.T) {
	if err := (DonorSearch{State: "TX", City: "Austin"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (DonorSearch{State: "TX"}).Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("missing city: err = %v, want ErrValidation", err)
	}
}

func TestBloodInventoryValidate(t *testing.T) {
	if err := (BloodInventory{BloodType: "O-", Units: 0}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (BloodInventory{BloodType: "", Units: -1}).Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

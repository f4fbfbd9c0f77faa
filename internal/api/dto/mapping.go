package dto

import (
	"fmt"
	"strings"
	"time"

	"blood-donation-service/internal/domain"
)

// ToDomain converts the request into a Donor. An empty dateOfBirth is
// treated as unknown; any other value must be YYYY-MM-DD.
func (r DonorRequest) ToDomain() (domain.Donor, error) {
	d := domain.Donor{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Gender:    r.Gender,
		BloodType: r.BloodType,
		State:     r.State,
		City:      r.City,
	}

	if dob := strings.TrimSpace(r.DateOfBirth); dob != "" {
		t, err := time.Parse(domain.DateLayout, dob)
		if err != nil {
			return domain.Donor{}, &domain.ValidationError{
				Problems: []string{fmt.Sprintf("dateOfBirth must be YYYY-MM-DD (got %q)", r.DateOfBirth)},
			}
		}
		d.DateOfBirth = &t
	}

	return d, nil
}

func NewDonorResponse(d domain.Donor) DonorResponse {
	res := DonorResponse{
		ID:               d.ID,
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		Email:            d.Email,
		Phone:            d.Phone,
		Gender:           d.Gender,
		BloodType:        d.BloodType,
		State:            d.State,
		City:             d.City,
		RegistrationDate: d.RegistrationDate.Format(domain.DateLayout),
		IsEligible:       d.IsEligible,
	}
	if d.DateOfBirth != nil {
		dob := d.DateOfBirth.Format(domain.DateLayout)
		res.DateOfBirth = &dob
	}
	return res
}

// NewDonorListResponse never returns nil, so empty results encode as [].
func NewDonorListResponse(donors []domain.Donor) []DonorResponse {
	res := make([]DonorResponse, 0, len(donors))
	for _, d := range donors {
		res = append(res, NewDonorResponse(d))
	}
	return res
}

func NewInventoryResponse(item domain.BloodInventory) InventoryResponse {
	return InventoryResponse{BloodType: item.BloodType, Units: item.Units}
}

func NewInventoryListResponse(items []domain.BloodInventory) []InventoryResponse {
	res := make([]InventoryResponse, 0, len(items))
	for _, it := range items {
		res = append(res, NewInventoryResponse(it))
	}
	return res
}

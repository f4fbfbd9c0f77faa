package dto

// DonorRequest is the registration payload. Server-owned fields (id,
// registrationDate, isEligible) are not decoded, so client values for them
// are dropped.
type DonorRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Gender      string `json:"gender"`
	BloodType   string `json:"bloodType"`
	DateOfBirth string `json:"dateOfBirth"`
	State       string `json:"state"`
	City        string `json:"city"`
}

type DonorResponse struct {
	ID               int64   `json:"id"`
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	Gender           string  `json:"gender"`
	BloodType        string  `json:"bloodType"`
	DateOfBirth      *string `json:"dateOfBirth"`
	State            string  `json:"state"`
	City             string  `json:"city"`
	RegistrationDate string  `json:"registrationDate"`
	IsEligible       bool    `json:"isEligible"`
}

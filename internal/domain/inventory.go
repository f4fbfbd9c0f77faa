package domain

import (
	"fmt"
	"strings"
)

// Represents the stock held for one blood type.
// BloodType is the external identifier (e.g. "O-"); it is never generated
// by the service. Units is a plain count with no expiry or threshold rules.
type BloodInventory struct {
	BloodType string
	Units     int
}

func (b BloodInventory) Validate() error {
	var problems []string
	if strings.TrimSpace(b.BloodType) == "" {
		problems = append(problems, "bloodType is required")
	}
	if b.Units < 0 {
		problems = append(problems, fmt.Sprintf("units must not be negative (got %d)", b.Units))
	}
	return newValidationError(problems)
}

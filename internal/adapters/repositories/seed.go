package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"blood-donation-service/internal/domain"
)

type InventorySeed struct {
	BloodType string `json:"bloodType"`
	Units     int    `json:"units"`
}

// Read and validate inventory seed rows from a JSON file.
// Duplicate blood types are rejected rather than silently merged.
func LoadInventorySeed(jsonPath string) ([]domain.BloodInventory, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed inventory: read %q: %w", jsonPath, err)
	}

	var data []InventorySeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed inventory: parse json: %w", err)
	}

	seen := make(map[string]struct{}, len(data))
	rows := make([]domain.BloodInventory, 0, len(data))
	for i, item := range data {
		row := domain.BloodInventory{
			BloodType: strings.TrimSpace(item.BloodType),
			Units:     item.Units,
		}
		if err := row.Validate(); err != nil {
			return nil, fmt.Errorf("seed inventory: item at index %d: %w", i+1, err)
		}
		if _, ok := seen[row.BloodType]; ok {
			return nil, fmt.Errorf("seed inventory: duplicate bloodType %q at index %d", row.BloodType, i+1)
		}
		seen[row.BloodType] = struct{}{}
		rows = append(rows, row)
	}

	return rows, nil
}

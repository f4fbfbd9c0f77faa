package dto

type InventoryResponse struct {
	BloodType string `json:"bloodType"`
	Units     int    `json:"units"`
}

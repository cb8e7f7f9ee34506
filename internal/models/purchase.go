package models

import "time"

// Purchase is a stock-increasing movement. TotalCost is computed from
// Quantity × UnitCost when the purchase is recorded and never recalculated.
type Purchase struct {
	ID        int       `json:"id"`
	ProductID int       `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitCost  float64   `json:"unit_cost"`
	TotalCost float64   `json:"total_cost"`
	Supplier  string    `json:"supplier,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

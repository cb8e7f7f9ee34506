package models

import "time"

// Sale is a stock-decreasing movement. Recording one is refused when the
// product's stock cannot cover the quantity.
type Sale struct {
	ID           int       `json:"id"`
	ProductID    int       `json:"product_id"`
	Quantity     int       `json:"quantity"`
	UnitPrice    float64   `json:"unit_price"`
	TotalPrice   float64   `json:"total_price"`
	CustomerName string    `json:"customer_name,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

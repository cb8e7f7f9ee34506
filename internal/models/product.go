package models

// Product represents a catalog entry in the inventory system.
// SKU is assigned once at creation time and is immutable afterwards.
type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	MinStock      int     `json:"min_stock"`
	QRCodePath    string  `json:"qr_code_path,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}

// LowStock reports whether the product is at or below its reorder threshold.
func (p Product) LowStock() bool {
	return p.StockQuantity <= p.MinStock
}

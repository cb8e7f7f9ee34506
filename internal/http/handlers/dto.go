package handlers

import "time"

type ProductRequest struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	MinStock      int     `json:"min_stock"`
}

// ProductUpdateRequest carries a partial update; absent fields keep their
// stored values. SKU is not here on purpose: it is immutable.
type ProductUpdateRequest struct {
	Name          *string  `json:"name,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	StockQuantity *int     `json:"stock_quantity,omitempty"`
	MinStock      *int     `json:"min_stock,omitempty"`
}

type ProductResponse struct {
	Id            int     `json:"id"`
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	MinStock      int     `json:"min_stock"`
	QRCodePath    string  `json:"qr_code_path,omitempty"`
	LowStock      bool    `json:"low_stock"`
}

type PurchaseRequest struct {
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitCost  float64 `json:"unit_cost"`
	Supplier  string  `json:"supplier"`
	Notes     string  `json:"notes"`
}

type PurchaseResponse struct {
	Id        int       `json:"id"`
	ProductID int       `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitCost  float64   `json:"unit_cost"`
	TotalCost float64   `json:"total_cost"`
	Supplier  string    `json:"supplier,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type SaleRequest struct {
	ProductID    int     `json:"product_id"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	CustomerName string  `json:"customer_name"`
	Notes        string  `json:"notes"`
}

type SaleResponse struct {
	Id           int       `json:"id"`
	ProductID    int       `json:"product_id"`
	Quantity     int       `json:"quantity"`
	UnitPrice    float64   `json:"unit_price"`
	TotalPrice   float64   `json:"total_price"`
	CustomerName string    `json:"customer_name,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// InsufficientStockResponse reports a refused sale and the stock still available.
type InsufficientStockResponse struct {
	Error     string `json:"error"`
	Available int    `json:"available"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

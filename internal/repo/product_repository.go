package repo

import "github.com/ricardomoraes/minimart-inventory/internal/models"

// ProductUpdate carries a partial update; nil fields keep their stored values.
// The change set is applied inside the store so an omitted stock_quantity can
// never overwrite a concurrent movement's adjustment with a stale snapshot.
type ProductUpdate struct {
	Name          *string
	Category      *string
	Price         *float64
	StockQuantity *int
	MinStock      *int
}

// ProductRepository defines the interface for catalog data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	GetBySKU(sku string) (models.Product, error)
	// Search matches the text case-insensitively against name or category.
	Search(text string) ([]models.Product, error)
	// LowStock returns products with stock_quantity <= min_stock.
	LowStock() ([]models.Product, error)
	Update(id int, changes ProductUpdate) (models.Product, error)
	Delete(id int) error
}

package repo

import (
	"strings"
	"sync"
	"time"

	"github.com/ricardomoraes/minimart-inventory/internal/models"
)

// movementChecker is satisfied by the ledger repository; the product
// repository consults it so deletes cannot orphan movement history.
type movementChecker interface {
	HasMovements(productID int) bool
}

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	mu       sync.Mutex
	products []models.Product
	nextID   int
	ledger   movementChecker
}

// SetLedger binds the ledger consulted on Delete, mirroring the foreign-key
// restriction the Postgres repository enforces.
func (r *InMemoryProductRepository) SetLedger(l movementChecker) {
	r.ledger = l
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

func (r *InMemoryProductRepository) Create(p models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.products {
		if existing.SKU == p.SKU {
			return models.Product{}, ErrDuplicateSKU
		}
	}
	p.ID = r.nextID
	r.nextID++
	now := time.Now().UTC().Format(time.RFC3339)
	p.CreatedAt = now
	p.UpdatedAt = now
	r.products = append(r.products, p)
	return p, nil
}

func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) GetBySKU(sku string) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Search(text string) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	needle := strings.ToLower(text)
	var out []models.Product
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InMemoryProductRepository) LowStock() ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Product
	for _, p := range r.products {
		if p.LowStock() {
			out = append(out, p)
		}
	}
	return out, nil
}

// Update applies the change set under the lock so an omitted StockQuantity
// keeps whatever concurrent movements left behind.
func (r *InMemoryProductRepository) Update(id int, changes ProductUpdate) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID != id {
			continue
		}
		if changes.Name != nil {
			p.Name = *changes.Name
		}
		if changes.Category != nil {
			p.Category = *changes.Category
		}
		if changes.Price != nil {
			p.Price = *changes.Price
		}
		if changes.StockQuantity != nil {
			p.StockQuantity = *changes.StockQuantity
		}
		if changes.MinStock != nil {
			p.MinStock = *changes.MinStock
		}
		p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		r.products[i] = p
		return p, nil
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == id {
			if r.ledger != nil && r.ledger.HasMovements(id) {
				return ErrProductHasMovements
			}
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// adjustStock applies a signed delta to a product's stock under the lock.
// A negative result is refused with InsufficientStockError.
func (r *InMemoryProductRepository) adjustStock(id, delta int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == id {
			if p.StockQuantity+delta < 0 {
				return models.Product{}, InsufficientStockError{Available: p.StockQuantity}
			}
			p.StockQuantity += delta
			p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
			r.products[i] = p
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Clear removes every product; used by tests between cases.
func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = []models.Product{}
	r.nextID = 1
}

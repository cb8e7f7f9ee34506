package repo

import (
	"sync"
	"time"

	"github.com/ricardomoraes/minimart-inventory/internal/models"
)

// InMemoryLedgerRepository keeps movements in memory and adjusts stock through
// the product repository it is bound to. The product repository's lock makes
// the check-and-decrement atomic, matching the Postgres implementation.
type InMemoryLedgerRepository struct {
	mu        sync.Mutex
	products  *InMemoryProductRepository
	purchases []models.Purchase
	sales     []models.Sale
}

func NewInMemoryLedgerRepository(products *InMemoryProductRepository) *InMemoryLedgerRepository {
	return &InMemoryLedgerRepository{products: products}
}

func (r *InMemoryLedgerRepository) RecordPurchase(productID, quantity int, unitCost float64, supplier, notes string) (models.Purchase, error) {
	if _, err := r.products.adjustStock(productID, quantity); err != nil {
		return models.Purchase{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	p := models.Purchase{
		ID:        len(r.purchases) + 1,
		ProductID: productID,
		Quantity:  quantity,
		UnitCost:  unitCost,
		TotalCost: float64(quantity) * unitCost,
		Supplier:  supplier,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}
	r.purchases = append(r.purchases, p)
	return p, nil
}

func (r *InMemoryLedgerRepository) RecordSale(productID, quantity int, unitPrice float64, customerName, notes string) (models.Sale, error) {
	if _, err := r.products.adjustStock(productID, -quantity); err != nil {
		return models.Sale{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	s := models.Sale{
		ID:           len(r.sales) + 1,
		ProductID:    productID,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		TotalPrice:   float64(quantity) * unitPrice,
		CustomerName: customerName,
		Notes:        notes,
		CreatedAt:    time.Now().UTC(),
	}
	r.sales = append(r.sales, s)
	return s, nil
}

func (r *InMemoryLedgerRepository) Purchases(limit int) ([]models.Purchase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Purchase, 0, len(r.purchases))
	for i := len(r.purchases) - 1; i >= 0; i-- {
		out = append(out, r.purchases[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *InMemoryLedgerRepository) Sales(limit int) ([]models.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Sale, 0, len(r.sales))
	for i := len(r.sales) - 1; i >= 0; i-- {
		out = append(out, r.sales[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// HasMovements reports whether any purchase or sale references the product.
func (r *InMemoryLedgerRepository) HasMovements(productID int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.purchases {
		if p.ProductID == productID {
			return true
		}
	}
	for _, s := range r.sales {
		if s.ProductID == productID {
			return true
		}
	}
	return false
}

// Clear removes every movement; used by tests between cases.
func (r *InMemoryLedgerRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purchases = nil
	r.sales = nil
}

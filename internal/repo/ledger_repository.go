package repo

import "github.com/ricardomoraes/minimart-inventory/internal/models"

// LedgerRepository records stock movements. Every write couples the movement
// row with the matching stock adjustment on the product, as one atomic unit.
type LedgerRepository interface {
	// RecordPurchase inserts a purchase and increments the product's stock.
	RecordPurchase(productID, quantity int, unitCost float64, supplier, notes string) (models.Purchase, error)
	// RecordSale inserts a sale and decrements the product's stock. It fails
	// with InsufficientStockError when stock cannot cover the quantity, and
	// in that case performs no mutation at all.
	RecordSale(productID, quantity int, unitPrice float64, customerName, notes string) (models.Sale, error)
	// Purchases returns recorded purchases, newest first. limit <= 0 means all.
	Purchases(limit int) ([]models.Purchase, error)
	// Sales returns recorded sales, newest first. limit <= 0 means all.
	Sales(limit int) ([]models.Sale, error)
}

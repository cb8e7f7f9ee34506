package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ricardomoraes/minimart-inventory/internal/models"
)

type PostgresLedgerRepository struct {
	db *sql.DB
}

func NewPostgresLedgerRepository(db *sql.DB) *PostgresLedgerRepository {
	return &PostgresLedgerRepository{db: db}
}

// RecordPurchase inserts the purchase row and increments the product's stock
// in a single transaction, so the ledger and the stock level cannot drift.
func (r *PostgresLedgerRepository) RecordPurchase(productID, quantity int, unitCost float64, supplier, notes string) (models.Purchase, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Purchase{}, storeErr(err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx,
		`UPDATE products SET stock_quantity = stock_quantity + $1, updated_at = $2 WHERE id = $3`,
		quantity, now, productID)
	if err != nil {
		return models.Purchase{}, storeErr(err)
	}
	if rowsAffected, _ := res.RowsAffected(); rowsAffected == 0 {
		return models.Purchase{}, ErrProductNotFound
	}

	p := models.Purchase{
		ProductID: productID,
		Quantity:  quantity,
		UnitCost:  unitCost,
		TotalCost: float64(quantity) * unitCost,
		Supplier:  supplier,
		Notes:     notes,
		CreatedAt: now,
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO purchases (product_id, quantity, unit_cost, total_cost, supplier, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		p.ProductID, p.Quantity, p.UnitCost, p.TotalCost, p.Supplier, p.Notes, p.CreatedAt).Scan(&p.ID)
	if err != nil {
		return models.Purchase{}, storeErr(err)
	}

	if err := tx.Commit(); err != nil {
		return models.Purchase{}, fmt.Errorf("commit purchase: %w", storeErr(err))
	}
	return p, nil
}

// RecordSale decrements stock with a conditional UPDATE so the availability
// check and the decrement apply atomically; two concurrent sales can never
// jointly overdraw a product.
func (r *PostgresLedgerRepository) RecordSale(productID, quantity int, unitPrice float64, customerName, notes string) (models.Sale, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Sale{}, storeErr(err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	var remaining int
	err = tx.QueryRowContext(ctx,
		`UPDATE products SET stock_quantity = stock_quantity - $1, updated_at = $2
		 WHERE id = $3 AND stock_quantity >= $1 RETURNING stock_quantity`,
		quantity, now, productID).Scan(&remaining)
	if errors.Is(err, sql.ErrNoRows) {
		var available int
		err := tx.QueryRowContext(ctx, `SELECT stock_quantity FROM products WHERE id = $1`, productID).Scan(&available)
		if errors.Is(err, sql.ErrNoRows) {
			return models.Sale{}, ErrProductNotFound
		}
		if err != nil {
			return models.Sale{}, storeErr(err)
		}
		return models.Sale{}, InsufficientStockError{Available: available}
	}
	if err != nil {
		return models.Sale{}, storeErr(err)
	}

	s := models.Sale{
		ProductID:    productID,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		TotalPrice:   float64(quantity) * unitPrice,
		CustomerName: customerName,
		Notes:        notes,
		CreatedAt:    now,
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO sales (product_id, quantity, unit_price, total_price, customer_name, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		s.ProductID, s.Quantity, s.UnitPrice, s.TotalPrice, s.CustomerName, s.Notes, s.CreatedAt).Scan(&s.ID)
	if err != nil {
		return models.Sale{}, storeErr(err)
	}

	if err := tx.Commit(); err != nil {
		return models.Sale{}, fmt.Errorf("commit sale: %w", storeErr(err))
	}
	return s, nil
}

func (r *PostgresLedgerRepository) Purchases(limit int) ([]models.Purchase, error) {
	query := `SELECT id, product_id, quantity, unit_cost, total_cost, supplier, notes, created_at
		FROM purchases ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	var purchases []models.Purchase
	for rows.Next() {
		var p models.Purchase
		if err := rows.Scan(&p.ID, &p.ProductID, &p.Quantity, &p.UnitCost, &p.TotalCost, &p.Supplier, &p.Notes, &p.CreatedAt); err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}

func (r *PostgresLedgerRepository) Sales(limit int) ([]models.Sale, error) {
	query := `SELECT id, product_id, quantity, unit_price, total_price, customer_name, notes, created_at
		FROM sales ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	var sales []models.Sale
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.UnitPrice, &s.TotalPrice, &s.CustomerName, &s.Notes, &s.CreatedAt); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

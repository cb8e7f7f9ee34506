package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ricardomoraes/minimart-inventory/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

const productColumns = `id, name, sku, category, price, stock_quantity, min_stock, qr_code_path, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (models.Product, error) {
	var p models.Product
	var qrPath sql.NullString
	err := row.Scan(&p.ID, &p.Name, &p.SKU, &p.Category, &p.Price, &p.StockQuantity,
		&p.MinStock, &qrPath, &p.CreatedAt, &p.UpdatedAt)
	p.QRCodePath = qrPath.String
	return p, err
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	query := `INSERT INTO products (name, sku, category, price, stock_quantity, min_stock, qr_code_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	now := time.Now().UTC()
	err := r.db.QueryRowContext(ctx, query, p.Name, p.SKU, p.Category, p.Price,
		p.StockQuantity, p.MinStock, p.QRCodePath, now, now).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Product{}, ErrDuplicateSKU
		}
		return models.Product{}, storeErr(err)
	}
	p.CreatedAt = now.Format(time.RFC3339)
	p.UpdatedAt = p.CreatedAt
	return p, nil
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	return r.queryProducts(query)
}

func (r *PostgresProductRepository) GetByID(id int) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, storeErr(err)
}

func (r *PostgresProductRepository) GetBySKU(sku string) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, sku))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, storeErr(err)
}

func (r *PostgresProductRepository) Search(text string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		WHERE name ILIKE $1 OR category ILIKE $1 ORDER BY id`
	return r.queryProducts(query, "%"+text+"%")
}

func (r *PostgresProductRepository) LowStock() ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE stock_quantity <= min_stock ORDER BY id`
	return r.queryProducts(query)
}

func (r *PostgresProductRepository) Update(id int, changes ProductUpdate) (models.Product, error) {
	// SKU is immutable once issued, so it is never part of the SET list.
	// Omitted fields fall back to the stored value via COALESCE, in one
	// statement: a stale caller snapshot can never clobber a concurrent
	// stock movement.
	query := `UPDATE products SET
			name = COALESCE($1, name),
			category = COALESCE($2, category),
			price = COALESCE($3, price),
			stock_quantity = COALESCE($4, stock_quantity),
			min_stock = COALESCE($5, min_stock),
			updated_at = $6
		WHERE id = $7 RETURNING ` + productColumns
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	now := time.Now().UTC()
	p, err := scanProduct(r.db.QueryRowContext(ctx, query,
		changes.Name, changes.Category, changes.Price, changes.StockQuantity, changes.MinStock, now, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, storeErr(err)
	}
	return p, nil
}

func (r *PostgresProductRepository) Delete(id int) error {
	// Refuses to orphan movement history: the row only goes away when no
	// purchase or sale references it.
	query := `DELETE FROM products WHERE id = $1
		AND NOT EXISTS (SELECT 1 FROM purchases WHERE product_id = $1)
		AND NOT EXISTS (SELECT 1 FROM sales WHERE product_id = $1)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return storeErr(err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists); err != nil {
			return storeErr(err)
		}
		if exists {
			return ErrProductHasMovements
		}
		return ErrProductNotFound
	}
	return nil
}

func (r *PostgresProductRepository) queryProducts(query string, args ...any) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

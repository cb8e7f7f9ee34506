package repo

import (
	"context"
	"database/sql"
	"time"
)

type PostgresReportRepository struct {
	db      *sql.DB
	ledger  *PostgresLedgerRepository
	catalog *PostgresProductRepository
}

func NewPostgresReportRepository(db *sql.DB) *PostgresReportRepository {
	return &PostgresReportRepository{
		db:      db,
		ledger:  NewPostgresLedgerRepository(db),
		catalog: NewPostgresProductRepository(db),
	}
}

func (r *PostgresReportRepository) Dashboard(now time.Time) (DashboardSummary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	now = now.UTC()
	var out DashboardSummary

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&out.TotalProducts); err != nil {
		return DashboardSummary{}, storeErr(err)
	}

	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(total_price), 0) FROM sales WHERE (created_at AT TIME ZONE 'UTC')::date = $1::date`,
		now.Format("2006-01-02")).Scan(&out.SalesToday)
	if err != nil {
		return DashboardSummary{}, storeErr(err)
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(total_price), 0) FROM sales
		 WHERE EXTRACT(MONTH FROM created_at AT TIME ZONE 'UTC') = $1 AND EXTRACT(YEAR FROM created_at AT TIME ZONE 'UTC') = $2`,
		int(now.Month()), now.Year()).Scan(&out.SalesThisMonth)
	if err != nil {
		return DashboardSummary{}, storeErr(err)
	}

	lowStock, err := r.catalog.LowStock()
	if err != nil {
		return DashboardSummary{}, err
	}
	out.LowStockProducts = lowStock

	recent, err := r.ledger.Sales(5)
	if err != nil {
		return DashboardSummary{}, err
	}
	out.RecentSales = recent

	return out, nil
}

func (r *PostgresReportRepository) Report(now time.Time) (ReportSummary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	now = now.UTC()
	var out ReportSummary

	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(total_price), 0), COUNT(*) FROM sales WHERE (created_at AT TIME ZONE 'UTC')::date = $1::date`,
		now.Format("2006-01-02")).Scan(&out.Daily.Sum, &out.Daily.Count)
	if err != nil {
		return ReportSummary{}, storeErr(err)
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(total_price), 0), COUNT(*) FROM sales
		 WHERE EXTRACT(MONTH FROM created_at AT TIME ZONE 'UTC') = $1 AND EXTRACT(YEAR FROM created_at AT TIME ZONE 'UTC') = $2`,
		int(now.Month()), now.Year()).Scan(&out.Monthly.Sum, &out.Monthly.Count)
	if err != nil {
		return ReportSummary{}, storeErr(err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT p.name, SUM(s.quantity) AS total_sold, SUM(s.total_price) AS total_revenue
		 FROM sales s JOIN products p ON p.id = s.product_id
		 WHERE EXTRACT(MONTH FROM s.created_at AT TIME ZONE 'UTC') = $1 AND EXTRACT(YEAR FROM s.created_at AT TIME ZONE 'UTC') = $2
		 GROUP BY p.id, p.name
		 ORDER BY total_sold DESC, p.id ASC
		 LIMIT 10`,
		int(now.Month()), now.Year())
	if err != nil {
		return ReportSummary{}, storeErr(err)
	}
	defer rows.Close()
	for rows.Next() {
		var tp TopProduct
		if err := rows.Scan(&tp.Name, &tp.QuantitySold, &tp.Revenue); err != nil {
			return ReportSummary{}, err
		}
		out.TopProducts = append(out.TopProducts, tp)
	}
	if err := rows.Err(); err != nil {
		return ReportSummary{}, err
	}

	if out.RecentPurchases, err = r.ledger.Purchases(10); err != nil {
		return ReportSummary{}, err
	}
	if out.RecentSales, err = r.ledger.Sales(10); err != nil {
		return ReportSummary{}, err
	}

	return out, nil
}

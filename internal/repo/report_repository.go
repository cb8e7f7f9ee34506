package repo

import (
	"time"

	"github.com/ricardomoraes/minimart-inventory/internal/models"
)

// SalesTotals aggregates sale rows over a period.
type SalesTotals struct {
	Sum   float64 `json:"sum"`
	Count int     `json:"count"`
}

// TopProduct is one row of the monthly best-sellers ranking.
type TopProduct struct {
	Name         string  `json:"name"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// DashboardSummary backs the landing dashboard.
type DashboardSummary struct {
	TotalProducts    int              `json:"total_products"`
	SalesToday       float64          `json:"total_sales_today"`
	SalesThisMonth   float64          `json:"total_sales_this_month"`
	LowStockProducts []models.Product `json:"low_stock_products"`
	RecentSales      []models.Sale    `json:"recent_sales"`
}

// ReportSummary backs the reports page.
type ReportSummary struct {
	Daily           SalesTotals       `json:"daily"`
	Monthly         SalesTotals       `json:"monthly"`
	TopProducts     []TopProduct      `json:"top_products"`
	RecentPurchases []models.Purchase `json:"recent_purchases"`
	RecentSales     []models.Sale     `json:"recent_sales"`
}

// ReportRepository runs read-only aggregations over the catalog and the
// movement log. "Today" and "this month" are evaluated against now in UTC.
type ReportRepository interface {
	Dashboard(now time.Time) (DashboardSummary, error)
	Report(now time.Time) (ReportSummary, error)
}

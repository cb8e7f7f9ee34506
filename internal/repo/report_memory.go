package repo

import (
	"sort"
	"time"
)

// InMemoryReportRepository computes the dashboard and report aggregations from
// the in-memory catalog and ledger it is bound to.
type InMemoryReportRepository struct {
	products *InMemoryProductRepository
	ledger   *InMemoryLedgerRepository
}

func NewInMemoryReportRepository(products *InMemoryProductRepository, ledger *InMemoryLedgerRepository) *InMemoryReportRepository {
	return &InMemoryReportRepository{products: products, ledger: ledger}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

func sameMonth(a, b time.Time) bool {
	au, bu := a.UTC(), b.UTC()
	return au.Year() == bu.Year() && au.Month() == bu.Month()
}

func (r *InMemoryReportRepository) Dashboard(now time.Time) (DashboardSummary, error) {
	var out DashboardSummary

	products, err := r.products.GetAll()
	if err != nil {
		return DashboardSummary{}, err
	}
	out.TotalProducts = len(products)

	lowStock, err := r.products.LowStock()
	if err != nil {
		return DashboardSummary{}, err
	}
	out.LowStockProducts = lowStock

	sales, err := r.ledger.Sales(0)
	if err != nil {
		return DashboardSummary{}, err
	}
	for _, s := range sales {
		if sameDay(s.CreatedAt, now) {
			out.SalesToday += s.TotalPrice
		}
		if sameMonth(s.CreatedAt, now) {
			out.SalesThisMonth += s.TotalPrice
		}
	}

	out.RecentSales, err = r.ledger.Sales(5)
	if err != nil {
		return DashboardSummary{}, err
	}
	return out, nil
}

func (r *InMemoryReportRepository) Report(now time.Time) (ReportSummary, error) {
	var out ReportSummary

	sales, err := r.ledger.Sales(0)
	if err != nil {
		return ReportSummary{}, err
	}

	type bucket struct {
		productID int
		TopProduct
	}
	byProduct := map[int]*bucket{}
	for _, s := range sales {
		if sameDay(s.CreatedAt, now) {
			out.Daily.Sum += s.TotalPrice
			out.Daily.Count++
		}
		if !sameMonth(s.CreatedAt, now) {
			continue
		}
		out.Monthly.Sum += s.TotalPrice
		out.Monthly.Count++

		b, ok := byProduct[s.ProductID]
		if !ok {
			b = &bucket{productID: s.ProductID}
			if p, err := r.products.GetByID(s.ProductID); err == nil {
				b.Name = p.Name
			}
			byProduct[s.ProductID] = b
		}
		b.QuantitySold += s.Quantity
		b.Revenue += s.TotalPrice
	}

	buckets := make([]*bucket, 0, len(byProduct))
	for _, b := range byProduct {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].QuantitySold != buckets[j].QuantitySold {
			return buckets[i].QuantitySold > buckets[j].QuantitySold
		}
		return buckets[i].productID < buckets[j].productID
	})
	for i, b := range buckets {
		if i == 10 {
			break
		}
		out.TopProducts = append(out.TopProducts, b.TopProduct)
	}

	if out.RecentPurchases, err = r.ledger.Purchases(10); err != nil {
		return ReportSummary{}, err
	}
	if out.RecentSales, err = r.ledger.Sales(10); err != nil {
		return ReportSummary{}, err
	}
	return out, nil
}

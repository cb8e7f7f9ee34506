package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/ricardomoraes/minimart-inventory/internal/http"
	handler "github.com/ricardomoraes/minimart-inventory/internal/http/handlers"
	"github.com/ricardomoraes/minimart-inventory/internal/repo"
)

func TestDashboardHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Rice 5kg", Category: "Groceries", Price: 3.0, StockQuantity: 5, MinStock: 2})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	if sw := recordSale(r, handler.SaleRequest{ProductID: created.Id, Quantity: 5, UnitPrice: 3.0}); sw.Code != http.StatusCreated {
		t.Fatalf("expected 201 for sale, got %d", sw.Code)
	}

	dashW := authorizedGet(r, "/dashboard")
	if dashW.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", dashW.Code)
	}

	var summary repo.DashboardSummary
	if err := json.NewDecoder(dashW.Body).Decode(&summary); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if summary.TotalProducts != 1 {
		t.Errorf("expected 1 product, got %d", summary.TotalProducts)
	}
	if summary.SalesToday != 15.0 {
		t.Errorf("expected 15.0 sold today, got %v", summary.SalesToday)
	}
	if summary.SalesThisMonth != 15.0 {
		t.Errorf("expected 15.0 sold this month, got %v", summary.SalesThisMonth)
	}
	if len(summary.LowStockProducts) != 1 {
		t.Errorf("expected 1 low-stock product after selling out, got %d", len(summary.LowStockProducts))
	}
	if len(summary.RecentSales) != 1 {
		t.Errorf("expected 1 recent sale, got %d", len(summary.RecentSales))
	}
}

func TestReportHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Milk", Category: "Dairy", Price: 1.5, StockQuantity: 0, MinStock: 1})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	if pw := recordPurchase(r, handler.PurchaseRequest{ProductID: created.Id, Quantity: 10, UnitCost: 1.0}); pw.Code != http.StatusCreated {
		t.Fatalf("expected 201 for purchase, got %d", pw.Code)
	}
	if sw := recordSale(r, handler.SaleRequest{ProductID: created.Id, Quantity: 4, UnitPrice: 1.5}); sw.Code != http.StatusCreated {
		t.Fatalf("expected 201 for sale, got %d", sw.Code)
	}

	repW := authorizedGet(r, "/reports")
	if repW.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", repW.Code)
	}

	var summary repo.ReportSummary
	if err := json.NewDecoder(repW.Body).Decode(&summary); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if summary.Daily.Sum != 6.0 || summary.Daily.Count != 1 {
		t.Errorf("expected daily {6.0, 1}, got {%v, %d}", summary.Daily.Sum, summary.Daily.Count)
	}
	if summary.Monthly.Sum != 6.0 || summary.Monthly.Count != 1 {
		t.Errorf("expected monthly {6.0, 1}, got {%v, %d}", summary.Monthly.Sum, summary.Monthly.Count)
	}
	if len(summary.TopProducts) != 1 {
		t.Fatalf("expected 1 top product, got %d", len(summary.TopProducts))
	}
	if summary.TopProducts[0].Name != "Milk" || summary.TopProducts[0].QuantitySold != 4 {
		t.Errorf("expected 'Milk' with 4 sold, got %v with %d", summary.TopProducts[0].Name, summary.TopProducts[0].QuantitySold)
	}
	if len(summary.RecentPurchases) != 1 {
		t.Errorf("expected 1 recent purchase, got %d", len(summary.RecentPurchases))
	}
	if len(summary.RecentSales) != 1 {
		t.Errorf("expected 1 recent sale, got %d", len(summary.RecentSales))
	}
}

func TestHealthHandler(t *testing.T) {
	r := api.NewRouter()

	w := authorizedGet(r, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %v", resp["status"])
	}
}

package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	api "github.com/ricardomoraes/minimart-inventory/internal/http"
	handler "github.com/ricardomoraes/minimart-inventory/internal/http/handlers"
)

func TestCreatePurchaseHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Rice 5kg", Category: "Groceries", Price: 12.5, StockQuantity: 2, MinStock: 1})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	purchaseW := recordPurchase(r, handler.PurchaseRequest{
		ProductID: created.Id,
		Quantity:  10,
		UnitCost:  8.0,
		Supplier:  "ACME Foods",
	})
	if purchaseW.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", purchaseW.Code)
	}

	var purchase handler.PurchaseResponse
	if err := json.NewDecoder(purchaseW.Body).Decode(&purchase); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if purchase.TotalCost != 80.0 {
		t.Errorf("expected total cost 80.0, got %v", purchase.TotalCost)
	}
	if purchase.Supplier != "ACME Foods" {
		t.Errorf("expected supplier 'ACME Foods', got %v", purchase.Supplier)
	}

	getW := authorizedGet(r, fmt.Sprintf("/products/%d", created.Id))
	var product handler.ProductResponse
	json.NewDecoder(getW.Body).Decode(&product)
	if product.StockQuantity != 12 {
		t.Errorf("expected stock 12 after purchase, got %d", product.StockQuantity)
	}
}

func TestCreatePurchaseHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	tests := []struct {
		name           string
		payload        handler.PurchaseRequest
		expectedErrors []string
	}{
		{
			name:           "Missing product and quantity",
			payload:        handler.PurchaseRequest{UnitCost: 1.0},
			expectedErrors: []string{"ProductID", "Quantity"},
		},
		{
			name:           "Zero quantity",
			payload:        handler.PurchaseRequest{ProductID: 1, Quantity: 0, UnitCost: 1.0},
			expectedErrors: []string{"Quantity"},
		},
		{
			name:           "Negative unit cost",
			payload:        handler.PurchaseRequest{ProductID: 1, Quantity: 5, UnitCost: -2.0},
			expectedErrors: []string{"UnitCost"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := recordPurchase(r, tt.payload)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}

			var resp []handler.ValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp {
					if strings.EqualFold(err.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestCreatePurchaseHandler_UnknownProduct(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := recordPurchase(r, handler.PurchaseRequest{ProductID: 999999, Quantity: 1, UnitCost: 1.0})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestGetPurchasesHandler_NewestFirst(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Tea", Category: "Beverages", Price: 3.0, StockQuantity: 0, MinStock: 1})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	suppliers := []string{"First Supplier", "Second Supplier"}
	for _, s := range suppliers {
		pw := recordPurchase(r, handler.PurchaseRequest{ProductID: created.Id, Quantity: 5, UnitCost: 2.0, Supplier: s})
		if pw.Code != http.StatusCreated {
			t.Fatalf("expected 201 for purchase from %v, got %d", s, pw.Code)
		}
	}

	listW := authorizedGet(r, "/purchases")
	if listW.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", listW.Code)
	}

	var purchases []handler.PurchaseResponse
	if err := json.NewDecoder(listW.Body).Decode(&purchases); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(purchases) != 2 {
		t.Fatalf("expected 2 purchases, got %d", len(purchases))
	}
	if purchases[0].Supplier != "Second Supplier" {
		t.Errorf("expected newest purchase first, got supplier %v", purchases[0].Supplier)
	}
}

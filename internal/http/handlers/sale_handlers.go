package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	models "github.com/ricardomoraes/minimart-inventory/internal/models"
	repo "github.com/ricardomoraes/minimart-inventory/internal/repo"
)

func toSaleResponse(s models.Sale) SaleResponse {
	return SaleResponse{
		Id:           s.ID,
		ProductID:    s.ProductID,
		Quantity:     s.Quantity,
		UnitPrice:    s.UnitPrice,
		TotalPrice:   s.TotalPrice,
		CustomerName: s.CustomerName,
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt,
	}
}

// CreateSaleHandler godoc
// @Summary Record a sale
// @Description Inserts the sale and decrements the product's stock as one unit; refused when stock is short
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sale body SaleRequest true "Sale to record"
// @Success 201 {object} SaleResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Product not found"
// @Failure 409 {object} InsufficientStockResponse
// @Router /sales [post]
func CreateSaleHandler(w http.ResponseWriter, r *http.Request) {
	var req SaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateSale(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	sale, err := ledgerRepo.RecordSale(req.ProductID, req.Quantity, req.UnitPrice, req.CustomerName, req.Notes)
	if err != nil {
		var insufficientStock repo.InsufficientStockError
		if errors.As(err, &insufficientStock) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(InsufficientStockResponse{
				Error:     "not enough stock",
				Available: insufficientStock.Available,
			})
			return
		}
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, repo.ErrStoreUnavailable) {
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
			return
		}
		http.Error(w, "could not record sale", http.StatusInternalServerError)
		return
	}

	if product, err := productRepo.GetByID(req.ProductID); err == nil && product.LowStock() {
		log.Printf("ALERT: Product %d (%s) is at or below threshold! Qty=%d, MinStock=%d",
			product.ID, product.Name, product.StockQuantity, product.MinStock)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toSaleResponse(sale))
}

// GetSalesHandler godoc
// @Summary List recorded sales, newest first
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Success 200 {array} SaleResponse
// @Failure 500 {string} string "Internal error"
// @Router /sales [get]
func GetSalesHandler(w http.ResponseWriter, r *http.Request) {
	sales, err := ledgerRepo.Sales(0)
	if err != nil {
		http.Error(w, "could not fetch sales", http.StatusInternalServerError)
		return
	}
	response := make([]SaleResponse, len(sales))
	for i, s := range sales {
		response[i] = toSaleResponse(s)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// ExportSalesHandler godoc
// @Summary Export the sale ledger
// @Tags sales
// @Produce text/csv, application/json
// @Security BearerAuth
// @Param format query string true "Export format (csv or json)"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /sales/export [get]
func ExportSalesHandler(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "csv" && format != "json" {
		http.Error(w, "format must be 'csv' or 'json'", http.StatusBadRequest)
		return
	}

	sales, err := ledgerRepo.Sales(0)
	if err != nil {
		http.Error(w, "could not fetch sales", http.StatusInternalServerError)
		return
	}

	switch format {
	case "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="sales.json"`)
		json.NewEncoder(w).Encode(sales)

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="sales.csv"`)

		csvWriter := csv.NewWriter(w)
		_ = csvWriter.Write([]string{"id", "product_id", "quantity", "unit_price", "total_price", "customer_name", "created_at"})
		for _, s := range sales {
			_ = csvWriter.Write([]string{
				strconv.Itoa(s.ID),
				strconv.Itoa(s.ProductID),
				strconv.Itoa(s.Quantity),
				fmt.Sprintf("%.2f", s.UnitPrice),
				fmt.Sprintf("%.2f", s.TotalPrice),
				s.CustomerName,
				s.CreatedAt.Format(time.RFC3339),
			})
		}
		csvWriter.Flush()
	}
}

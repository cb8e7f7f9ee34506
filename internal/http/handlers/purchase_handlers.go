package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	models "github.com/ricardomoraes/minimart-inventory/internal/models"
	repo "github.com/ricardomoraes/minimart-inventory/internal/repo"
)

func toPurchaseResponse(p models.Purchase) PurchaseResponse {
	return PurchaseResponse{
		Id:        p.ID,
		ProductID: p.ProductID,
		Quantity:  p.Quantity,
		UnitCost:  p.UnitCost,
		TotalCost: p.TotalCost,
		Supplier:  p.Supplier,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
	}
}

// CreatePurchaseHandler godoc
// @Summary Record a purchase
// @Description Inserts the purchase and increments the product's stock as one unit
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param purchase body PurchaseRequest true "Purchase to record"
// @Success 201 {object} PurchaseResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Product not found"
// @Router /purchases [post]
func CreatePurchaseHandler(w http.ResponseWriter, r *http.Request) {
	var req PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validatePurchase(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	purchase, err := ledgerRepo.RecordPurchase(req.ProductID, req.Quantity, req.UnitCost, req.Supplier, req.Notes)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, repo.ErrStoreUnavailable) {
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
			return
		}
		http.Error(w, "could not record purchase", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toPurchaseResponse(purchase))
}

// GetPurchasesHandler godoc
// @Summary List recorded purchases, newest first
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Success 200 {array} PurchaseResponse
// @Failure 500 {string} string "Internal error"
// @Router /purchases [get]
func GetPurchasesHandler(w http.ResponseWriter, r *http.Request) {
	purchases, err := ledgerRepo.Purchases(0)
	if err != nil {
		http.Error(w, "could not fetch purchases", http.StatusInternalServerError)
		return
	}
	response := make([]PurchaseResponse, len(purchases))
	for i, p := range purchases {
		response[i] = toPurchaseResponse(p)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

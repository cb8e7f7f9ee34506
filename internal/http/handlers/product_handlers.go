package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	models "github.com/ricardomoraes/minimart-inventory/internal/models"
	repo "github.com/ricardomoraes/minimart-inventory/internal/repo"
)

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:            p.ID,
		Name:          p.Name,
		SKU:           p.SKU,
		Category:      p.Category,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		MinStock:      p.MinStock,
		QRCodePath:    p.QRCodePath,
		LowStock:      p.LowStock(),
	}
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the catalog; a SKU and QR code are issued on the spot
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {array} ValidationError
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	skuCode, qrPath, err := skuIssuer.Issue(req.Name)
	if err != nil {
		http.Error(w, "could not issue SKU", http.StatusInternalServerError)
		return
	}

	product := models.Product{
		Name:          req.Name,
		SKU:           skuCode,
		Category:      req.Category,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		MinStock:      req.MinStock,
		QRCodePath:    qrPath,
	}
	created, err := productRepo.Create(product)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateSKU) {
			http.Error(w, "could not create product: sku duplicated", http.StatusConflict)
			return
		}
		if errors.Is(err, repo.ErrStoreUnavailable) {
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
			return
		}
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toProductResponse(created))
}

// GetProductsHandler godoc
// @Summary List products, optionally filtered by a search term
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param search query string false "Substring matched against name or category"
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	var products []models.Product
	var err error

	if search := r.URL.Query().Get("search"); search != "" {
		products, err = productRepo.Search(search)
	} else {
		products, err = productRepo.GetAll()
	}
	if err != nil {
		if errors.Is(err, repo.ErrStoreUnavailable) {
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
			return
		}
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toProductResponse(product))
}

// GetProductBySKUHandler godoc
// @Summary Look a product up by SKU
// @Description Public endpoint used by the QR scanner flow
// @Tags products
// @Produce json
// @Param sku path string true "Product SKU"
// @Success 200 {object} ProductResponse
// @Failure 404 {string} string "Not found"
// @Router /products/sku/{sku} [get]
func GetProductBySKUHandler(w http.ResponseWriter, r *http.Request) {
	skuCode := chi.URLParam(r, "sku")

	product, err := productRepo.GetBySKU(skuCode)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toProductResponse(product))
}

// LowStockHandler godoc
// @Summary List products at or below their reorder threshold
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products/low-stock [get]
func LowStockHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.LowStock()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Partial update; omitted fields keep their stored values
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param product body ProductUpdateRequest true "Fields to change"
// @Success 200 {object} ProductResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req ProductUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProductUpdate(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	// The change set goes to the store as-is; merging against a snapshot here
	// would let this update race a concurrent sale's stock decrement.
	// A provided stock_quantity is a direct edit that bypasses the movement log.
	updated, err := productRepo.Update(id, repo.ProductUpdate{
		Name:          req.Name,
		Category:      req.Category,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		MinStock:      req.MinStock,
	})
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toProductResponse(updated))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Description Refused while purchases or sales still reference the product
// @Tags products
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Product has movements"
// @Router /products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if err := productRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, repo.ErrProductHasMovements) {
			http.Error(w, "product has recorded movements", http.StatusConflict)
			return
		}
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

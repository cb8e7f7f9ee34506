package handlers

import (
	"strings"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if strings.TrimSpace(p.Category) == "" {
		errs = append(errs, ValidationError{Field: "Category", Description: "Category is required"})
	}
	if p.Price < 0 {
		errs = append(errs, ValidationError{Field: "Price", Description: "Price cannot be negative"})
	}
	if p.StockQuantity < 0 {
		errs = append(errs, ValidationError{Field: "StockQuantity", Description: "Stock quantity cannot be negative"})
	}
	if p.MinStock < 0 {
		errs = append(errs, ValidationError{Field: "MinStock", Description: "Minimum stock cannot be negative"})
	}
	return errs
}

func validateProductUpdate(p ProductUpdateRequest) []ValidationError {
	errs := []ValidationError{}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if p.Category != nil && strings.TrimSpace(*p.Category) == "" {
		errs = append(errs, ValidationError{Field: "Category", Description: "Category is required"})
	}
	if p.Price != nil && *p.Price < 0 {
		errs = append(errs, ValidationError{Field: "Price", Description: "Price cannot be negative"})
	}
	if p.StockQuantity != nil && *p.StockQuantity < 0 {
		errs = append(errs, ValidationError{Field: "StockQuantity", Description: "Stock quantity cannot be negative"})
	}
	if p.MinStock != nil && *p.MinStock < 0 {
		errs = append(errs, ValidationError{Field: "MinStock", Description: "Minimum stock cannot be negative"})
	}
	return errs
}

func validatePurchase(p PurchaseRequest) []ValidationError {
	errs := []ValidationError{}
	if p.ProductID <= 0 {
		errs = append(errs, ValidationError{Field: "ProductID", Description: "Product is required"})
	}
	if p.Quantity <= 0 {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity must be greater than zero"})
	}
	if p.UnitCost < 0 {
		errs = append(errs, ValidationError{Field: "UnitCost", Description: "Unit cost cannot be negative"})
	}
	return errs
}

func validateSale(s SaleRequest) []ValidationError {
	errs := []ValidationError{}
	if s.ProductID <= 0 {
		errs = append(errs, ValidationError{Field: "ProductID", Description: "Product is required"})
	}
	if s.Quantity <= 0 {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity must be greater than zero"})
	}
	if s.UnitPrice < 0 {
		errs = append(errs, ValidationError{Field: "UnitPrice", Description: "Unit price cannot be negative"})
	}
	return errs
}

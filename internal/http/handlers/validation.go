package handlers

import "strings"

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateReceipt(req StockReceiptRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if req.Quantity <= 0 {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity must be greater than zero"})
	}
	if req.UnitCost < 0 {
		errs = append(errs, ValidationError{Field: "UnitCost", Description: "Unit cost cannot be negative"})
	}
	if req.LowStock < 0 {
		errs = append(errs, ValidationError{Field: "LowStock", Description: "Low stock level cannot be negative"})
	}
	return errs
}

func validateItem(req ItemRequest) []ValidationError {
	errs := []ValidationError{}
	if req.Stock < 0 {
		errs = append(errs, ValidationError{Field: "Stock", Description: "Stock cannot be negative"})
	}
	if req.LowStock < 0 {
		errs = append(errs, ValidationError{Field: "LowStock", Description: "Low stock level cannot be negative"})
	}
	if req.PurchasePrice < 0 {
		errs = append(errs, ValidationError{Field: "PurchasePrice", Description: "Purchase price cannot be negative"})
	}
	if req.SalePrice < 0 {
		errs = append(errs, ValidationError{Field: "SalePrice", Description: "Sale price cannot be negative"})
	}
	if strings.TrimSpace(req.Location) == "" {
		errs = append(errs, ValidationError{Field: "Location", Description: "Location is required"})
	}
	return errs
}

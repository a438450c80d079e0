package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rogerio-castellano/inventree/internal/models"
)

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(out); err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}
	return nil
}

func toItemResponse(it models.Item) ItemResponse {
	return ItemResponse{
		Id:            it.ID,
		Name:          it.Name,
		Stock:         it.Stock,
		LowStock:      it.LowStock,
		PurchasePrice: it.PurchasePrice,
		SalePrice:     it.SalePrice,
		Supplier:      it.Supplier,
		Location:      it.Location,
		LowStockFlag:  it.Stock <= it.LowStock,
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/inventree/internal/inventory"
	"github.com/rogerio-castellano/inventree/internal/repo"
)

// ReceiveStockHandler merges an incoming lot into the inventory, creating the
// item when it does not exist yet. The response carries the item's new state
// and the outcome of the low-stock alert, if one was triggered.
func ReceiveStockHandler(w http.ResponseWriter, r *http.Request) {
	var req StockReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateReceipt(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	transition, err := engine.ReceiveLot(inventory.Lot{
		Name:      req.Name,
		Quantity:  req.Quantity,
		UnitCost:  req.UnitCost,
		LowStock:  req.LowStock,
		SalePrice: req.SalePrice,
		Supplier:  req.Supplier,
		Location:  req.Location,
	})
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrInvalidQuantity):
			http.Error(w, "quantity must be greater than zero", http.StatusBadRequest)
		case errors.Is(err, inventory.ErrMissingLocation):
			http.Error(w, "location is required for a new item", http.StatusBadRequest)
		default:
			http.Error(w, "could not receive stock", http.StatusInternalServerError)
		}
		return
	}

	status := http.StatusOK
	if transition.OldStock == inventory.NeverStocked {
		status = http.StatusCreated
	}
	respondWithTransition(w, status, req.Name, transition)
}

// RecordSaleHandler removes sold units from stock and runs the threshold check.
func RecordSaleHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req SaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	transition, err := engine.RecordSale(name, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrInvalidQuantity):
			http.Error(w, "quantity must be greater than zero", http.StatusBadRequest)
		case errors.Is(err, repo.ErrItemNotFound):
			http.Error(w, "item not found", http.StatusNotFound)
		case errors.Is(err, inventory.ErrInsufficientStock):
			http.Error(w, "insufficient stock to complete sale", http.StatusConflict)
		default:
			http.Error(w, "could not record sale", http.StatusInternalServerError)
		}
		return
	}

	respondWithTransition(w, http.StatusOK, name, transition)
}

// respondWithTransition fetches the item's committed state, runs the alert if
// the transition crossed the threshold, and writes the combined result.
func respondWithTransition(w http.ResponseWriter, status int, name string, t inventory.Transition) {
	item, err := itemRepo.GetByName(name)
	if err != nil {
		http.Error(w, "could not fetch item", http.StatusInternalServerError)
		return
	}

	result := StockMutationResult{
		Item:         toItemResponse(item),
		Notification: runLowStockAlert(t),
	}
	if err := writeJSON(w, status, result); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// runLowStockAlert drives the notification gateway after a threshold
// crossing. The mutation has already committed; delivery failures surface
// only in the message.
func runLowStockAlert(t inventory.Transition) Notification {
	n := Notification{Triggered: t.Crossed()}
	if !n.Triggered {
		return n
	}
	if gateway == nil {
		n.Message = "no notification gateway configured"
		return n
	}

	critical, warning, err := itemRepo.LowStockReport()
	if err != nil {
		n.Message = fmt.Sprintf("could not build low stock report: %v", err)
		return n
	}
	n.Sent, n.Message = gateway.NotifyLowStock(critical, warning)
	if !n.Sent {
		log.Printf("low stock notification not sent: %s", n.Message)
	}
	return n
}

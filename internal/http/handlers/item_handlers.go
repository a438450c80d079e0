package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/inventree/internal/inventory"
	"github.com/rogerio-castellano/inventree/internal/repo"
)

// GetItemsHandler lists the inventory. Query parameters: sort (one of the
// item columns), dir (asc|desc), q (case-sensitive substring over name,
// location and supplier).
func GetItemsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	dir := q.Get("dir")
	if dir != "" && dir != "asc" && dir != "desc" {
		http.Error(w, "dir must be 'asc' or 'desc'", http.StatusBadRequest)
		return
	}

	items, err := itemRepo.List(repo.ItemFilter{
		SortKey:    q.Get("sort"),
		Descending: dir == "desc",
		Search:     q.Get("q"),
	})
	if err != nil {
		http.Error(w, "could not fetch items", http.StatusInternalServerError)
		return
	}

	response := make([]ItemResponse, len(items))
	for i, it := range items {
		response[i] = toItemResponse(it)
	}
	if err := writeJSON(w, http.StatusOK, response); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func GetItemByNameHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	item, err := itemRepo.GetByName(name)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch item", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, toItemResponse(item)); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// UpdateItemHandler replaces all mutable attributes of an item. The ledger
// records only the fields that changed.
func UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateItem(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	transition, err := engine.UpdateDetails(name, inventory.Details{
		Stock:         req.Stock,
		LowStock:      req.LowStock,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		Supplier:      req.Supplier,
		Location:      req.Location,
	})
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update item", http.StatusInternalServerError)
		return
	}

	respondWithTransition(w, http.StatusOK, name, transition)
}

func DeleteItemHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := engine.Remove(name); err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete item", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

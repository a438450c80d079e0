package handlers

import (
	"log"
	"net/http"

	"github.com/rogerio-castellano/inventree/internal/models"
)

// GetHistoryHandler returns the full audit ledger, newest entries first.
// Entries referencing deleted items are included; the ledger outlives them.
func GetHistoryHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := historyRepo.List()
	if err != nil {
		http.Error(w, "could not fetch history", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	if err := writeJSON(w, http.StatusOK, entries); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

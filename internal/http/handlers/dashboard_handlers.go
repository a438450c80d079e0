package handlers

import (
	"log"
	"net/http"
)

// GetDashboardHandler returns summary statistics derived from the current
// item store state. Nothing is cached; an empty store reports a value of 0.0.
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	snapshot, err := dashboardRepo.Snapshot()
	if err != nil {
		http.Error(w, "could not compute dashboard", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, snapshot); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type settingRequest struct {
	Value string `json:"value"`
}

// GetSettingHandler reads a key from the settings store. A missing key is an
// empty value, not an error.
func GetSettingHandler(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	value, err := settingsStore.Get("settings:" + key)
	if err != nil {
		http.Error(w, "could not read setting", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, SettingResponse{Key: key, Value: value}); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func SaveSettingHandler(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var req settingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if err := settingsStore.Set("settings:"+key, req.Value); err != nil {
		http.Error(w, "could not save setting", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, SettingResponse{Key: key, Value: req.Value}); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

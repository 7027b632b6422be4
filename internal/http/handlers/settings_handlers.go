package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	models "github.com/sahyadri-sports/backoffice/internal/models"
)

// defaultStoreInfo seeds the settings screen before anything is saved.
var defaultStoreInfo = json.RawMessage(`{
	"name": "Sahyadri Sports",
	"email": "contact@sahyadrisports.com",
	"address": "123 Sports Lane, Mumbai, Maharashtra 400001",
	"phone": "+91 22 1234 5678",
	"currency": "INR"
}`)

// GetSettingsHandler godoc
// @Summary Fetch all application settings as a key/value map
// @Tags settings
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 500 {string} string "Internal error"
// @Router /settings [get]
// @Security BearerAuth
func GetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	settings, err := settingsRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch settings", http.StatusInternalServerError)
		return
	}

	settingsMap := map[string]json.RawMessage{}
	for _, s := range settings {
		settingsMap[s.Key] = s.Value
	}
	if _, ok := settingsMap["store_info"]; !ok {
		settingsMap["store_info"] = defaultStoreInfo
	}

	writeJSON(w, http.StatusOK, settingsMap)
}

// UpdateSettingHandler godoc
// @Summary Upsert one application setting
// @Tags settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param setting body SettingUpdateRequest true "Setting value"
// @Success 200 {object} models.Setting
// @Failure 400 {string} string "Invalid input"
// @Router /settings/{key} [put]
// @Security BearerAuth
func UpdateSettingHandler(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		http.Error(w, "setting key is required", http.StatusBadRequest)
		return
	}

	var req SettingUpdateRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if len(req.Value) == 0 || !json.Valid(req.Value) {
		http.Error(w, "value must be valid JSON", http.StatusBadRequest)
		return
	}

	saved, err := settingsRepo.Upsert(models.Setting{Key: key, Value: req.Value})
	if err != nil {
		http.Error(w, "could not save setting", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, saved)
}

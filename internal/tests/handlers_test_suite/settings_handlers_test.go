package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/sahyadri-sports/backoffice/internal/http"
)

func TestGetSettingsHandler_SeedsStoreInfo(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/settings", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var settings map[string]json.RawMessage
	if err := json.NewDecoder(w.Body).Decode(&settings); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	raw, ok := settings["store_info"]
	if !ok {
		t.Fatal("expected default store_info entry")
	}
	var info map[string]string
	if err := json.Unmarshal(raw, &info); err != nil {
		t.Fatalf("store_info is not an object: %v", err)
	}
	if info["name"] != "Sahyadri Sports" {
		t.Errorf("expected default store name, got %q", info["name"])
	}
}

func TestUpdateSettingHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	payload := map[string]json.RawMessage{"value": json.RawMessage(`{"tax_rate": 18}`)}
	w := doJSON(r, http.MethodPut, "/settings/tax", payload)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/settings", nil)
	var settings map[string]json.RawMessage
	json.NewDecoder(w.Body).Decode(&settings)

	var saved map[string]int
	if err := json.Unmarshal(settings["tax"], &saved); err != nil {
		t.Fatalf("saved setting is not an object: %v", err)
	}
	if saved["tax_rate"] != 18 {
		t.Errorf("expected tax_rate 18, got %d", saved["tax_rate"])
	}
}

func TestUpdateSettingHandler_InvalidJSON(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPut, "/settings/broken", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request for missing value, got %d", w.Code)
	}
}

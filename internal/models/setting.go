package models

import "encoding/json"

// Setting is a key/value application setting. Value holds raw JSON so the
// settings screen can store arbitrary shapes (store info, preferences).
type Setting struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt string          `json:"updated_at,omitempty"`
}

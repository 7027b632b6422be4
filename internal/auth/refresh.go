package auth

import (
	"encoding/json"
	"log"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	refreshTokenFile = "refresh_tokens.json"
	refreshTokenTTL  = 7 * 24 * time.Hour
)

type refreshEntry struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

var (
	refreshTokenStore = map[string]refreshEntry{}
	mu                sync.Mutex
	loaded            bool
)

// IssueRefreshToken mints a refresh token for the user and persists the store.
func IssueRefreshToken(username string) string {
	mu.Lock()
	defer mu.Unlock()
	loadLocked()

	token := uuid.NewString()
	refreshTokenStore[token] = refreshEntry{
		Username:  username,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	saveLocked()
	return token
}

// RedeemRefreshToken exchanges a refresh token for its username, rotating the
// token out of the store. Expired or unknown tokens return ok=false.
func RedeemRefreshToken(token string) (string, bool) {
	mu.Lock()
	defer mu.Unlock()
	loadLocked()

	entry, ok := refreshTokenStore[token]
	if !ok {
		return "", false
	}
	delete(refreshTokenStore, token)
	saveLocked()

	if time.Now().After(entry.ExpiresAt) {
		return "", false
	}
	return entry.Username, true
}

// StartRefreshTokenCleaner prunes expired refresh tokens on an interval.
// Intended to run as a goroutine from main.
func StartRefreshTokenCleaner(interval time.Duration) {
	for {
		time.Sleep(interval)
		mu.Lock()
		loadLocked()
		now := time.Now()
		for token, entry := range refreshTokenStore {
			if now.After(entry.ExpiresAt) {
				delete(refreshTokenStore, token)
			}
		}
		saveLocked()
		mu.Unlock()
	}
}

func loadLocked() {
	if loaded {
		return
	}
	loaded = true

	data, err := os.ReadFile(refreshTokenFile)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("failed to load refresh token store: %v", err)
		}
		return
	}
	if err := json.Unmarshal(data, &refreshTokenStore); err != nil {
		log.Printf("failed to parse refresh token store: %v", err)
		refreshTokenStore = map[string]refreshEntry{}
	}
}

func saveLocked() {
	data, err := json.MarshalIndent(refreshTokenStore, "", "  ")
	if err != nil {
		log.Printf("failed to encode refresh token store: %v", err)
		return
	}
	if err := os.WriteFile(refreshTokenFile, data, 0600); err != nil {
		log.Printf("failed to save refresh token store: %v", err)
	}
}

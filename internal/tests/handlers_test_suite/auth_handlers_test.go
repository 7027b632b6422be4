package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/sahyadri-sports/backoffice/internal/http"
	handler "github.com/sahyadri-sports/backoffice/internal/http/handlers"
)

func postPublic(r http.Handler, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.RemoteAddr = nextAddr()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterHandler(t *testing.T) {
	r := api.NewRouter()

	w := postPublic(r, "/register", handler.CredentialsRequest{Username: "newuser", Password: "secret123"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.RegisterResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token in the register response")
	}
}

func TestRegisterHandler_ShortCredentials(t *testing.T) {
	r := api.NewRouter()

	tests := []handler.CredentialsRequest{
		{Username: "ab", Password: "secret123"},
		{Username: "validname", Password: "short"},
		{Username: "", Password: ""},
	}
	for _, creds := range tests {
		w := postPublic(r, "/register", creds)
		if w.Code != http.StatusBadRequest {
			t.Errorf("creds %+v: expected 400 Bad Request, got %d", creds, w.Code)
		}
	}
}

func TestRegisterHandler_Duplicate(t *testing.T) {
	r := api.NewRouter()

	if w := postPublic(r, "/register", handler.CredentialsRequest{Username: "dupuser", Password: "secret123"}); w.Code != http.StatusCreated {
		t.Fatalf("first register failed: %d", w.Code)
	}
	w := postPublic(r, "/register", handler.CredentialsRequest{Username: "dupuser", Password: "secret123"})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict, got %d", w.Code)
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	r := api.NewRouter()

	w := postPublic(r, "/login", handler.UserLogin{Username: "admin", Password: "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestLoginHandler_UnknownUser(t *testing.T) {
	r := api.NewRouter()

	w := postPublic(r, "/login", handler.UserLogin{Username: "nobody", Password: "whatever"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestRefreshTokenHandler_Rotation(t *testing.T) {
	r := api.NewRouter()

	w := postPublic(r, "/login", handler.UserLogin{Username: "admin", Password: "secret123"})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d", w.Code)
	}
	var login handler.LoginResult
	json.NewDecoder(w.Body).Decode(&login)
	if login.RefreshToken == "" {
		t.Fatal("expected a refresh token from login")
	}

	w = postPublic(r, "/refresh", handler.RefreshRequest{RefreshToken: login.RefreshToken})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var refreshed handler.LoginResult
	json.NewDecoder(w.Body).Decode(&refreshed)
	if refreshed.Token == "" || refreshed.RefreshToken == "" {
		t.Error("expected fresh access and refresh tokens")
	}

	// The redeemed token is rotated out and cannot be replayed.
	w = postPublic(r, "/refresh", handler.RefreshRequest{RefreshToken: login.RefreshToken})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 on replay, got %d", w.Code)
	}
}

func TestRegisterAsAdminHandler_ForbiddenForUsers(t *testing.T) {
	r := api.NewRouter()

	if w := postPublic(r, "/register", handler.CredentialsRequest{Username: "plainuser", Password: "secret123"}); w.Code != http.StatusCreated {
		t.Fatalf("register failed: %d", w.Code)
	}
	userToken, err := generateToken(r, "plainuser", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	body, _ := json.Marshal(handler.RegisterAsAdminRequest{Username: "elevated", Password: "secret123", Role: "admin"})
	req := httptest.NewRequest(http.MethodPost, "/admin/users", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+userToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 Forbidden, got %d", w.Code)
	}
}

func TestRegisterAsAdminHandler_AsAdmin(t *testing.T) {
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/admin/users", handler.RegisterAsAdminRequest{
		Username: "manager",
		Password: "secret123",
		Role:     "manager",
	})
	if w.Code != http.StatusCreated {
		t.Errorf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}
}

package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/rogerio-castellano/inventree/internal/http"
	handler "github.com/rogerio-castellano/inventree/internal/http/handlers"
)

func register(r http.Handler, username, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(handler.CredentialsRequest{Username: username, Password: password})
	return serve(r, newRequestWithoutAuth(http.MethodPost, "/register", body))
}

func TestRegisterHandler(t *testing.T) {
	r := api.NewRouter()

	w := register(r, "newuser", "longenough")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.RegisterResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Token == "" {
		t.Error("registration should return a token")
	}

	if w := register(r, "newuser", "longenough"); w.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate username, got %d", w.Code)
	}
	if w := register(r, "ab", "longenough"); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for short username, got %d", w.Code)
	}
	if w := register(r, "validname", "short"); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for short password, got %d", w.Code)
	}
}

func TestLoginHandler(t *testing.T) {
	r := api.NewRouter()

	tok, err := generateToken(r, "admin", "secret")
	if err != nil || tok == "" {
		t.Fatalf("login with valid credentials failed: %v", err)
	}

	body, _ := json.Marshal(handler.CredentialsRequest{Username: "admin", Password: "wrong"})
	if w := serve(r, newRequestWithoutAuth(http.MethodPost, "/login", body)); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad password, got %d", w.Code)
	}

	body, _ = json.Marshal(handler.CredentialsRequest{Username: "nobody", Password: "whatever"})
	if w := serve(r, newRequestWithoutAuth(http.MethodPost, "/login", body)); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for unknown user, got %d", w.Code)
	}
}

func TestAuthMiddleware_RejectsGarbageToken(t *testing.T) {
	r := api.NewRouter()

	req := newRequestWithoutAuth(http.MethodPost, "/items/stock", []byte(`{}`))
	req.Header.Set("Authorization", "Bearer not-a-token")
	if w := serve(r, req); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for a malformed token, got %d", w.Code)
	}
}

package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/ricardomoraes/minimart-inventory/internal/http"
	handler "github.com/ricardomoraes/minimart-inventory/internal/http/handlers"
	rl "github.com/ricardomoraes/minimart-inventory/internal/http/rate_limiter"
)

func TestLoginHandler_Valid(t *testing.T) {
	r := api.NewRouter()

	w := loginRequest(r, "admin", "secret")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Token == "" {
		t.Errorf("expected an access token")
	}
	if resp.RefreshToken == "" {
		t.Errorf("expected a refresh token")
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	r := api.NewRouter()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "Wrong password", username: "admin", password: "wrong"},
		{name: "Unknown user", username: "nobody", password: "secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := loginRequest(r, tt.username, tt.password)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401 Unauthorized, got %d", w.Code)
			}
		})
	}
}

func TestLoginHandler_RateLimited(t *testing.T) {
	t.Cleanup(rl.CleanupAllVisitors)
	r := api.NewRouter()

	body, _ := json.Marshal(handler.CredentialsRequest{Username: "admin", Password: "wrong"})

	// The limiter allows a burst of three per client address.
	var last int
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
		req.RemoteAddr = "10.9.9.9:5000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		last = w.Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("expected 429 Too Many Requests on the fourth attempt, got %d", last)
	}
}

func TestRefreshHandler(t *testing.T) {
	r := api.NewRouter()

	loginW := loginRequest(r, "admin", "secret")
	var login handler.LoginResult
	if err := json.NewDecoder(loginW.Body).Decode(&login); err != nil {
		t.Fatalf("error decoding login response: %v", err)
	}

	body, _ := json.Marshal(handler.RefreshRequest{RefreshToken: login.RefreshToken})
	req := httptest.NewRequest(http.MethodPost, "/refresh", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var refreshed handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&refreshed); err != nil {
		t.Fatalf("error decoding refresh response: %v", err)
	}
	if refreshed.Token == "" {
		t.Fatalf("expected a fresh access token")
	}

	// The new token must open gated routes.
	probe := httptest.NewRequest(http.MethodGet, "/products", nil)
	probe.Header.Set("Authorization", "Bearer "+refreshed.Token)
	probeW := httptest.NewRecorder()
	r.ServeHTTP(probeW, probe)
	if probeW.Code != http.StatusOK {
		t.Errorf("expected refreshed token to be accepted, got %d", probeW.Code)
	}
}

func TestRefreshHandler_UnknownToken(t *testing.T) {
	r := api.NewRouter()

	body, _ := json.Marshal(handler.RefreshRequest{RefreshToken: "no-such-token"})
	req := httptest.NewRequest(http.MethodPost, "/refresh", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestLogoutHandler_RevokesRefreshToken(t *testing.T) {
	r := api.NewRouter()

	loginW := loginRequest(r, "admin", "secret")
	var login handler.LoginResult
	if err := json.NewDecoder(loginW.Body).Decode(&login); err != nil {
		t.Fatalf("error decoding login response: %v", err)
	}

	body, _ := json.Marshal(handler.RefreshRequest{RefreshToken: login.RefreshToken})
	req := httptest.NewRequest(http.MethodPost, "/logout", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+login.Token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	// The revoked refresh token no longer continues the session.
	refreshBody, _ := json.Marshal(handler.RefreshRequest{RefreshToken: login.RefreshToken})
	refreshReq := httptest.NewRequest(http.MethodPost, "/refresh", bytes.NewReader(refreshBody))
	refreshW := httptest.NewRecorder()
	r.ServeHTTP(refreshW, refreshReq)
	if refreshW.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 after revocation, got %d", refreshW.Code)
	}
}

func TestAuthMiddleware_RejectsBadTokens(t *testing.T) {
	r := api.NewRouter()

	tests := []struct {
		name   string
		header string
	}{
		{name: "No header", header: ""},
		{name: "Not a bearer token", header: "Basic abc123"},
		{name: "Garbage token", header: "Bearer not.a.jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/products", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401 Unauthorized, got %d", w.Code)
			}
		})
	}
}

package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/boolen-kitchen/api/internal/config"
	"github.com/boolen-kitchen/api/internal/router"
	"github.com/boolen-kitchen/api/internal/store"
	"github.com/boolen-kitchen/api/internal/ws"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:                "0",
		JWTSecret:           "test-secret",
		AdminUsername:       "admin",
		AdminPassword:       "admin",
		CoerceInvalidPrices: true,
	}
}

// newTestServer wires the real router over a file store in a temp dir so
// handler tests exercise routing, auth, and error mapping end to end.
func newTestServer(t *testing.T) (chi.Router, store.Store) {
	t.Helper()

	st, err := store.NewFileStore(filepath.Join(t.TempDir(), "db.json"))
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}

	hub := ws.NewHub()
	go hub.Run()

	r, err := router.New(testConfig(), st, hub)
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	return r, st
}

func doJSON(t *testing.T, r chi.Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, r chi.Router) string {
	t.Helper()

	rec := doJSON(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"username": "admin",
		"password": "admin",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode token: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("empty token")
	}
	return resp.Token
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
}

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testAdminPassword = "s3cret"

// stubStore lets handler tests script the persistence layer.
type stubStore struct {
	insertFn func(ctx context.Context, a NewAdhesion) (*Adhesion, error)
	listFn   func(ctx context.Context, page, limit int) ([]Adhesion, int, error)
}

func (s *stubStore) Insert(ctx context.Context, a NewAdhesion) (*Adhesion, error) {
	if s.insertFn != nil {
		return s.insertFn(ctx, a)
	}
	return &Adhesion{
		ID:         1,
		Name:       a.Name,
		Email:      a.Email,
		Comment:    a.Comment,
		Newsletter: a.Newsletter,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

func (s *stubStore) List(ctx context.Context, page, limit int) ([]Adhesion, int, error) {
	if s.listFn != nil {
		return s.listFn(ctx, page, limit)
	}
	return []Adhesion{}, 0, nil
}

func testConfig(t *testing.T) Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing test password: %v", err)
	}
	return Config{
		Host:                 "127.0.0.1",
		Port:                 1337,
		Env:                  EnvProduction,
		CORSOrigin:           "http://localhost:3000",
		RateLimitWindowMS:    900000,
		RateLimitMaxRequests: 100,
		AdminPasswordHash:    string(hash),
	}
}

func newTestServer(t *testing.T, cfg Config, store AdhesionStore) *Server {
	t.Helper()
	if store == nil {
		store = &stubStore{}
	}
	s := New(cfg, zap.NewNop().Sugar(), store)
	t.Cleanup(s.Close)
	return s
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, testConfig(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %q", body["status"])
	}
}

func TestSecurityHeaders(t *testing.T) {
	s := newTestServer(t, testConfig(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	want := map[string]string{
		"Cache-Control":          "no-cache, no-store, must-revalidate",
		"Pragma":                 "no-cache",
		"Expires":                "0",
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"X-XSS-Protection":       "1; mode=block",
	}
	for header, value := range want {
		if got := w.Header().Get(header); got != value {
			t.Errorf("%s: got %q, want %q", header, got, value)
		}
	}
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t, testConfig(t), nil)

	// Generated when absent.
	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	if w.Header().Get("X-Request-Id") == "" {
		t.Error("expected a generated X-Request-Id")
	}

	// Kept when supplied.
	req = httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	req.Header.Set("X-Request-Id", "client-rid")
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-Id"); got != "client-rid" {
		t.Errorf("expected client-rid to be kept, got %q", got)
	}
}

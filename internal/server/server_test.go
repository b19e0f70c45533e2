package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/easylandingweb/easylanding/internal/db"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return New(cfg, database)
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, Config{Port: 0})

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t, Config{Port: 0, AllowAll: true})

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestCORSRestrictedByDefault(t *testing.T) {
	srv := newTestServer(t, Config{Port: 0})

	req := httptest.NewRequest("GET", "/healthz", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unexpected Allow-Origin %q for foreign origin", got)
	}
}

func TestFeatureRoutesMounted(t *testing.T) {
	srv := newTestServer(t, Config{Port: 0})
	srv.Router().Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})
	srv.Streams().Get("/ws/ping", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Deadline(); ok {
			t.Error("stream routes should not carry a deadline")
		}
		w.Write([]byte("stream"))
	})

	for path, want := range map[string]string{"/api/ping": "pong", "/ws/ping": "stream"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		if w.Body.String() != want {
			t.Errorf("%s: body = %q, want %q", path, w.Body.String(), want)
		}
	}
}

func TestCheckOrigin(t *testing.T) {
	tests := []struct {
		name     string
		allowAll bool
		origin   string
		want     bool
	}{
		{"no origin", false, "", true},
		{"localhost", false, "http://localhost:8080", true},
		{"loopback", false, "http://127.0.0.1:3000", true},
		{"foreign", false, "https://evil.example", false},
		{"localhost without port", false, "http://localhost", false},
		{"https localhost", false, "https://localhost:8080", false},
		{"lookalike host", false, "http://localhost.evil.example:8080", false},
		{"null origin", false, "null", false},
		{"foreign with allow all", true, "https://evil.example", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, Config{AllowAll: tt.allowAll})
			req := httptest.NewRequest("GET", "/ws/preview", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if got := srv.CheckOrigin(req); got != tt.want {
				t.Errorf("CheckOrigin(%q) = %v, want %v", tt.origin, got, tt.want)
			}
		})
	}
}

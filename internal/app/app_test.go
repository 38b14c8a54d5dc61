package app

import (
	"encoding/json"
	"maps"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/janisto/image-analyzer-backend/internal/http/root"
	"github.com/janisto/image-analyzer-backend/internal/platform/config"
)

func testConfig() config.Config {
	return config.Config{
		Port:            "8080",
		LogLevel:        "info",
		AllowedOrigins:  []string{"*"},
		MaxRequestBytes: 1 << 20,
		ShutdownTimeout: time.Second,
	}
}

func serve(t *testing.T, h http.Handler, method, path string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	return resp
}

func TestRootReturnsWelcome(t *testing.T) {
	h, _ := New(testConfig(), "test")
	resp := serve(t, h, http.MethodGet, "/", nil)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if want := map[string]any{"message": root.WelcomeMessage}; !maps.Equal(body, want) {
		t.Fatalf("expected %v, got %v", want, body)
	}
	if got := strings.TrimSpace(resp.Body.String()); got != `{"message":"Welcome to the AI Image Analyzer Backend API!"}` {
		t.Fatalf("unexpected raw body %q", got)
	}
}

func TestRootResponseHeaders(t *testing.T) {
	h, _ := New(testConfig(), "test")
	resp := serve(t, h, http.MethodGet, "/", map[string]string{
		chimiddleware.RequestIDHeader: "app-root",
		"Origin":                      "http://example.com",
	})

	if got := resp.Header().Get(chimiddleware.RequestIDHeader); got != "app-root" {
		t.Errorf("expected request ID echoed, got %q", got)
	}
	if got := resp.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("expected security headers, got X-Content-Type-Options=%q", got)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected CORS header, got %q", got)
	}
	if vary := strings.Join(resp.Header().Values("Vary"), ","); !strings.Contains(vary, "Accept") {
		t.Errorf("expected Vary to contain Accept, got %q", vary)
	}
}

func TestFrameworkDefaults(t *testing.T) {
	h, _ := New(testConfig(), "test")

	tests := []struct {
		name   string
		method string
		path   string
		status int
		title  string
	}{
		{"unknown path", http.MethodGet, "/nonexistent", http.StatusNotFound, "Not Found"},
		{"post root", http.MethodPost, "/", http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"delete root", http.MethodDelete, "/", http.StatusMethodNotAllowed, "Method Not Allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := serve(t, h, tt.method, tt.path, nil)

			if resp.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, resp.Code)
			}
			if ct := resp.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Fatalf("expected application/problem+json, got %q", ct)
			}
			var problem huma.ErrorModel
			if err := json.Unmarshal(resp.Body.Bytes(), &problem); err != nil {
				t.Fatalf("failed to unmarshal problem: %v", err)
			}
			if problem.Status != tt.status || problem.Title != tt.title {
				t.Fatalf("unexpected problem: %+v", problem)
			}
			if tt.status == http.StatusMethodNotAllowed {
				if allow := resp.Header().Get("Allow"); allow != http.MethodGet {
					t.Fatalf("expected Allow GET, got %q", allow)
				}
			}
		})
	}
}

func TestHealthRoute(t *testing.T) {
	h, _ := New(testConfig(), "1.2.3")
	resp := serve(t, h, http.MethodGet, "/health", nil)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"version":"1.2.3"`) {
		t.Fatalf("expected version in health body, got %s", resp.Body.String())
	}
}

func TestOpenAPIDocument(t *testing.T) {
	h, api := New(testConfig(), "1.2.3")

	op := api.OpenAPI().Paths["/"]
	if op == nil || op.Get == nil {
		t.Fatal("expected GET / in OpenAPI document")
	}
	if op.Get.OperationID != "read-root" {
		t.Fatalf("unexpected operation ID %q", op.Get.OperationID)
	}
	if _, ok := api.OpenAPI().Paths["/health"]; ok {
		t.Fatal("health route should not be part of the OpenAPI document")
	}

	resp := serve(t, h, http.MethodGet, "/openapi.json", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for /openapi.json, got %d", resp.Code)
	}
	var doc struct {
		Info struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &doc); err != nil {
		t.Fatalf("failed to unmarshal OpenAPI: %v", err)
	}
	if doc.Info.Title != "AI Image Analyzer Backend" || doc.Info.Version != "1.2.3" {
		t.Fatalf("unexpected info: %+v", doc.Info)
	}
}

func TestDocsSkipSecurityHeaders(t *testing.T) {
	h, _ := New(testConfig(), "test")
	resp := serve(t, h, http.MethodGet, "/docs", nil)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("X-Frame-Options"); got != "" {
		t.Fatalf("expected docs to skip security headers, got %q", got)
	}
}

func TestRestrictedCORSOrigins(t *testing.T) {
	cfg := testConfig()
	cfg.AllowedOrigins = []string{"https://app.example"}
	h, _ := New(cfg, "test")

	resp := serve(t, h, http.MethodGet, "/", map[string]string{"Origin": "https://other.example"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no CORS grant for other origin, got %q", got)
	}
}

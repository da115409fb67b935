package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCORSAllowedOrigin(t *testing.T) {
	h := CORS([]string{"https://furnisure-frontend.vercel.app"})(ok)

	req := httptest.NewRequest(http.MethodGet, "/api/quotations", nil)
	req.Header.Set("Origin", "https://furnisure-frontend.vercel.app")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://furnisure-frontend.vercel.app" {
		t.Fatalf("allow origin = %q", got)
	}
}

func TestCORSRejectsOtherOrigin(t *testing.T) {
	h := CORS([]string{"https://furnisure-frontend.vercel.app"})(ok)

	req := httptest.NewRequest(http.MethodGet, "/api/quotations", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("allow origin = %q, want none", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := CORS([]string{"*"})(ok)

	req := httptest.NewRequest(http.MethodOptions, "/api/quotations/1", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Fatalf("allow methods missing")
	}
}

func TestSecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeaders(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	for _, k := range []string{"X-Content-Type-Options", "X-Frame-Options", "Strict-Transport-Security"} {
		if rec.Header().Get(k) == "" {
			t.Errorf("%s missing", k)
		}
	}
}

package lookup

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/gin-gonic/gin"
)

// mockLookup implements data.CountryLookup for testing.
type mockLookup struct {
	country string
	err     error
	got     netip.Addr
}

func (m *mockLookup) LookupCountry(ip netip.Addr) (string, error) {
	m.got = ip
	return m.country, m.err
}

func (m *mockLookup) Close() error {
	return nil
}

func setupRouter(lookup *mockLookup) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(lookup)
	r.GET("/api/v1/lookup/:ip", h.JSON)
	r.NoRoute(h.Plain)
	return r
}

func TestPlain(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		lookup   *mockLookup
		wantCode int
		wantBody string
	}{
		{
			name:     "IPv4 found",
			method:   "GET",
			path:     "/1.1.1.1",
			lookup:   &mockLookup{country: "AU"},
			wantCode: http.StatusOK,
			wantBody: "AU",
		},
		{
			name:     "IPv6 found",
			method:   "GET",
			path:     "/2001:218::1",
			lookup:   &mockLookup{country: "JP"},
			wantCode: http.StatusOK,
			wantBody: "JP",
		},
		{
			name:     "short IPv6",
			method:   "GET",
			path:     "/::1",
			lookup:   &mockLookup{},
			wantCode: http.StatusOK,
			wantBody: "",
		},
		{
			name:     "not found",
			method:   "GET",
			path:     "/10.0.0.1",
			lookup:   &mockLookup{},
			wantCode: http.StatusOK,
			wantBody: "",
		},
		{
			name:     "invalid address",
			method:   "GET",
			path:     "/favicon.ico",
			lookup:   &mockLookup{country: "AU"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "root",
			method:   "GET",
			path:     "/",
			lookup:   &mockLookup{country: "AU"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "non-GET",
			method:   "POST",
			path:     "/1.1.1.1",
			lookup:   &mockLookup{country: "AU"},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "lookup error",
			method:   "GET",
			path:     "/1.1.1.1",
			lookup:   &mockLookup{err: fmt.Errorf("db failure")},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(tt.lookup)

			req, _ := http.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, w.Code)
			}
			if tt.wantCode == http.StatusOK && w.Body.String() != tt.wantBody {
				t.Errorf("expected body %q, got %q", tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestJSON_Found(t *testing.T) {
	lookup := &mockLookup{country: "CN"}
	router := setupRouter(lookup)

	req, _ := http.NewRequest("GET", "/api/v1/lookup/::ffff:1.1.0.1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp LookupResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Found || resp.Country != "CN" {
		t.Errorf("expected found CN, got %+v", resp)
	}
	if resp.IP != "::ffff:1.1.0.1" {
		t.Errorf("expected ip ::ffff:1.1.0.1, got %s", resp.IP)
	}
	if !lookup.got.Is4In6() {
		t.Errorf("expected the mapped address to reach the lookup, got %s", lookup.got)
	}
}

func TestJSON_NotFound(t *testing.T) {
	router := setupRouter(&mockLookup{})

	req, _ := http.NewRequest("GET", "/api/v1/lookup/10.0.0.1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp LookupResponse
	json.Unmarshal(w.Body.Bytes(), &resp)

	if resp.Found || resp.Country != "" {
		t.Errorf("expected not found, got %+v", resp)
	}
}

func TestJSON_InvalidIP(t *testing.T) {
	router := setupRouter(&mockLookup{country: "US"})

	req, _ := http.NewRequest("GET", "/api/v1/lookup/not-an-ip", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var resp LookupResponse
	json.Unmarshal(w.Body.Bytes(), &resp)

	if resp.Error != "invalid IP address" {
		t.Errorf("expected 'invalid IP address' error, got %q", resp.Error)
	}
}

func TestJSON_LookupError(t *testing.T) {
	router := setupRouter(&mockLookup{err: fmt.Errorf("db failure")})

	req, _ := http.NewRequest("GET", "/api/v1/lookup/1.2.3.4", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
}

package health

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)

	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestEndpoints(t *testing.T) {
	withDetails := NewHandler(nil)
	withDetails.SetDetail("ipv4_records", 4)
	withDetails.SetDetail("ipv6_records", 0)

	tests := []struct {
		name     string
		handler  *Handler
		path     string
		wantCode int
		wantBody string
	}{
		{
			name:     "health",
			handler:  NewHandler(nil),
			path:     "/health",
			wantCode: http.StatusOK,
			wantBody: `{"status":"ok"}`,
		},
		{
			name:     "health with details",
			handler:  withDetails,
			path:     "/health",
			wantCode: http.StatusOK,
			wantBody: `{"ipv4_records":4,"ipv6_records":0,"status":"ok"}`,
		},
		{
			name:     "ready",
			handler:  NewHandler(func() error { return nil }),
			path:     "/ready",
			wantCode: http.StatusOK,
			wantBody: `{"status":"ready"}`,
		},
		{
			name:     "not ready",
			handler:  NewHandler(func() error { return errors.New("shutting down") }),
			path:     "/ready",
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"error":"shutting down","status":"not ready"}`,
		},
		{
			name:     "liveness ignores readiness",
			handler:  NewHandler(func() error { return errors.New("shutting down") }),
			path:     "/health",
			wantCode: http.StatusOK,
			wantBody: `{"status":"ok"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(tt.handler, tt.path)
			if w.Code != tt.wantCode {
				t.Errorf("expected status %d, got %d", tt.wantCode, w.Code)
			}
			if w.Body.String() != tt.wantBody {
				t.Errorf("expected body %s, got %s", tt.wantBody, w.Body.String())
			}
		})
	}
}

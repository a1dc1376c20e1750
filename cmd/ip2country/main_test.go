package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/TomasB/ip2country/internal/config"
	"github.com/TomasB/ip2country/internal/data"
	homedir "github.com/mitchellh/go-homedir"
)

const (
	testIPv4CSV = "../../testdata/example.csv"
	testIPv6CSV = "../../testdata/example6.csv"
	testGapCSV  = "../../testdata/gap.csv"
)

func init() {
	homedir.DisableCache = true
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLookupCmd(t *testing.T) {
	out, err := execute(t, "lookup",
		"--ipv4-csv", testIPv4CSV, "--ipv6-csv", testIPv6CSV, "--log-level", "error",
		"1.1.0.1", "1.1.1.1", "0.0.0.1", "2001:218::1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "1.1.0.1 CN\n1.1.1.1 AU\n0.0.0.1 -\n2001:218::1 JP\n"
	if out != want {
		t.Errorf("expected output:\n%s\ngot:\n%s", want, out)
	}
}

func TestLookupCmd_InvalidIP(t *testing.T) {
	_, err := execute(t, "lookup", "--ipv4-csv", testIPv4CSV, "--ipv6-csv", testIPv6CSV, "not-an-ip")
	if err == nil || !strings.Contains(err.Error(), "invalid IP address") {
		t.Fatalf("expected invalid IP error, got %v", err)
	}
}

func TestLookupCmd_MissingData(t *testing.T) {
	_, err := execute(t, "lookup", "--ipv4-csv", "/nonexistent/ipv4.csv", "--ipv6-csv", "", "1.1.1.1")
	if err == nil {
		t.Fatal("expected error for missing data file")
	}
}

func TestExportCmd(t *testing.T) {
	out, err := execute(t, "export", "--family", "v4", "--ipv4-csv", testGapCSV, "--log-level", "error")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "1.0.0.0/25,AU" {
		t.Errorf("expected first prefix 1.0.0.0/25,AU, got %s", lines[0])
	}
	for _, l := range lines {
		if strings.HasSuffix(l, ",") {
			t.Errorf("expected gaps to be skipped, got %s", l)
		}
	}
	if !strings.Contains(out, "1.0.1.0/24,CN\n") || !strings.Contains(out, "128.0.0.0/1,CN\n") {
		t.Errorf("expected CN to extend to the top of the address space, got:\n%s", out)
	}
}

func TestExportCmd_Gaps(t *testing.T) {
	out, err := execute(t, "export", "--family", "v4", "--gaps", "--ipv4-csv", testGapCSV, "--log-level", "error")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "1.0.0.254/31,\n") {
		t.Errorf("expected gap prefix 1.0.0.254/31, got:\n%s", out)
	}
}

func TestExportCmd_UnknownFamily(t *testing.T) {
	if _, err := execute(t, "export", "--family", "v5"); err == nil {
		t.Fatal("expected error for unknown family")
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "ip2country ") {
		t.Errorf("unexpected version output %q", out)
	}
}

func TestRouter(t *testing.T) {
	countries, err := data.NewTableReader(testIPv4CSV, testIPv6CSV)
	if err != nil {
		t.Fatalf("failed to load range table: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	router := newRouter(ctx, config.Config{LogLevel: "info"}, logger, countries, countries)

	tests := []struct {
		method   string
		path     string
		wantCode int
		wantBody string
	}{
		{"GET", "/1.1.0.1", http.StatusOK, "CN"},
		{"GET", "/2001:218::", http.StatusOK, "JP"},
		{"GET", "/2001:210::", http.StatusOK, ""},
		{"GET", "/bogus", http.StatusBadRequest, ""},
		{"GET", "/health", http.StatusOK, `{"ipv4_records":4,"ipv6_records":4,"status":"ok","version":"dev"}`},
		{"GET", "/ready", http.StatusOK, `{"status":"ready"}`},
		{"GET", "/api/v1/lookup/1.1.1.1", http.StatusOK, `{"ip":"1.1.1.1","country":"AU","found":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, w.Code)
			}
			if tt.wantCode == http.StatusOK && w.Body.String() != tt.wantBody {
				t.Errorf("expected body %s, got %s", tt.wantBody, w.Body.String())
			}
		})
	}

	cancel()
	req, _ := http.NewRequest("GET", "/ready", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected not ready after shutdown starts, got %d", w.Code)
	}
}

func TestRouter_RateLimit(t *testing.T) {
	countries, err := data.NewTableReader(testIPv4CSV, "")
	if err != nil {
		t.Fatalf("failed to load range table: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	router := newRouter(ctx, config.Config{RateLimit: 0.001, RateBurst: 1}, logger, countries, nil)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req, _ := http.NewRequest("GET", "/1.1.1.1", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("expected [200 429], got %v", codes)
	}
}

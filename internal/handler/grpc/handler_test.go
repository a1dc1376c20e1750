package grpc

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/netip"
	"testing"

	ip2cv1 "github.com/TomasB/ip2country/pkg/ip2c/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type mockLookup struct {
	country string
	err     error
	calls   int
}

func (m *mockLookup) LookupCountry(_ netip.Addr) (string, error) {
	m.calls++
	return m.country, m.err
}

func (m *mockLookup) Close() error {
	return nil
}

func TestSendFound(t *testing.T) {
	h := NewHandler(&mockLookup{country: "US"})

	resp, err := h.Send(context.Background(), &ip2cv1.LookupRequest{Ip: "1.2.3.4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.GetCountry() != "US" {
		t.Errorf("expected country US, got %s", resp.GetCountry())
	}
}

func TestSendLogsLookupAtDebug(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	h := NewHandler(&mockLookup{country: "US"})
	if _, err := h.Send(context.Background(), &ip2cv1.LookupRequest{Ip: "1.2.3.4"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no info-level output for a successful lookup, got %s", buf.String())
	}
}

func TestSendIPv6(t *testing.T) {
	h := NewHandler(&mockLookup{country: "JP"})

	resp, err := h.Send(context.Background(), &ip2cv1.LookupRequest{Ip: "2001:218::1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.GetCountry() != "JP" {
		t.Errorf("expected country JP, got %s", resp.GetCountry())
	}
}

func TestSendUnknownCountry(t *testing.T) {
	h := NewHandler(&mockLookup{country: ""})

	resp, err := h.Send(context.Background(), &ip2cv1.LookupRequest{Ip: "10.0.0.1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Country != nil {
		t.Errorf("expected country to be unset, got %s", resp.GetCountry())
	}
}

func TestSendInvalidIP(t *testing.T) {
	lookup := &mockLookup{country: "US"}
	h := NewHandler(lookup)

	resp, err := h.Send(context.Background(), &ip2cv1.LookupRequest{Ip: "not-an-ip"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Country != nil {
		t.Errorf("expected country to be unset, got %s", resp.GetCountry())
	}
	if lookup.calls != 0 {
		t.Errorf("expected no lookup for an invalid address, got %d", lookup.calls)
	}
}

func TestSendNilRequest(t *testing.T) {
	h := NewHandler(&mockLookup{country: "US"})

	_, err := h.Send(context.Background(), nil)
	assertCode(t, err, codes.InvalidArgument)
}

func TestSendLookupError(t *testing.T) {
	h := NewHandler(&mockLookup{err: fmt.Errorf("db failure")})

	_, err := h.Send(context.Background(), &ip2cv1.LookupRequest{Ip: "1.2.3.4"})
	assertCode(t, err, codes.Internal)
}

func assertCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %v", want)
	}
	if status.Code(err) != want {
		t.Fatalf("expected code %v, got %v", want, status.Code(err))
	}
}

package grpc

import (
	"context"
	"log/slog"
	"net/netip"

	"github.com/TomasB/ip2country/internal/data"
	ip2cv1 "github.com/TomasB/ip2country/pkg/ip2c/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Handler implements the gRPC IpLookup service.
type Handler struct {
	ip2cv1.UnimplementedIpLookupServer
	lookup data.CountryLookup
}

// NewHandler creates a new gRPC handler with the given CountryLookup.
func NewHandler(lookup data.CountryLookup) *Handler {
	return &Handler{lookup: lookup}
}

// Send resolves the address in req to a country code. Unparsable addresses
// are not an error: like addresses outside every range, they get a response
// with the country unset.
func (h *Handler) Send(ctx context.Context, req *ip2cv1.LookupRequest) (*ip2cv1.LookupResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	ip, err := netip.ParseAddr(req.GetIp())
	if err != nil {
		slog.DebugContext(ctx, "lookup of unparsable address", "ip", req.GetIp())
		return &ip2cv1.LookupResponse{}, nil
	}

	country, err := h.lookup.LookupCountry(ip)
	if err != nil {
		slog.ErrorContext(ctx, "country lookup failed", "ip", req.GetIp(), "error", err)
		return nil, status.Error(codes.Internal, "lookup failed")
	}

	slog.DebugContext(ctx, "lookup", "ip", req.GetIp(), "country", country)
	resp := &ip2cv1.LookupResponse{}
	if country != "" {
		resp.Country = &country
	}
	return resp, nil
}

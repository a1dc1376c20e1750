// Package check answers whether an address belongs to one of a list of
// allowed countries.
package check

import (
	"log/slog"
	"net/http"
	"net/netip"
	"slices"
	"strings"

	"github.com/TomasB/ip2country/internal/data"
	"github.com/gin-gonic/gin"
)

// CheckRequest is the JSON body of POST /api/v1/check. Country codes are
// matched case-insensitively.
type CheckRequest struct {
	IP               string   `json:"ip" binding:"required"`
	AllowedCountries []string `json:"allowed_countries" binding:"required,min=1,dive,len=2"`
}

// CheckResponse reports the country of the address and whether it is in
// the allowed list. Addresses without a country are never allowed.
type CheckResponse struct {
	Allowed bool   `json:"allowed"`
	Country string `json:"country"`
	Found   bool   `json:"found"`
	Error   string `json:"error,omitempty"`
}

// Handler serves the allow-list check.
type Handler struct {
	lookup data.CountryLookup
}

// NewHandler returns a check handler resolving addresses with lookup.
func NewHandler(lookup data.CountryLookup) *Handler {
	return &Handler{lookup: lookup}
}

// Check handles POST /api/v1/check
func (h *Handler) Check(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, CheckResponse{Error: "invalid request: " + err.Error()})
		return
	}

	ip, err := netip.ParseAddr(req.IP)
	if err != nil {
		c.JSON(http.StatusBadRequest, CheckResponse{Error: "invalid IP address"})
		return
	}

	country, err := h.lookup.LookupCountry(ip)
	if err != nil {
		slog.Error("country lookup failed", "ip", req.IP, "error", err)
		c.JSON(http.StatusInternalServerError, CheckResponse{Error: "lookup failed"})
		return
	}

	allowed := country != "" && slices.ContainsFunc(req.AllowedCountries, func(code string) bool {
		return strings.EqualFold(code, country)
	})
	slog.Debug("check", "ip", req.IP, "country", country, "allowed", allowed)

	c.JSON(http.StatusOK, CheckResponse{
		Allowed: allowed,
		Country: country,
		Found:   country != "",
	})
}

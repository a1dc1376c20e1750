package lookup

import (
	"log/slog"
	"net/http"
	"net/netip"
	"strings"

	"github.com/TomasB/ip2country/internal/data"
	"github.com/gin-gonic/gin"
)

// LookupResponse represents the JSON response for a single address.
type LookupResponse struct {
	IP      string `json:"ip"`
	Country string `json:"country"`
	Found   bool   `json:"found"`
	Error   string `json:"error,omitempty"`
}

// Handler serves country lookups over HTTP.
type Handler struct {
	lookup data.CountryLookup
}

// NewHandler creates a new lookup handler with the given CountryLookup.
func NewHandler(lookup data.CountryLookup) *Handler {
	return &Handler{lookup: lookup}
}

// Plain answers GET /<ip> with the bare country code as text. An address
// without a country gets an empty 200 response. It is meant to be installed
// as the router's NoRoute handler so any path can carry an address.
func (h *Handler) Plain(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		c.Status(http.StatusNotFound)
		return
	}

	raw := strings.TrimPrefix(c.Request.URL.Path, "/")
	ip, err := netip.ParseAddr(raw)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	country, err := h.lookup.LookupCountry(ip)
	if err != nil {
		slog.Error("country lookup failed", "ip", raw, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	if country == "" {
		slog.Warn("ip lookup found no country", "ip", raw)
	} else {
		slog.Debug("lookup", "ip", raw, "country", country)
	}

	c.String(http.StatusOK, country)
}

// JSON handles GET /api/v1/lookup/:ip
func (h *Handler) JSON(c *gin.Context) {
	raw := c.Param("ip")
	ip, err := netip.ParseAddr(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, LookupResponse{
			IP:    raw,
			Error: "invalid IP address",
		})
		return
	}

	country, err := h.lookup.LookupCountry(ip)
	if err != nil {
		slog.Error("country lookup failed", "ip", raw, "error", err)
		c.JSON(http.StatusInternalServerError, LookupResponse{
			IP:    raw,
			Error: "lookup failed",
		})
		return
	}

	c.JSON(http.StatusOK, LookupResponse{
		IP:      ip.String(),
		Country: country,
		Found:   country != "",
	})
}

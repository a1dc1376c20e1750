package data

import (
	"fmt"
	"log/slog"
	"net/netip"

	"github.com/TomasB/ip2country/internal/rangetable"
)

// TableReader implements CountryLookup over an in-memory range table built
// from CSV files.
type TableReader struct {
	table *rangetable.Table
}

// NewTableReader loads the IPv4 and IPv6 range files. An empty path leaves
// that family empty.
func NewTableReader(v4Path, v6Path string) (*TableReader, error) {
	var opts []rangetable.Option
	if v4Path != "" {
		opts = append(opts, rangetable.WithV4File(v4Path))
	}
	if v6Path != "" {
		opts = append(opts, rangetable.WithV6File(v6Path))
	}
	if len(opts) == 0 {
		return nil, fmt.Errorf("no range files configured")
	}

	table, err := rangetable.Load(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load range table: %w", err)
	}
	slog.Debug("range table loaded", "ipv4_records", table.LenV4(), "ipv6_records", table.LenV6())
	return &TableReader{table: table}, nil
}

// NewTableReaderFrom wraps an already built table.
func NewTableReaderFrom(table *rangetable.Table) *TableReader {
	return &TableReader{table: table}
}

// LookupCountry returns the country code for ip, or "" when the address is
// not covered. It never fails.
func (r *TableReader) LookupCountry(ip netip.Addr) (string, error) {
	country, _ := r.table.LookupString(ip)
	return country, nil
}

// Table returns the underlying read-only table.
func (r *TableReader) Table() *rangetable.Table {
	return r.table
}

// Close is a no-op; the table lives in memory.
func (r *TableReader) Close() error {
	return nil
}

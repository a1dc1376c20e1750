package data

import "net/netip"

// CountryLookup defines the interface for IP-to-country lookups.
type CountryLookup interface {
	// LookupCountry returns the two-letter country code for the given IP address.
	// An address outside all known ranges yields "" and a nil error; an error
	// means the backend itself failed.
	LookupCountry(ip netip.Addr) (string, error)

	// Close releases any resources held by the lookup implementation.
	Close() error
}

// Fallback consults Primary first and asks Secondary only for addresses
// Primary has no code for.
type Fallback struct {
	Primary   CountryLookup
	Secondary CountryLookup
}

// LookupCountry implements CountryLookup.
func (f *Fallback) LookupCountry(ip netip.Addr) (string, error) {
	country, err := f.Primary.LookupCountry(ip)
	if err != nil || country != "" {
		return country, err
	}
	return f.Secondary.LookupCountry(ip)
}

// Close closes both lookups and returns the first error.
func (f *Fallback) Close() error {
	err := f.Primary.Close()
	if err2 := f.Secondary.Close(); err == nil {
		err = err2
	}
	return err
}

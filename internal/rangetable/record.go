// Package rangetable maps IP addresses to two-letter country codes using an
// immutable, sorted table of range starts per address family.
//
// A table is built once from CSV input (see Build) and is safe for any number
// of concurrent readers afterwards: nothing in this package mutates a table
// once it has been returned to the caller.
package rangetable

import (
	"encoding/binary"
	"fmt"
	"net/netip"
	"strconv"

	"lukechampine.com/uint128"
)

// Code is a two-byte ASCII country code. The zero value means "no code" and
// marks gap records.
type Code [2]byte

// ParseCode parses a two-letter country code. Both bytes must be printable,
// non-space ASCII so the zero sentinel can never be produced from input.
func ParseCode(s string) (Code, error) {
	if len(s) != 2 {
		return Code{}, fmt.Errorf("country code %q: want 2 bytes, got %d", s, len(s))
	}
	for i := 0; i < 2; i++ {
		if s[i] <= ' ' || s[i] > '~' {
			return Code{}, fmt.Errorf("country code %q: byte %d is not printable ASCII", s, i)
		}
	}
	return Code{s[0], s[1]}, nil
}

// Valid reports whether c holds a code rather than the absent sentinel.
func (c Code) Valid() bool {
	return c != Code{}
}

// String returns the code as a two-character string, or "" when absent.
func (c Code) String() string {
	if !c.Valid() {
		return ""
	}
	return string(c[:])
}

// V4 is an IPv4 address as a big-endian 32-bit value.
type V4 [4]byte

// V6 is an IPv6 address as a big-endian 128-bit value.
type V6 [16]byte

// Address is the set of address families a table can be built over.
//
// Both families are stored as byte arrays so records pack without padding:
// a Record[V4] is 6 bytes and a Record[V6] is 18 bytes.
type Address[A any] interface {
	V4 | V6
	// Compare returns -1, 0 or +1 depending on whether a is less than, equal
	// to or greater than b as an unsigned integer.
	Compare(b A) int
	// next returns a+1, or false if a is the largest address of its family.
	next() (A, bool)
}

// ParseV4 parses a decimal 32-bit address value.
func ParseV4(s string) (V4, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return V4{}, err
	}
	return V4FromUint32(uint32(n)), nil
}

// V4FromUint32 returns the address with integer value n.
func V4FromUint32(n uint32) V4 {
	var a V4
	binary.BigEndian.PutUint32(a[:], n)
	return a
}

// V4From converts an IPv4 (or IPv4-mapped IPv6) netip.Addr.
func V4From(addr netip.Addr) V4 {
	return V4(addr.Unmap().As4())
}

// Uint32 returns the integer value of a.
func (a V4) Uint32() uint32 {
	return binary.BigEndian.Uint32(a[:])
}

// Addr returns a as a netip.Addr.
func (a V4) Addr() netip.Addr {
	return netip.AddrFrom4(a)
}

func (a V4) Compare(b V4) int {
	x, y := a.Uint32(), b.Uint32()
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func (a V4) next() (V4, bool) {
	n := a.Uint32()
	if n == ^uint32(0) {
		return V4{}, false
	}
	return V4FromUint32(n + 1), true
}

var maxV6Div10 = uint128.Max.Div64(10)

// ParseV6 parses a decimal 128-bit address value.
func ParseV6(s string) (V6, error) {
	if s == "" {
		return V6{}, &strconv.NumError{Func: "ParseV6", Num: s, Err: strconv.ErrSyntax}
	}
	var u uint128.Uint128
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return V6{}, &strconv.NumError{Func: "ParseV6", Num: s, Err: strconv.ErrSyntax}
		}
		d := uint64(s[i] - '0')
		if u.Cmp(maxV6Div10) > 0 {
			return V6{}, &strconv.NumError{Func: "ParseV6", Num: s, Err: strconv.ErrRange}
		}
		u = u.Mul64(10)
		if u.Cmp(uint128.Max.Sub64(d)) > 0 {
			return V6{}, &strconv.NumError{Func: "ParseV6", Num: s, Err: strconv.ErrRange}
		}
		u = u.Add64(d)
	}
	return V6FromUint128(u), nil
}

// V6FromUint128 returns the address with integer value u.
func V6FromUint128(u uint128.Uint128) V6 {
	var a V6
	u.PutBytesBE(a[:])
	return a
}

// V6From converts an IPv6 netip.Addr. IPv4 addresses are taken in their
// IPv4-mapped form.
func V6From(addr netip.Addr) V6 {
	return V6(addr.As16())
}

// Uint128 returns the integer value of a.
func (a V6) Uint128() uint128.Uint128 {
	return uint128.FromBytesBE(a[:])
}

// Addr returns a as a netip.Addr.
func (a V6) Addr() netip.Addr {
	return netip.AddrFrom16(a)
}

func (a V6) Compare(b V6) int {
	ah, bh := binary.BigEndian.Uint64(a[:8]), binary.BigEndian.Uint64(b[:8])
	if ah != bh {
		if ah < bh {
			return -1
		}
		return 1
	}
	al, bl := binary.BigEndian.Uint64(a[8:]), binary.BigEndian.Uint64(b[8:])
	switch {
	case al < bl:
		return -1
	case al > bl:
		return 1
	}
	return 0
}

func (a V6) next() (V6, bool) {
	u := a.Uint128()
	if u == uint128.Max {
		return V6{}, false
	}
	return V6FromUint128(u.Add64(1)), true
}

// Record marks the start of a range: from Start (inclusive) up to the next
// record's start (exclusive) the record's code applies.
type Record[A Address[A]] struct {
	start A
	code  Code
}

// Start returns the first address of the range.
func (r Record[A]) Start() A { return r.start }

// Code returns the country code of the range; it is the zero Code for gaps.
func (r Record[A]) Code() Code { return r.code }

// IsGap reports whether the record marks address space absent from the source.
func (r Record[A]) IsGap() bool { return !r.code.Valid() }

package rangetable

import (
	"io"
	"iter"
	"net/netip"
	"os"
	"unicode/utf8"
)

// Table is an immutable pair of IPv4 and IPv6 range sequences.
// The zero Table is empty and answers every lookup with no code.
type Table struct {
	v4 []Record[V4]
	v6 []Record[V6]
}

// New returns a table over records produced by Build. The table takes
// ownership of both slices; callers must not modify them afterwards.
func New(v4 []Record[V4], v6 []Record[V6]) *Table {
	return &Table{v4: v4, v6: v6}
}

type source struct {
	path string
	r    io.Reader
}

type loadOptions struct {
	v4, v6 *source
}

// Option selects a source for one family in Load.
type Option func(*loadOptions)

// WithV4File loads IPv4 ranges from the CSV file at path.
func WithV4File(path string) Option {
	return func(o *loadOptions) { o.v4 = &source{path: path} }
}

// WithV6File loads IPv6 ranges from the CSV file at path.
func WithV6File(path string) Option {
	return func(o *loadOptions) { o.v6 = &source{path: path} }
}

// WithV4Reader loads IPv4 ranges from r.
func WithV4Reader(r io.Reader) Option {
	return func(o *loadOptions) { o.v4 = &source{r: r} }
}

// WithV6Reader loads IPv6 ranges from r.
func WithV6Reader(r io.Reader) Option {
	return func(o *loadOptions) { o.v6 = &source{r: r} }
}

// Load builds a table from the given sources. A family without a source is
// left empty. If any source fails, no table is returned.
func Load(opts ...Option) (*Table, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}
	t := &Table{}
	var err error
	if o.v4 != nil {
		if t.v4, err = loadSource[V4](o.v4); err != nil {
			return nil, err
		}
	}
	if o.v6 != nil {
		if t.v6, err = loadSource[V6](o.v6); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// WithV4 returns a new table with the IPv4 ranges replaced by those loaded
// from path. The IPv6 ranges are shared with t, which is left unchanged.
func (t *Table) WithV4(path string) (*Table, error) {
	v4, err := loadSource[V4](&source{path: path})
	if err != nil {
		return nil, err
	}
	return &Table{v4: v4, v6: t.v6}, nil
}

// WithV6 returns a new table with the IPv6 ranges replaced by those loaded
// from path. The IPv4 ranges are shared with t, which is left unchanged.
func (t *Table) WithV6(path string) (*Table, error) {
	v6, err := loadSource[V6](&source{path: path})
	if err != nil {
		return nil, err
	}
	return &Table{v4: t.v4, v6: v6}, nil
}

func loadSource[A Address[A]](s *source) ([]Record[A], error) {
	r := s.r
	if r == nil {
		f, err := os.Open(s.path)
		if err != nil {
			return nil, &LoadError{Kind: ErrIO, Path: s.path, Err: err}
		}
		defer f.Close()
		r = f
	}
	records, err := Build[A](r)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.Path = s.path
		}
		return nil, err
	}
	return records, nil
}

// Lookup returns the country code for addr, searching the ranges of the
// address's own family. IPv4-mapped IPv6 addresses are IPv6 and are looked
// up in the IPv6 ranges.
func (t *Table) Lookup(addr netip.Addr) (Code, bool) {
	switch {
	case addr.Is4():
		return t.LookupV4(V4From(addr))
	case addr.Is6():
		return t.LookupV6(V6From(addr))
	}
	return Code{}, false
}

// LookupV4 returns the country code for an IPv4 address.
func (t *Table) LookupV4(ip V4) (Code, bool) {
	return search(t.v4, ip)
}

// LookupV6 returns the country code for an IPv6 address.
func (t *Table) LookupV6(ip V6) (Code, bool) {
	return search(t.v6, ip)
}

// LookupString is Lookup with the code rendered as a string. It reports
// false when there is no code or the stored bytes are not valid UTF-8.
func (t *Table) LookupString(addr netip.Addr) (string, bool) {
	code, ok := t.Lookup(addr)
	if !ok || !utf8.Valid(code[:]) {
		return "", false
	}
	return string(code[:]), true
}

// search finds the record covering ip. Addresses below the first start have
// no code; addresses past the last start belong to the last record.
func search[A Address[A]](records []Record[A], ip A) (Code, bool) {
	n := len(records)
	if n == 0 {
		return Code{}, false
	}
	if ip.Compare(records[0].start) < 0 {
		return Code{}, false
	}
	if ip.Compare(records[n-1].start) > 0 {
		return found(records[n-1].code)
	}

	// Invariant: records[lo].start <= ip < records[hi].start (hi may be n).
	lo, hi := 0, n
	for hi != lo+1 {
		mid := lo + (hi-lo)/2
		if ip.Compare(records[mid].start) >= 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return found(records[lo].code)
}

func found(c Code) (Code, bool) {
	return c, c.Valid()
}

// Len returns the total number of records, gaps included.
func (t *Table) Len() int { return len(t.v4) + len(t.v6) }

// LenV4 returns the number of IPv4 records, gaps included.
func (t *Table) LenV4() int { return len(t.v4) }

// LenV6 returns the number of IPv6 records, gaps included.
func (t *Table) LenV6() int { return len(t.v6) }

// Range is an inclusive address interval sharing one code.
type Range[A Address[A]] struct {
	First, Last A
	Code        Code
}

// Ranges4 iterates over the IPv4 ranges in ascending order. Each range ends
// one before the next start; the last one extends to 255.255.255.255.
func (t *Table) Ranges4() iter.Seq[Range[V4]] {
	return ranges(t.v4, V4{0xff, 0xff, 0xff, 0xff})
}

// Ranges6 iterates over the IPv6 ranges in ascending order. The last range
// extends to the top of the address space.
func (t *Table) Ranges6() iter.Seq[Range[V6]] {
	var top V6
	for i := range top {
		top[i] = 0xff
	}
	return ranges(t.v6, top)
}

func ranges[A Address[A]](records []Record[A], top A) iter.Seq[Range[A]] {
	return func(yield func(Range[A]) bool) {
		for i, r := range records {
			last := top
			if i+1 < len(records) {
				last = prev(records[i+1].start)
			}
			if !yield(Range[A]{First: r.start, Last: last, Code: r.code}) {
				return
			}
		}
	}
}

// prev returns a-1 for a > 0. Records are strictly increasing, so the start
// following any record is never the zero address.
func prev[A Address[A]](a A) A {
	switch p := any(&a).(type) {
	case *V4:
		*p = V4FromUint32(p.Uint32() - 1)
	case *V6:
		*p = V6FromUint128(p.Uint128().Sub64(1))
	}
	return a
}

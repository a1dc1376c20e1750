package rangetable

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Build parses newline-delimited "start,end,code" lines into records for one
// address family. start and end are decimal integers; code is two ASCII bytes.
//
// Whenever a range does not begin right after the previous one ended, a gap
// record with no code is inserted at previous end + 1.
//
// Input must be sorted by start with non-overlapping ranges. Build does not
// check this; unsorted input yields undefined lookup results.
//
// Build fails on the first bad line and returns no records. Errors are
// *LoadError values of kind ErrMalformedInput or ErrIO.
func Build[A Address[A]](r io.Reader) ([]Record[A], error) {
	var (
		records []Record[A]
		lastEnd A
		hasLast bool
		line    int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		start, end, code, err := parseLine[A](text)
		if err != nil {
			return nil, malformed(line, err)
		}

		if hasLast {
			if next, ok := lastEnd.next(); ok && next != start {
				records = append(records, Record[A]{start: next})
			}
		}
		records = append(records, Record[A]{start: start, code: code})
		lastEnd, hasLast = end, true
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, malformed(line+1, err)
		}
		return nil, &LoadError{Kind: ErrIO, Err: err}
	}

	return slices.Clip(records), nil
}

// BuildV4 is Build for IPv4 input.
func BuildV4(r io.Reader) ([]Record[V4], error) {
	return Build[V4](r)
}

// BuildV6 is Build for IPv6 input.
func BuildV6(r io.Reader) ([]Record[V6], error) {
	return Build[V6](r)
}

func parseLine[A Address[A]](text string) (start, end A, code Code, err error) {
	fields := strings.Split(text, ",")
	if len(fields) != 3 {
		return start, end, code, fmt.Errorf("want 3 comma-separated fields, got %d", len(fields))
	}
	if start, err = parseAddr[A](strings.TrimSpace(fields[0])); err != nil {
		return start, end, code, fmt.Errorf("range start: %w", err)
	}
	if end, err = parseAddr[A](strings.TrimSpace(fields[1])); err != nil {
		return start, end, code, fmt.Errorf("range end: %w", err)
	}
	if code, err = ParseCode(strings.TrimSpace(fields[2])); err != nil {
		return start, end, code, err
	}
	return start, end, code, nil
}

func parseAddr[A Address[A]](s string) (A, error) {
	var a A
	var err error
	switch p := any(&a).(type) {
	case *V4:
		*p, err = ParseV4(s)
	case *V6:
		*p, err = ParseV6(s)
	}
	return a, err
}

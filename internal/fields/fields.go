// Package fields provides lenient parsing of normalized tradeline values.
// Missing or malformed data never errors: unparseable dates read as absent
// and garbled amounts read as zero, so downstream checks are suppressed
// instead of aborted.
package fields

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order. Credit report extracts are inconsistent
// about formats, so several common ones are accepted.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"2006-01",
	"Jan 2006",
	"January 2, 2006",
	"01-02-2006",
}

// ParseDate parses a date string leniently. The second return is false when
// the value is empty or unparseable.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseAmount parses a monetary string, stripping currency symbols,
// commas, and whitespace. Unparseable input reads as zero with ok=false.
func ParseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		case r == '$', r == ',', r == ' ':
			// strip
		default:
			// units like "USD" trail some extracts; stop at first letter
			if b.Len() > 0 {
				goto done
			}
		}
	}
done:
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ContainsAny reports whether s contains any of the needles,
// case-insensitively.
func ContainsAny(s string, needles ...string) bool {
	if s == "" {
		return false
	}
	s = strings.ToLower(s)
	for _, n := range needles {
		if strings.Contains(s, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

// YearsBetween returns fractional years from a to b, zero when b precedes a.
func YearsBetween(a, b time.Time) float64 {
	if b.Before(a) {
		return 0
	}
	return b.Sub(a).Hours() / (24 * 365.25)
}

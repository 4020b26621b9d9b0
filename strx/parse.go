package strx

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayouts are tried in order by ToDateTime.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"02.01.2006 15:04:05",
	"02.01.2006",
	"2 Jan 2006",
	"January 2, 2006",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.ANSIC,
}

// orDefault returns def[0], or the zero value of T when def is empty.
func orDefault[T any](def []T) T {
	if len(def) > 0 {
		return def[0]
	}
	var zero T
	return zero
}

// ToInt parses s as a base-10 int. Surrounding white space is ignored.
// On failure it returns def[0], or 0.
func ToInt(s string, def ...int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return orDefault(def)
	}
	return n
}

// ToLong parses s as a base-10 int64. On failure it returns def[0], or 0.
func ToLong(s string, def ...int64) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return orDefault(def)
	}
	return n
}

// ToFloat parses s as a float32. On failure it returns def[0], or 0.
func ToFloat(s string, def ...float32) float32 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return orDefault(def)
	}
	return float32(f)
}

// ToDouble parses s as a float64. On failure it returns def[0], or 0.
func ToDouble(s string, def ...float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return orDefault(def)
	}
	return f
}

// ToDecimal parses s as an arbitrary-precision decimal. On failure it
// returns def[0], or decimal.Zero.
func ToDecimal(s string, def ...decimal.Decimal) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		if len(def) > 0 {
			return def[0]
		}
		return decimal.Zero
	}
	return d
}

// ToDateTime parses s against a list of common date and date-time layouts
// (RFC 3339, ISO 8601 without zone, US and European numeric dates, RFC 1123
// and friends). The boolean is false when no layout matches.
func ToDateTime(s string) (time.Time, bool) {
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

// ToDateTimeOr is like [ToDateTime] but returns def when s cannot be parsed.
func ToDateTimeOr(s string, def time.Time) time.Time {
	if t, ok := ToDateTime(s); ok {
		return t
	}
	return def
}

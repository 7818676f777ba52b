// Package normalize turns loosely formatted spreadsheet cells into typed
// values. Nothing here panics on bad input.
package normalize

import (
	desk_errors "pmsdesk/internal"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

var numberReplacer = strings.NewReplacer(",", "", "%", "")

// ParseNumber strips thousands separators and percent signs. Empty or
// unparseable input yields nil.
func ParseNumber(raw string) *decimal.Decimal {
	s := numberReplacer.Replace(strings.TrimSpace(raw))
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// ParsePercent behaves like ParseNumber but maps the inf/-inf sentinels
// exported by some brokers to zero.
func ParsePercent(raw string) *decimal.Decimal {
	s := strings.ToLower(numberReplacer.Replace(strings.TrimSpace(raw)))
	switch s {
	case "inf", "-inf", "+inf", "infinity", "-infinity":
		z := decimal.Zero
		return &z
	}
	return ParseNumber(raw)
}

// IsBlank reports whether a cell carries no value.
func IsBlank(raw string) bool {
	return strings.TrimSpace(raw) == ""
}

func ParseDate(raw string, isTimestamp bool) (time.Time, error) {
	layout := DateLayout
	expected := "YYYY-MM-DD"
	if isTimestamp {
		layout = TimestampLayout
		expected = "YYYY-MM-DD HH:MM:SS"
	}

	s := strings.TrimSpace(raw)
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, desk_errors.FormatError{Value: raw, Expected: expected}
	}
	return t, nil
}

var lenientLayouts = []string{
	DateLayout,
	time.RFC3339,
	time.RFC3339Nano,
	TimestampLayout,
	"2006-01-02T15:04:05",
	"01/02/2006",
	"1/2/2006",
}

// NormalizeDate accepts ISO dates, timestamps and MM/DD/YYYY and returns the
// YYYY-MM-DD form, or nil if the value is not recognized.
func NormalizeDate(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	for _, layout := range lenientLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			out := t.Format(DateLayout)
			return &out
		}
	}
	return nil
}

var dayFirstLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02/01/2006 15:04:05",
	"02-Jan-2006",
	"02-Jan-06",
	DateLayout,
	TimestampLayout,
}

// ParseDayFirstDate parses DD/MM/YYYY style dates used by custodian exports.
func ParseDayFirstDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

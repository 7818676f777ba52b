package category

import "strings"

const bom = "\ufeff"

type HeaderCheck struct {
	Missing []string
}

func (h HeaderCheck) OK() bool {
	return len(h.Missing) == 0
}

func CleanHeader(h string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(h), bom))
}

func CleanHeaders(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = CleanHeader(h)
	}
	return out
}

// ValidateHeaders returns the required columns absent from headers. Matching
// is exact and case-sensitive once whitespace and a byte order mark are
// trimmed.
func ValidateHeaders(headers, required []string) HeaderCheck {
	present := map[string]struct{}{}
	for _, h := range headers {
		present[CleanHeader(h)] = struct{}{}
	}

	missing := []string{}
	for _, r := range required {
		if _, ok := present[r]; !ok {
			missing = append(missing, r)
		}
	}

	return HeaderCheck{Missing: missing}
}

// Fields maps one record onto canonical field names. Cells beyond the
// header are dropped and short records yield empty strings.
func (c Config) Fields(headers []string, record []string) map[string]string {
	out := make(map[string]string, len(headers))
	for i, h := range headers {
		value := ""
		if i < len(record) {
			value = strings.TrimSpace(record[i])
		}
		field := c.FieldName(h)
		if field == "" {
			continue
		}
		if _, seen := out[field]; seen && value == "" {
			continue
		}
		out[field] = value
	}
	return out
}

// RawRow keys a record by its original headers, for failure reports.
func RawRow(headers []string, record []string) map[string]string {
	out := make(map[string]string, len(headers))
	for i, h := range headers {
		if i < len(record) {
			out[CleanHeader(h)] = record[i]
		} else {
			out[CleanHeader(h)] = ""
		}
	}
	return out
}

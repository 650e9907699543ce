// Package resolve maps heterogeneous spreadsheet headers onto semantic
// fields. Source sheets spell the same column many ways ("Course Code",
// "coursecode", "Code"); matching is done on normalized header text so the
// caller only supplies an ordered synonym list per field.
package resolve

import (
	"strconv"
	"strings"
	"unicode"
)

// Row is a single data row: the header names in source column order plus
// the cell value per header. Empty cells are absent from Values so that a
// header with no data never satisfies a lookup.
type Row struct {
	Headers []string
	Values  map[string]string
}

// NewRow pairs a header line with one line of cells. Cells beyond the
// header count are ignored; missing trailing cells are treated as empty.
func NewRow(headers, cells []string) Row {
	values := make(map[string]string, len(headers))
	for i, h := range headers {
		if i >= len(cells) {
			break
		}
		if cells[i] == "" {
			continue
		}
		values[h] = cells[i]
	}
	return Row{Headers: headers, Values: values}
}

// Empty reports whether the row carries no cell data at all.
func (r Row) Empty() bool { return len(r.Values) == 0 }

// Resolve returns the trimmed cell value for the first candidate key that
// matches one of the row's headers, or "" when none do. Each key is tried
// as an exact header first, then against every header whose normalized
// form contains the normalized key. Synonyms are tried in order and the
// first key with any match wins.
func Resolve(row Row, keys []string) string {
	for _, key := range keys {
		if v, ok := row.Values[key]; ok {
			return strings.TrimSpace(v)
		}
		want := normalizeHeader(key)
		for _, h := range row.Headers {
			v, ok := row.Values[h]
			if !ok {
				continue
			}
			if strings.Contains(normalizeHeader(h), want) {
				return strings.TrimSpace(v)
			}
		}
	}
	return ""
}

// ResolveNumber resolves a field and parses it as a float. Missing or
// malformed values coerce to 0.
func ResolveNumber(row Row, keys []string) float64 {
	v, err := strconv.ParseFloat(Resolve(row, keys), 64)
	if err != nil {
		return 0
	}
	return v
}

// normalizeHeader lowercases the header and strips whitespace, dots,
// underscores and hyphens.
func normalizeHeader(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) || r == '.' || r == '_' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

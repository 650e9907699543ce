package model

import (
	"strings"
	"unicode"
)

// Days lists the canonical weekday names in academic-week order. The week
// has six days; Sunday is not representable.
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// DayAbbrev maps common timetable day codes to their weekday lists.
var DayAbbrev = map[string][]string{
	"M":   {"Monday"},
	"T":   {"Tuesday"},
	"W":   {"Wednesday"},
	"Th":  {"Thursday"},
	"F":   {"Friday"},
	"S":   {"Saturday"},
	"MW":  {"Monday", "Wednesday"},
	"MWF": {"Monday", "Wednesday", "Friday"},
	"TTh": {"Tuesday", "Thursday"},
	"TT":  {"Tuesday", "Thursday"},
	"MF":  {"Monday", "Friday"},
	"WF":  {"Wednesday", "Friday"},
	"MT":  {"Monday", "Tuesday"},
	"WTh": {"Wednesday", "Thursday"},
}

// ParseDays converts a free-form day string into weekday names, first-seen
// order, duplicates removed. Resolution order: exact abbreviation code,
// full weekday names anywhere in the string, then a greedy left-to-right
// scan of single-letter codes where "Th" consumes as Thursday.
func ParseDays(raw string) []string {
	if raw == "" {
		return nil
	}
	cleaned := stripSpace(raw)
	if days, ok := DayAbbrev[cleaned]; ok {
		out := make([]string, len(days))
		copy(out, days)
		return out
	}

	lower := strings.ToLower(raw)
	var full []string
	for _, d := range Days {
		if strings.Contains(lower, strings.ToLower(d)) {
			full = append(full, d)
		}
	}
	if len(full) > 0 {
		return full
	}

	var out []string
	seen := make(map[string]bool)
	for i := 0; i < len(cleaned); {
		var day string
		if strings.HasPrefix(cleaned[i:], "Th") {
			day = "Thursday"
			i += 2
		} else {
			switch cleaned[i] {
			case 'M':
				day = "Monday"
			case 'T':
				day = "Tuesday"
			case 'W':
				day = "Wednesday"
			case 'F':
				day = "Friday"
			case 'S':
				day = "Saturday"
			}
			i++
		}
		if day != "" && !seen[day] {
			seen[day] = true
			out = append(out, day)
		}
	}
	return out
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

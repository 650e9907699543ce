package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// clockPattern accepts a 1-2 digit hour, optional :MM and an optional
// AM/PM suffix, e.g. "9:00 AM", "14:30", "9".
var clockPattern = regexp.MustCompile(`(\d{1,2}):?(\d{2})?\s*(AM|PM)?`)

// TimeToMinutes converts a free-form time string to minutes since midnight.
// Unparseable input yields 0. The result is not clamped; malformed hours can
// land outside [0,1439] and callers compare such values as-is.
func TimeToMinutes(raw string) int {
	if raw == "" {
		return 0
	}
	m := clockPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(raw)))
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[1])
	minutes := 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}
	switch m[3] {
	case "PM":
		if hours < 12 {
			hours += 12
		}
	case "AM":
		if hours == 12 {
			hours = 0
		}
	}
	return hours*60 + minutes
}

// MinutesToTime renders minutes since midnight as 12-hour clock text for
// display. It is not an inverse of TimeToMinutes for malformed input.
func MinutesToTime(mins int) string {
	hours := mins / 60
	minutes := mins % 60
	h := hours % 12
	if h == 0 {
		h = 12
	}
	ampm := "AM"
	if hours >= 12 {
		ampm = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, minutes, ampm)
}

// TimesOverlap reports whether the half-open intervals [start1,end1) and
// [start2,end2) intersect. Back-to-back intervals do not overlap.
func TimesOverlap(start1, end1, start2, end2 string) bool {
	s1, e1 := TimeToMinutes(start1), TimeToMinutes(end1)
	s2, e2 := TimeToMinutes(start2), TimeToMinutes(end2)
	return s1 < e2 && s2 < e1
}

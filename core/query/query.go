// Package query filters a canonical course set for the API surface.
package query

import (
	"regexp"
	"strings"

	"github.com/coursegrid/coursegrid/core/model"
)

const (
	// minQueryLen gates free-text search: shorter queries return nothing
	// rather than everything.
	minQueryLen = 2
	// searchLimit caps search results in course-set order.
	searchLimit = 30
)

var tokenSplit = regexp.MustCompile(`[\s,]+`)

// ByBatch returns the courses offered to any of the given batch codes. A
// course matches when any of its major tokens contains, or is contained
// in, any user token (both upper-cased). The bidirectional containment is
// deliberately permissive so "CS" finds major "CSE" and major "CSE101"
// finds input "CSE"; short tokens can over-match and callers needing
// stricter semantics must pre-filter their input. Courses without a major
// are excluded.
func ByBatch(courses []model.Course, batches []string) []model.Course {
	wanted := splitTokens(strings.Join(batches, ","))
	if len(wanted) == 0 {
		return nil
	}
	var out []model.Course
	for _, c := range courses {
		if matchesBatch(c.Major, wanted) {
			out = append(out, c)
		}
	}
	return out
}

func matchesBatch(major string, wanted []string) bool {
	for _, m := range splitTokens(major) {
		for _, w := range wanted {
			if strings.Contains(m, w) || strings.Contains(w, m) {
				return true
			}
		}
	}
	return false
}

// splitTokens upper-cases and splits on whitespace and commas, dropping
// empty tokens. An empty token would be a substring of everything.
func splitTokens(s string) []string {
	var out []string
	for _, t := range tokenSplit.Split(strings.ToUpper(s), -1) {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Search matches the query case-insensitively against course code, name
// and faculty. Queries shorter than two characters after trimming return
// nothing; results are capped at the first searchLimit matches in input
// order, with no relevance ranking.
func Search(courses []model.Course, q string) []model.Course {
	q = strings.ToLower(strings.TrimSpace(q))
	if len(q) < minQueryLen {
		return nil
	}
	var out []model.Course
	for _, c := range courses {
		if strings.Contains(strings.ToLower(c.CourseCode), q) ||
			strings.Contains(strings.ToLower(c.CourseName), q) ||
			strings.Contains(strings.ToLower(c.Faculty), q) {
			out = append(out, c)
			if len(out) == searchLimit {
				break
			}
		}
	}
	return out
}

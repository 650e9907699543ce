// Package schedule decides whether courses collide on the weekly grid.
package schedule

import "github.com/coursegrid/coursegrid/core/model"

// HasTimeConflict reports whether two courses share a weekday and overlap
// in time. A course missing any of day, start or end never conflicts: no
// collision can be asserted without complete scheduling data. Interval
// comparison is half-open, so back-to-back classes do not conflict.
func HasTimeConflict(a, b model.Course) bool {
	if !a.HasSchedule() || !b.HasSchedule() {
		return false
	}
	daysB := model.ParseDays(b.Day)
	shared := false
	for _, d := range model.ParseDays(a.Day) {
		for _, e := range daysB {
			if d == e {
				shared = true
				break
			}
		}
		if shared {
			break
		}
	}
	if !shared {
		return false
	}
	return model.TimesOverlap(a.StartTime, a.EndTime, b.StartTime, b.EndTime)
}

// Conflicts returns every course across the supplied context sets that
// collides with the candidate, in context order. Courses sharing the
// candidate's code are skipped as self-matches.
func Conflicts(candidate model.Course, contexts ...[]model.Course) []model.Course {
	var out []model.Course
	for _, set := range contexts {
		for _, c := range set {
			if c.CourseCode == candidate.CourseCode {
				continue
			}
			if HasTimeConflict(candidate, c) {
				out = append(out, c)
			}
		}
	}
	return out
}

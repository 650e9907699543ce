// Package normalize turns raw sheet rows into canonical Course records.
// Every semantic field is located through a fixed, hand-curated synonym
// list; per-field misses default to zero values and never fail a row.
package normalize

import (
	"strings"

	"github.com/coursegrid/coursegrid/core/model"
	"github.com/coursegrid/coursegrid/core/resolve"
)

// Per-field header synonyms, ordered by priority. Curated from the
// spellings observed across source timetables.
var (
	codeKeys      = []string{"Course Code", "CourseCode", "Code", "coursenumber", "course_code"}
	nameKeys      = []string{"Course Name", "CourseName", "Name", "Title", "coursetitle"}
	sectionKeys   = []string{"Section", "Sec"}
	batchKeys     = []string{"Batch", "Major", "Batches", "Program", "Department", "Dept"}
	roomKeys      = []string{"Room", "Venue", "Location", "Classroom", "roomno"}
	dayKeys       = []string{"Day", "Days", "Weekday"}
	startKeys     = []string{"Start Time", "StartTime", "Start", "From"}
	endKeys       = []string{"End Time", "EndTime", "End", "To"}
	creditKeys    = []string{"Credits", "Credit", "Cr"}
	facultyKeys   = []string{"Faculty", "Instructor", "Teacher", "Professor", "facultyname"}
	typeKeys      = []string{"Type", "CourseType", "Category"}
	componentKeys = []string{"Component", "Comp", "ComponentType"}
	uweKeys       = []string{"Open as UWE", "OpenAsUWE", "UWE"}
	remarksKeys   = []string{"Remarks", "Remark", "Notes", "Comments"}
)

// Courses normalizes raw rows into Course records, preserving input order.
// Serial is the 1-based pre-filter row position, so serials keep gaps where
// rows were rejected: it records the original sheet position, not a dense
// index. A row is kept only when its synthesized course code is non-empty
// and not a lone "-".
func Courses(rows []resolve.Row) []model.Course {
	courses := make([]model.Course, 0, len(rows))
	for i, row := range rows {
		code := resolve.Resolve(row, codeKeys)
		section := resolve.Resolve(row, sectionKeys)
		component := resolve.Resolve(row, componentKeys)

		// Sections (LEC1, TUT1, ...) or a bare component distinguish
		// multiple offerings of one course code.
		fullCode := code
		if section != "" {
			fullCode = code + "-" + section
		} else if component != "" {
			fullCode = code + "-" + component
		}
		if fullCode == "" || fullCode == "-" {
			continue
		}

		courses = append(courses, model.Course{
			Serial:     i + 1,
			CourseCode: fullCode,
			CourseName: resolve.Resolve(row, nameKeys),
			Credits:    resolve.ResolveNumber(row, creditKeys),
			Faculty:    resolve.Resolve(row, facultyKeys),
			Slot:       section,
			Room:       resolve.Resolve(row, roomKeys),
			Major:      resolve.Resolve(row, batchKeys),
			Day:        resolve.Resolve(row, dayKeys),
			StartTime:  resolve.Resolve(row, startKeys),
			EndTime:    resolve.Resolve(row, endKeys),
			CourseType: resolve.Resolve(row, typeKeys),
			Component:  component,
			OpenAsUWE:  parseBool(resolve.Resolve(row, uweKeys)),
			Remarks:    resolve.Resolve(row, remarksKeys),
		})
	}
	return courses
}

func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "yes", "y", "true", "1":
		return true
	}
	return false
}

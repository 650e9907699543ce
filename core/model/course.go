package model

// Course is the canonical record produced from one timetable row. A course
// is identified by CourseCode within a single parse; Serial keeps the
// original sheet position and is reassigned on every re-parse.
type Course struct {
	Serial     int     `json:"sno"`
	CourseCode string  `json:"courseCode"`
	CourseName string  `json:"courseName"`
	Credits    float64 `json:"credits"`
	Faculty    string  `json:"faculty"`
	Slot       string  `json:"slot"`
	Room       string  `json:"room"`
	Major      string  `json:"major"` // batch codes, possibly comma or space separated
	Day        string  `json:"day,omitempty"`
	StartTime  string  `json:"startTime,omitempty"`
	EndTime    string  `json:"endTime,omitempty"`
	CourseType string  `json:"courseType,omitempty"` // Major, Elective, ...
	Component  string  `json:"component,omitempty"`  // LEC, TUT, PRAC, ...
	OpenAsUWE  bool    `json:"openAsUWE,omitempty"`
	Remarks    string  `json:"remarks,omitempty"`
}

// HasSchedule reports whether the course carries complete scheduling data.
// Conflict detection requires day, start and end to be present.
func (c Course) HasSchedule() bool {
	return c.Day != "" && c.StartTime != "" && c.EndTime != ""
}

// Package export writes canonical course sets for downstream tooling.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/coursegrid/coursegrid/core/model"
)

var csvHeader = []string{
	"sno", "course_code", "course_name", "credits", "faculty",
	"slot", "room", "major", "day", "start_time", "end_time",
}

// WriteJSON writes the course set to w in JSON format.
func WriteJSON(w io.Writer, courses []model.Course) error {
	enc := json.NewEncoder(w)
	return enc.Encode(courses)
}

// WriteCSV writes the course set to w as delimited text with a header
// line. Encoding is left to encoding/csv; only reading uses the in-house
// tokenizer.
func WriteCSV(w io.Writer, courses []model.Course) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, c := range courses {
		rec := []string{
			strconv.Itoa(c.Serial),
			c.CourseCode,
			c.CourseName,
			strconv.FormatFloat(c.Credits, 'f', -1, 64),
			c.Faculty,
			c.Slot,
			c.Room,
			c.Major,
			c.Day,
			c.StartTime,
			c.EndTime,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

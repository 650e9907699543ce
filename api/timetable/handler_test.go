package timetable

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/coursegrid/coursegrid/core/model"
	coretimetable "github.com/coursegrid/coursegrid/core/timetable"
)

func testStore() *coretimetable.Store {
	courses := []model.Course{
		{Serial: 1, CourseCode: "CS101-L", CourseName: "Algorithms", Major: "CS27", Day: "Monday", StartTime: "9:00 AM", EndTime: "10:00 AM"},
		{Serial: 2, CourseCode: "CS102-L", CourseName: "Databases", Major: "CS27", Day: "Monday", StartTime: "9:30 AM", EndTime: "10:30 AM"},
		{Serial: 3, CourseCode: "EE201-L", CourseName: "Circuits", Major: "EE26", Day: "Monday", StartTime: "9:00 AM", EndTime: "10:00 AM"},
		{Serial: 4, CourseCode: "MA101-L", CourseName: "Calculus", Major: "CS27", Day: "Tuesday", StartTime: "9:00 AM", EndTime: "10:00 AM"},
	}
	store := coretimetable.NewStore()
	store.Swap(coretimetable.NewSnapshot("timetable.csv", "delimited-text", len(courses), courses))
	return store
}

func get(t *testing.T, mux *http.ServeMux, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeCourses(t *testing.T, rec *httptest.ResponseRecorder) []model.Course {
	t.Helper()
	var out []model.Course
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out
}

func codes(courses []model.Course) []string {
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.CourseCode)
	}
	return out
}

func TestSnapshotHandler(t *testing.T) {
	mux := NewMux(testStore(), nil, nil)

	rec := get(t, mux, "/api/timetable")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	var snap coretimetable.Snapshot
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Source != "timetable.csv" || len(snap.Courses) != 4 {
		t.Errorf("snapshot = %s with %d courses", snap.Source, len(snap.Courses))
	}
}

func TestSnapshotHandler_MethodNotAllowed(t *testing.T) {
	mux := NewMux(testStore(), nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/timetable", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestSearchHandler(t *testing.T) {
	mux := NewMux(testStore(), nil, nil)

	rec := get(t, mux, "/api/timetable/search?q=circ")
	got := decodeCourses(t, rec)
	if len(got) != 1 || got[0].CourseCode != "EE201-L" {
		t.Fatalf("results = %v", codes(got))
	}
}

func TestSearchHandler_QueryTooShort(t *testing.T) {
	mux := NewMux(testStore(), nil, nil)

	rec := get(t, mux, "/api/timetable/search?q=a")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("body = %q, want empty array", body)
	}
}

func TestBatchHandler(t *testing.T) {
	mux := NewMux(testStore(), nil, nil)

	rec := get(t, mux, "/api/timetable/batch?codes=EE26")
	got := decodeCourses(t, rec)
	if len(got) != 1 || got[0].CourseCode != "EE201-L" {
		t.Fatalf("results = %v", codes(got))
	}
}

func TestConflictsHandler(t *testing.T) {
	mux := NewMux(testStore(), nil, nil)

	// Batch context conflicts come before selected ones.
	rec := get(t, mux, "/api/timetable/conflicts?code=CS101-L&batch=CS27&selected=EE201-L,MA101-L")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	got := codes(decodeCourses(t, rec))
	want := []string{"CS102-L", "EE201-L"}
	if len(got) != len(want) {
		t.Fatalf("conflicts = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("conflicts = %v, want %v", got, want)
		}
	}
}

func TestConflictsHandler_NoConflicts(t *testing.T) {
	mux := NewMux(testStore(), nil, nil)

	rec := get(t, mux, "/api/timetable/conflicts?code=MA101-L&batch=CS27")
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("body = %q, want empty array", body)
	}
}

func TestConflictsHandler_MissingCode(t *testing.T) {
	mux := NewMux(testStore(), nil, nil)
	if rec := get(t, mux, "/api/timetable/conflicts"); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

type stubHistory struct {
	records []coretimetable.ParseRecord
}

func (s stubHistory) Recent(limit int) ([]coretimetable.ParseRecord, error) {
	if limit > 0 && limit < len(s.records) {
		return s.records[:limit], nil
	}
	return s.records, nil
}

func TestHistoryHandler(t *testing.T) {
	hist := stubHistory{records: []coretimetable.ParseRecord{
		{SnapshotID: "b", Source: "timetable.csv"},
		{SnapshotID: "a", Source: "timetable.csv"},
	}}
	mux := NewMux(testStore(), nil, hist)

	rec := get(t, mux, "/api/timetable/history?limit=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got []coretimetable.ParseRecord
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].SnapshotID != "b" {
		t.Fatalf("records = %+v", got)
	}
}

func TestHistoryHandler_NotRegisteredWithoutReader(t *testing.T) {
	mux := NewMux(testStore(), nil, nil)
	if rec := get(t, mux, "/api/timetable/history"); rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestConflictsHandler_UnknownCode(t *testing.T) {
	mux := NewMux(testStore(), nil, nil)
	if rec := get(t, mux, "/api/timetable/conflicts?code=XX999"); rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

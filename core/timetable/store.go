// Package timetable holds the current canonical course set. A parse is
// wholesale: a new Snapshot replaces the previous one, there is no
// incremental update.
package timetable

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/coursegrid/coursegrid/core/model"
)

// Snapshot is one complete parse of a timetable source. ID changes on
// every re-parse so API consumers can detect that serials were reassigned.
type Snapshot struct {
	ID       uuid.UUID      `json:"id"`
	Source   string         `json:"source"`
	Format   string         `json:"format"`
	LoadedAt time.Time      `json:"loadedAt"`
	Rows     int            `json:"rows"`
	Skipped  int            `json:"skipped"`
	Courses  []model.Course `json:"courses"`
}

// NewSnapshot stamps a course set with a fresh identity.
func NewSnapshot(source, format string, rows int, courses []model.Course) Snapshot {
	return Snapshot{
		ID:       uuid.New(),
		Source:   source,
		Format:   format,
		LoadedAt: time.Now().UTC(),
		Rows:     rows,
		Skipped:  rows - len(courses),
		Courses:  courses,
	}
}

// Store guards the current snapshot. Reads vastly outnumber swaps.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
}

func NewStore() *Store { return &Store{} }

// Swap replaces the current snapshot wholesale.
func (s *Store) Swap(snap Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// Current returns the active snapshot.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Courses returns the canonical course set of the active snapshot.
func (s *Store) Courses() []model.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Courses
}

// Find returns the first course with the given code.
func (s *Store) Find(code string) (model.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.snap.Courses {
		if c.CourseCode == code {
			return c, true
		}
	}
	return model.Course{}, false
}

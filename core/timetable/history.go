package timetable

import "time"

// ParseRecord summarizes one completed parse for the history log.
type ParseRecord struct {
	SnapshotID string    `json:"snapshotId"`
	Source     string    `json:"source"`
	Format     string    `json:"format"`
	LoadedAt   time.Time `json:"loadedAt"`
	Rows       int       `json:"rows"`
	Courses    int       `json:"courses"`
	Skipped    int       `json:"skipped"`
}

// Record converts a snapshot into its history entry.
func (s Snapshot) Record() ParseRecord {
	return ParseRecord{
		SnapshotID: s.ID.String(),
		Source:     s.Source,
		Format:     s.Format,
		LoadedAt:   s.LoadedAt,
		Rows:       s.Rows,
		Courses:    len(s.Courses),
		Skipped:    s.Skipped,
	}
}

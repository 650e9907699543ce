// Package history persists parse summaries in a SQLite database so
// operators can see how the source evolved across reloads.
package history

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/coursegrid/coursegrid/core/timetable"
)

// SQLiteStore appends one row per parse. Snapshots themselves are not
// persisted, only their summary counts.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database and ensures schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	schema := `CREATE TABLE IF NOT EXISTS parse_history (
        snapshot_id TEXT PRIMARY KEY,
        source TEXT,
        format TEXT,
        loaded_at INTEGER,
        rows INTEGER,
        courses INTEGER,
        skipped INTEGER
    );`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Add inserts the record. Re-inserting the same snapshot is a no-op.
func (s *SQLiteStore) Add(r timetable.ParseRecord) error {
	_, err := s.db.Exec(`INSERT INTO parse_history
        (snapshot_id, source, format, loaded_at, rows, courses, skipped)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(snapshot_id) DO NOTHING`,
		r.SnapshotID, r.Source, r.Format, r.LoadedAt.Unix(), r.Rows, r.Courses, r.Skipped)
	return err
}

// Recent returns up to limit records, newest first.
func (s *SQLiteStore) Recent(limit int) ([]timetable.ParseRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`SELECT snapshot_id, source, format, loaded_at, rows, courses, skipped
        FROM parse_history ORDER BY loaded_at DESC, snapshot_id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []timetable.ParseRecord
	for rows.Next() {
		var r timetable.ParseRecord
		var ts int64
		if err := rows.Scan(&r.SnapshotID, &r.Source, &r.Format, &ts, &r.Rows, &r.Courses, &r.Skipped); err != nil {
			return nil, err
		}
		r.LoadedAt = time.Unix(ts, 0).UTC()
		res = append(res, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

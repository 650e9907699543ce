package source

import (
	"time"

	"github.com/coursegrid/coursegrid/core/logger"
	"github.com/coursegrid/coursegrid/core/metrics"
	"github.com/coursegrid/coursegrid/core/normalize"
	"github.com/coursegrid/coursegrid/core/timetable"
)

// Loader runs the full ingest pipeline: locate a file in the data
// directory, read its rows and normalize them into a snapshot. Per-row
// defects are absorbed by normalization; only whole-source failures
// (nothing to read) return an error.
type Loader struct {
	dir  string
	log  logger.Logger
	sink metrics.Sink
}

// NewLoader creates a Loader for the given data directory. A nil sink
// disables metrics.
func NewLoader(dir string, log logger.Logger, sink metrics.Sink) *Loader {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Loader{dir: dir, log: log, sink: sink}
}

// Load produces a fresh snapshot. Each call re-reads the source wholesale;
// serials are reassigned and the previous snapshot must be discarded.
func (l *Loader) Load() (timetable.Snapshot, error) {
	start := time.Now()
	path, format, err := Locate(l.dir)
	if err != nil {
		return timetable.Snapshot{}, err
	}
	rows, err := Load(path, format)
	if err != nil {
		return timetable.Snapshot{}, err
	}
	courses := normalize.Courses(rows)
	snap := timetable.NewSnapshot(path, format.String(), len(rows), courses)

	if err := l.sink.RecordParse(metrics.ParseEvent{
		Source:   path,
		Format:   format.String(),
		Rows:     len(rows),
		Courses:  len(courses),
		Skipped:  snap.Skipped,
		Duration: time.Since(start),
		Time:     snap.LoadedAt,
	}); err != nil {
		l.log.Warnf("record parse metrics: %v", err)
	}
	l.log.Infof("parsed %s: %d courses from %d rows (%d skipped)", path, len(courses), len(rows), snap.Skipped)
	return snap, nil
}

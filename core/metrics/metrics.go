package metrics

import "time"

// ParseEvent captures one full parse of a timetable source.
type ParseEvent struct {
	Source   string
	Format   string
	Rows     int
	Courses  int
	Skipped  int
	Duration time.Duration
	Time     time.Time
}

// QueryEvent records one query served by the API surface.
type QueryEvent struct {
	Kind    string // "search", "batch" or "conflicts"
	Results int
	Time    time.Time
}

// Sink records parse and query events for observability purposes.
type Sink interface {
	RecordParse(ev ParseEvent) error
	RecordQuery(ev QueryEvent) error
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordParse(ParseEvent) error { return nil }
func (NopSink) RecordQuery(QueryEvent) error { return nil }

package metrics

import coremetrics "github.com/coursegrid/coursegrid/core/metrics"

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordParse forwards the event to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordParse(ev coremetrics.ParseEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordParse(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordQuery forwards the event to all sinks.
func (m *MultiSink) RecordQuery(ev coremetrics.QueryEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordQuery(ev); err != nil {
			return err
		}
	}
	return nil
}

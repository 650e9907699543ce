package metrics

import (
	coremetrics "github.com/coursegrid/coursegrid/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records parse and query events in Prometheus metrics.
type PromSink struct {
	parses   *prometheus.CounterVec
	skipped  prometheus.Counter
	duration prometheus.Histogram
	courses  prometheus.Gauge
	queries  *prometheus.CounterVec
}

// NewPromSink registers timetable metrics on the default Prometheus
// registerer. The Prometheus server is started separately on
// cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	parses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_parses_total",
		Help: "Total number of timetable parses",
	}, []string{"format"})
	skipped := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timetable_rows_skipped_total",
		Help: "Rows rejected during normalization",
	})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetable_parse_duration_seconds",
		Help:    "Time spent locating, reading and normalizing a source",
		Buckets: prometheus.DefBuckets,
	})
	courses := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "timetable_courses_loaded",
		Help: "Courses in the current snapshot",
	})
	queries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_queries_total",
		Help: "Queries served, by kind",
	}, []string{"kind"})

	if err := reg.Register(parses); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			parses = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(skipped); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			skipped = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(courses); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			courses = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(queries); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			queries = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{parses: parses, skipped: skipped, duration: duration, courses: courses, queries: queries}, nil
}

// RecordParse counts the parse and updates the course gauge.
func (s *PromSink) RecordParse(ev coremetrics.ParseEvent) error {
	s.parses.WithLabelValues(ev.Format).Inc()
	s.skipped.Add(float64(ev.Skipped))
	s.duration.Observe(ev.Duration.Seconds())
	s.courses.Set(float64(ev.Courses))
	return nil
}

// RecordQuery counts one served query.
func (s *PromSink) RecordQuery(ev coremetrics.QueryEvent) error {
	s.queries.WithLabelValues(ev.Kind).Inc()
	return nil
}

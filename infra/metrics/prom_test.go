package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/coursegrid/coursegrid/core/metrics"
)

func TestPromSink_RecordParse(t *testing.T) {
	reg := prometheus.NewRegistry()
	sinkIf, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	sink, ok := sinkIf.(*PromSink)
	if !ok {
		t.Fatalf("expected PromSink")
	}
	ev := coremetrics.ParseEvent{
		Source:   "data/timetable.xlsx",
		Format:   "spreadsheet",
		Rows:     120,
		Courses:  115,
		Skipped:  5,
		Duration: 30 * time.Millisecond,
	}
	if err := sink.RecordParse(ev); err != nil {
		t.Fatalf("record error: %v", err)
	}

	expected := `
# HELP timetable_parses_total Total number of timetable parses
# TYPE timetable_parses_total counter
timetable_parses_total{format="spreadsheet"} 1
`
	if err := testutil.CollectAndCompare(sink.parses, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
	if v := testutil.ToFloat64(sink.courses); v != 115 {
		t.Errorf("courses gauge = %v, want 115", v)
	}
	if v := testutil.ToFloat64(sink.skipped); v != 5 {
		t.Errorf("skipped counter = %v, want 5", v)
	}
}

func TestPromSink_RecordQuery(t *testing.T) {
	reg := prometheus.NewRegistry()
	sinkIf, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	sink := sinkIf.(*PromSink)
	if err := sink.RecordQuery(coremetrics.QueryEvent{Kind: "search", Results: 3}); err != nil {
		t.Fatalf("record error: %v", err)
	}
	if c := testutil.CollectAndCount(sink.queries); c == 0 {
		t.Errorf("query not recorded")
	}
}

func TestPromSink_DoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg); err != nil {
		t.Fatalf("first register: %v", err)
	}
	// Registering twice must reuse the existing collectors.
	if _, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg); err != nil {
		t.Fatalf("second register: %v", err)
	}
}

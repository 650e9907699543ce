// Package timetable exposes the course snapshot and its queries over HTTP.
// Handlers are a thin shell: they parse query parameters, call the pure
// core functions and encode the result.
package timetable

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/coursegrid/coursegrid/core/metrics"
	"github.com/coursegrid/coursegrid/core/model"
	"github.com/coursegrid/coursegrid/core/query"
	"github.com/coursegrid/coursegrid/core/schedule"
	coretimetable "github.com/coursegrid/coursegrid/core/timetable"
)

// NewSnapshotHandler exposes the current snapshot via GET /api/timetable.
func NewSnapshotHandler(store *coretimetable.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, store.Current())
	})
}

// NewSearchHandler exposes free-text search via GET /api/timetable/search?q=.
// Queries shorter than two characters return an empty list.
func NewSearchHandler(store *coretimetable.Store, sink metrics.Sink) http.Handler {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		res := query.Search(store.Courses(), r.URL.Query().Get("q"))
		_ = sink.RecordQuery(metrics.QueryEvent{Kind: "search", Results: len(res), Time: time.Now()})
		writeCourses(w, res)
	})
}

// NewBatchHandler exposes batch membership via GET
// /api/timetable/batch?codes=CS27,EE26.
func NewBatchHandler(store *coretimetable.Store, sink metrics.Sink) http.Handler {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		codes := splitParam(r.URL.Query().Get("codes"))
		res := query.ByBatch(store.Courses(), codes)
		_ = sink.RecordQuery(metrics.QueryEvent{Kind: "batch", Results: len(res), Time: time.Now()})
		writeCourses(w, res)
	})
}

// NewConflictsHandler computes the conflict set for one course via GET
// /api/timetable/conflicts?code=X&batch=CS27&selected=A,B. The batch
// context is evaluated before the selected context, so conflicts from
// batch-allocated courses come first.
func NewConflictsHandler(store *coretimetable.Store, sink metrics.Sink) http.Handler {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "code parameter is required", http.StatusBadRequest)
			return
		}
		candidate, ok := store.Find(code)
		if !ok {
			http.Error(w, "unknown course code", http.StatusNotFound)
			return
		}

		courses := store.Courses()
		var batchCtx []model.Course
		if batches := splitParam(r.URL.Query().Get("batch")); len(batches) > 0 {
			batchCtx = query.ByBatch(courses, batches)
		}
		var selectedCtx []model.Course
		for _, sel := range splitParam(r.URL.Query().Get("selected")) {
			if c, ok := store.Find(sel); ok {
				selectedCtx = append(selectedCtx, c)
			}
		}

		res := schedule.Conflicts(candidate, batchCtx, selectedCtx)
		_ = sink.RecordQuery(metrics.QueryEvent{Kind: "conflicts", Results: len(res), Time: time.Now()})
		writeCourses(w, res)
	})
}

// HistoryReader lists past parses, newest first.
type HistoryReader interface {
	Recent(limit int) ([]coretimetable.ParseRecord, error)
}

// NewHistoryHandler exposes the parse log via GET
// /api/timetable/history?limit=20.
func NewHistoryHandler(hist HistoryReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		records, err := hist.Recent(limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if records == nil {
			records = []coretimetable.ParseRecord{}
		}
		writeJSON(w, records)
	})
}

// NewMux wires all timetable routes onto one ServeMux. The history route
// is registered only when a reader is configured.
func NewMux(store *coretimetable.Store, sink metrics.Sink, hist HistoryReader) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/timetable", NewSnapshotHandler(store))
	mux.Handle("/api/timetable/search", NewSearchHandler(store, sink))
	mux.Handle("/api/timetable/batch", NewBatchHandler(store, sink))
	mux.Handle("/api/timetable/conflicts", NewConflictsHandler(store, sink))
	if hist != nil {
		mux.Handle("/api/timetable/history", NewHistoryHandler(hist))
	}
	return mux
}

func splitParam(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// writeCourses always encodes a JSON array, never null.
func writeCourses(w http.ResponseWriter, courses []model.Course) {
	if courses == nil {
		courses = []model.Course{}
	}
	writeJSON(w, courses)
}

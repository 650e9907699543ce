package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	apitimetable "github.com/coursegrid/coursegrid/api/timetable"
	"github.com/coursegrid/coursegrid/config"
	coremetrics "github.com/coursegrid/coursegrid/core/metrics"
	coremon "github.com/coursegrid/coursegrid/core/monitoring"
	"github.com/coursegrid/coursegrid/core/timetable"
	"github.com/coursegrid/coursegrid/infra/history"
	"github.com/coursegrid/coursegrid/infra/logger"
	"github.com/coursegrid/coursegrid/infra/metrics"
	"github.com/coursegrid/coursegrid/infra/monitoring"
	"github.com/coursegrid/coursegrid/infra/source"
	"github.com/coursegrid/coursegrid/internal/eventbus"
)

// Service wires the loader, store, watcher and HTTP API together.
type Service struct {
	cfg     *config.Config
	store   *timetable.Store
	loader  *source.Loader
	bus     *eventbus.Bus[source.ReloadEvent]
	sink    coremetrics.Sink
	monitor coremon.Monitor
	history *history.SQLiteStore
	log     logger.Logger
}

// New creates a Service from the configuration and performs the initial
// parse. A missing or unreadable source fails construction: starting with
// zero data would be indistinguishable from an empty timetable.
func New(cfg *config.Config) (*Service, error) {
	logger.SetGlobalLevel(cfg.Logging.Level)
	logg := logger.New("service")

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	monitor, err := monitoring.NewSentryMonitor(cfg.Sentry)
	if err != nil {
		return nil, fmt.Errorf("sentry: %w", err)
	}

	var hist *history.SQLiteStore
	if cfg.Data.HistoryPath != "" {
		hist, err = history.NewSQLiteStore(cfg.Data.HistoryPath)
		if err != nil {
			return nil, fmt.Errorf("history store: %w", err)
		}
	}

	loader := source.NewLoader(cfg.Data.Dir, logg, sink)
	snap, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("initial parse: %w", err)
	}
	store := timetable.NewStore()
	store.Swap(snap)

	svc := &Service{
		cfg:     cfg,
		store:   store,
		loader:  loader,
		bus:     eventbus.New[source.ReloadEvent](),
		sink:    sink,
		monitor: monitor,
		history: hist,
		log:     logg,
	}
	svc.recordHistory(snap)
	return svc, nil
}

// Store exposes the snapshot store, mainly for tests.
func (s *Service) Store() *timetable.Store { return s.store }

// Run starts the watcher, the API server and the metrics server, blocking
// until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Data.Watch {
		watcher := source.NewWatcher(s.cfg.Data.Dir, s.bus, s.log,
			time.Duration(s.cfg.Data.DebounceMS)*time.Millisecond)
		go func() {
			if err := watcher.Run(ctx); err != nil {
				s.log.Errorf("watcher: %v", err)
				s.monitor.CaptureException(err, map[string]string{"component": "watcher"})
			}
		}()
		events := s.bus.Subscribe()
		go s.reloadLoop(ctx, events)
	}

	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	var hist apitimetable.HistoryReader
	if s.history != nil {
		hist = s.history
	}
	srv := &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: apitimetable.NewMux(s.store, s.sink, hist),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("api server shutdown: %v", err)
		}
	}()
	s.log.Infof("serving timetable API on %s", s.cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// reloadLoop swaps in a fresh snapshot for every reload event. A failed
// re-parse keeps the previous snapshot: stale data beats no data.
func (s *Service) reloadLoop(ctx context.Context, events <-chan source.ReloadEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			snap, err := s.loader.Load()
			if err != nil {
				s.log.Errorf("re-parse after %s: %v", ev.Path, err)
				s.monitor.CaptureException(err, map[string]string{"component": "reload", "path": ev.Path})
				continue
			}
			s.store.Swap(snap)
			s.recordHistory(snap)
		}
	}
}

// recordHistory appends the parse summary when the log is enabled.
func (s *Service) recordHistory(snap timetable.Snapshot) {
	if s.history == nil {
		return
	}
	if err := s.history.Add(snap.Record()); err != nil {
		s.log.Warnf("history: %v", err)
	}
}

// Close releases the event bus and flushes pending error reports.
func (s *Service) Close() error {
	s.bus.Close()
	s.monitor.Flush(2 * time.Second)
	if s.history != nil {
		return s.history.Close()
	}
	return nil
}

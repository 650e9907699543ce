package source

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/coursegrid/coursegrid/core/logger"
	"github.com/coursegrid/coursegrid/internal/eventbus"
)

// ReloadEvent signals that the data directory changed and the timetable
// should be re-parsed.
type ReloadEvent struct {
	Path string
	Time time.Time
}

// Watcher monitors the data directory and publishes a debounced
// ReloadEvent on the bus when timetable files change. Editors and download
// managers write files in bursts; debouncing collapses each burst into one
// reload.
type Watcher struct {
	dir      string
	bus      *eventbus.Bus[ReloadEvent]
	log      logger.Logger
	debounce time.Duration
}

// NewWatcher creates a Watcher for dir. A non-positive debounce defaults
// to 500ms.
func NewWatcher(dir string, bus *eventbus.Bus[ReloadEvent], log logger.Logger, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	return &Watcher{dir: dir, bus: bus, log: log, debounce: debounce}
}

// Run blocks until the context is cancelled, publishing reload events as
// files change.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()
	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	var pending string

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			pending = ev.Name
			timer.Reset(w.debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Errorf("watcher: %v", err)
		case <-timer.C:
			w.log.Infof("data change detected: %s", pending)
			w.bus.Publish(ReloadEvent{Path: pending, Time: time.Now()})
		}
	}
}

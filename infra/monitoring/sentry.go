// Package monitoring provides the Sentry-backed error tracker.
package monitoring

import (
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/coursegrid/coursegrid/config"
	coremon "github.com/coursegrid/coursegrid/core/monitoring"
)

// NewSentryMonitor initializes Sentry from the configuration. An empty
// DSN yields a NopMonitor so callers never branch on whether tracking
// is enabled.
func NewSentryMonitor(cfg config.SentryConf) (coremon.Monitor, error) {
	if cfg.DSN == "" {
		return coremon.NopMonitor{}, nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
	})
	if err != nil {
		return nil, err
	}
	return &sentryMonitor{}, nil
}

type sentryMonitor struct{}

func (s *sentryMonitor) CaptureException(err error, tags map[string]string) {
	if err == nil {
		return
	}
	if len(tags) == 0 {
		sentry.CaptureException(err)
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}

func (s *sentryMonitor) Flush(timeout time.Duration) { sentry.Flush(timeout) }

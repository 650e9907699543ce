// Package monitoring reports failures to an external error tracker.
package monitoring

import "time"

// Monitor receives errors that operators should see, such as a source
// file that stopped parsing after a reload.
type Monitor interface {
	CaptureException(err error, tags map[string]string)
	Flush(timeout time.Duration)
}

// NopMonitor discards every event.
type NopMonitor struct{}

func (NopMonitor) CaptureException(error, map[string]string) {}
func (NopMonitor) Flush(time.Duration)                       {}

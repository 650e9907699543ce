package config

import "fmt"

// DataConfig selects the timetable source directory and reload behavior.
type DataConfig struct {
	// Dir is scanned for the timetable file; workbooks win over CSV.
	Dir string `json:"dir"`
	// Watch re-parses the timetable when files in Dir change.
	Watch bool `json:"watch"`
	// DebounceMS collapses bursts of file events into one reload.
	DebounceMS int `json:"debounce_ms"`
	// HistoryPath enables the SQLite parse log when set.
	HistoryPath string `json:"history_path"`
}

// SetDefaults applies sane defaults.
func (c *DataConfig) SetDefaults() {
	if c.Dir == "" {
		c.Dir = "data"
	}
	if c.DebounceMS == 0 {
		c.DebounceMS = 500
	}
}

// Validate checks mandatory fields.
func (c DataConfig) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("data dir is required")
	}
	if c.DebounceMS < 0 {
		return fmt.Errorf("debounce_ms must not be negative")
	}
	return nil
}

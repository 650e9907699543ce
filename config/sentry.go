package config

// SentryConf defines settings for Sentry error monitoring. An empty DSN
// disables reporting.
type SentryConf struct {
	DSN         string `json:"dsn"`
	Environment string `json:"environment"`
	Release     string `json:"release"`
}

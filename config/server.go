package config

// ServerConfig holds the API listener settings.
type ServerConfig struct {
	// Addr is the listen address of the JSON API.
	Addr string `json:"addr"`
}

// SetDefaults applies sane defaults.
func (c *ServerConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
}

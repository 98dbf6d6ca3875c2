package config

// ServerConfig controls the HTTP API server.
type ServerConfig struct {
	// ListenAddr is the host:port the API server binds to.
	ListenAddr string `yaml:"listen_addr"`

	// AllowedWSOrigins lists additional origin patterns accepted for
	// WebSocket upgrades beyond same-host.
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		ListenAddr: ":8000",
	}
}

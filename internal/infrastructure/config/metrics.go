package config

// MetricsConfig controls the Prometheus endpoint "rover play" serves
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// host:port to listen on; keep it on localhost unless scraped remotely
	Listen string `mapstructure:"listen" validate:"required_if=Enabled true,omitempty,hostname_port"`

	Path string `mapstructure:"path" validate:"omitempty,startswith=/"`
}

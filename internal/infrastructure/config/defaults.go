package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Type == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = "spacerover.db"
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = 4
	}
	if cfg.Database.ConnLifetime == 0 {
		cfg.Database.ConnLifetime = 5 * time.Minute
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	// Metrics defaults
	if cfg.Metrics.Listen == "" {
		cfg.Metrics.Listen = "localhost:9090"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	// Game defaults
	if cfg.Game.BoardWidth == 0 {
		cfg.Game.BoardWidth = 100
	}
	if cfg.Game.BoardHeight == 0 {
		cfg.Game.BoardHeight = 100
	}
	if cfg.Game.FuelCapacity == 0 {
		cfg.Game.FuelCapacity = 20
	}
	if cfg.Game.Burn == 0 {
		cfg.Game.Burn = 1
	}
	if cfg.Game.PlacementRetries == 0 {
		cfg.Game.PlacementRetries = 1000
	}
	if cfg.Game.TickRate == 0 {
		cfg.Game.TickRate = 30
	}
	if cfg.Game.Scenario == "" {
		cfg.Game.Scenario = "classic"
	}
}

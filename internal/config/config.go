package config

import "github.com/kelseyhightower/envconfig"

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port                   int    `envconfig:"PORT" default:"8080"`
	LogLevel               string `envconfig:"LOG_LEVEL" default:"info"`
	Version                string `envconfig:"VERSION" default:"dev"`
	MaxSessions            int    `envconfig:"MAX_SESSIONS" default:"100"`
	SessionTTLMinutes      int    `envconfig:"SESSION_TTL_MINUTES" default:"1440"`
	JanitorIntervalMinutes int    `envconfig:"JANITOR_INTERVAL_MINUTES" default:"10"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

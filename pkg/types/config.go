package types

import "time"

// StoreConfig holds settings for the SQLite persistence layer.
type StoreConfig struct {
	// Path is the SQLite database file (default "data/curriculum.db").
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// ServerConfig holds settings for the HTTP transport.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// MaxUploadBytes caps the size of an uploaded document (default 32 MiB).
	MaxUploadBytes int64 `json:"max_upload_bytes" yaml:"max_upload_bytes" mapstructure:"max_upload_bytes"`

	// ReadTimeout bounds reading a full request including the upload body.
	ReadTimeout time.Duration `json:"read_timeout" yaml:"read_timeout" mapstructure:"read_timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// LogConfig selects the slog level ("debug", "info", "warn", "error").
type LogConfig struct {
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}

// Config groups all settings for the curriculum-graph binary.
type Config struct {
	Store  StoreConfig  `json:"store" yaml:"store" mapstructure:"store"`
	Server ServerConfig `json:"server" yaml:"server" mapstructure:"server"`
	Log    LogConfig    `json:"log" yaml:"log" mapstructure:"log"`

	// Lexicon is an optional YAML file overriding the built-in keyword tables.
	Lexicon string `json:"lexicon" yaml:"lexicon" mapstructure:"lexicon"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{Path: "data/curriculum.db"},
		Server: ServerConfig{
			Addr:            ":8080",
			MaxUploadBytes:  32 << 20,
			ReadTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{Level: "info"},
	}
}

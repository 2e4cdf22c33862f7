package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	AllowedOrigins    []string      `mapstructure:"allowed_origins" yaml:"allowed_origins"`
	ClientBuffer      int           `mapstructure:"client_buffer" yaml:"client_buffer"`

	// RoomSweepInterval enables periodic eviction of long-empty rooms.
	// Zero disables the sweep; rooms then live for the process lifetime.
	RoomSweepInterval time.Duration `mapstructure:"room_sweep_interval" yaml:"room_sweep_interval"`
	RoomEmptyGrace    time.Duration `mapstructure:"room_empty_grace" yaml:"room_empty_grace"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":8080",
		LogLevel:          "info",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		AllowedOrigins:    []string{"*"},
		ClientBuffer:      16,
		RoomSweepInterval: 0,
		RoomEmptyGrace:    10 * time.Minute,
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
func (c *Config) UpdateFrom(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.ReadHeaderTimeout != 0 {
		c.ReadHeaderTimeout = other.ReadHeaderTimeout
	}
	if other.ShutdownTimeout != 0 {
		c.ShutdownTimeout = other.ShutdownTimeout
	}
	if len(other.AllowedOrigins) != 0 {
		c.AllowedOrigins = other.AllowedOrigins
	}
	if other.ClientBuffer != 0 {
		c.ClientBuffer = other.ClientBuffer
	}
	if other.RoomSweepInterval != 0 {
		c.RoomSweepInterval = other.RoomSweepInterval
	}
	if other.RoomEmptyGrace != 0 {
		c.RoomEmptyGrace = other.RoomEmptyGrace
	}
}

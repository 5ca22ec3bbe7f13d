// Package config loads and validates application configuration from
// environment variables and an optional config file.
package config

// Config holds all application configuration, grouped by concern.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// ServerConfig contains server-related settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains database-related settings. An empty URL
// selects the in-memory backends.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,uri"`
}

// AuthConfig contains authentication settings.
//
// PasswordHashing selects how credentials are stored and compared:
// "plaintext" reproduces the behavior of the system this service
// replaces, "bcrypt" hashes new credentials. Existing rows are not
// rehashed when switching.
type AuthConfig struct {
	PasswordHashing string `mapstructure:"password_hashing" validate:"required,oneof=plaintext bcrypt"`
}

// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App          AppConfig         `mapstructure:"app"`
	Server       ServerConfig      `mapstructure:"server"`
	Storage      StorageConfig     `mapstructure:"storage"`
	Integrations IntegrationConfig `mapstructure:"integrations"`
	Logging      LoggingConfig     `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type StorageConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
	// MessagesKey is the storage key holding the JSON-encoded outbound
	// message log, newest first.
	MessagesKey string `mapstructure:"messages_key"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// IntegrationConfig holds settings for the optional external services. Each
// integration degrades to disabled when its credential is absent; a missing
// key never fails startup.
type IntegrationConfig struct {
	AWS struct {
		Region string `mapstructure:"region"`
		SES    struct {
			Enabled   bool   `mapstructure:"enabled"`
			FromEmail string `mapstructure:"from_email"`
			FromName  string `mapstructure:"from_name"`
		} `mapstructure:"ses"`
	} `mapstructure:"aws"`

	Maps struct {
		APIKey string `mapstructure:"api_key"`
	} `mapstructure:"maps"`

	GenAI struct {
		BaseURL string `mapstructure:"base_url"`
		APIKey  string `mapstructure:"api_key"`
		Model   string `mapstructure:"model"`
		Timeout int    `mapstructure:"timeout"` // milliseconds
	} `mapstructure:"genai"`
}

// EmailConfigured reports whether the email relay can attempt real sends.
func (i IntegrationConfig) EmailConfigured() bool {
	return i.AWS.SES.Enabled && i.AWS.SES.FromEmail != "" && i.AWS.Region != ""
}

// MapsConfigured reports whether the maps integration has a credential.
func (i IntegrationConfig) MapsConfigured() bool {
	return i.Maps.APIKey != ""
}

// AIConfigured reports whether the health assistant has a credential.
func (i IntegrationConfig) AIConfigured() bool {
	return i.GenAI.APIKey != ""
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

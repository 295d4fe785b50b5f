package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ukaji3/rota-go/pkg/rota"
)

// Config holds application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	HTTP    HTTPConfig    `mapstructure:"http" yaml:"http"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Rota    rota.Config   `mapstructure:"rota" yaml:"rota"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", c.Server.Port)
	}
	if c.HTTP.BodyLimit <= 0 {
		return errors.New("http.body_limit must be positive")
	}
	if c.HTTP.FormField == "" {
		return errors.New("http.form_field is required")
	}
	return c.Rota.Validate()
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host" yaml:"host"`
	Port            int           `mapstructure:"port" yaml:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"`
	// BodyLimit caps uploaded workbook size in bytes.
	BodyLimit int `mapstructure:"body_limit" yaml:"body_limit"`
	// FormField is the multipart field carrying the workbook.
	FormField string `mapstructure:"form_field" yaml:"form_field"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

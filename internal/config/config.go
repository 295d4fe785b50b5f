// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ukaji3/rota-go/pkg/rota"
)

const (
	envFile   = ".env"
	envPrefix = "ROTA"
)

// NewConfig loads configuration from the environment and, when path is not
// empty, from a YAML/TOML/JSON file. Environment variables take precedence
// over the file, which takes precedence over built-in defaults. Variables
// are prefixed with ROTA_ and use "_" for nesting, e.g. ROTA_SERVER_PORT or
// ROTA_ROTA_SHEET_NAME.
func NewConfig(path string) (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 30*time.Second)
	v.SetDefault("http.body_limit", 10*1024*1024)
	v.SetDefault("http.form_field", "file")

	d := rota.DefaultConfig()
	v.SetDefault("rota.sheet_name", d.SheetName)
	v.SetDefault("rota.weekdays", d.Weekdays)
	v.SetDefault("rota.unavailable_tokens", d.UnavailableTokens)
	v.SetDefault("rota.layout.team_column", d.Layout.TeamColumn)
	v.SetDefault("rota.layout.name_column", d.Layout.NameColumn)
	v.SetDefault("rota.layout.day_columns", d.Layout.DayColumns)
	v.SetDefault("rota.names.banned", d.Names.Banned)
	v.SetDefault("rota.names.junior_marker", d.Names.JuniorMarker)
	v.SetDefault("rota.rules.locum_threshold", d.Rules.LocumThreshold)
	v.SetDefault("rota.rules.locum_marker", d.Rules.LocumMarker)

	teams := make([]map[string]any, 0, len(d.Rules.Teams))
	for _, t := range d.Rules.Teams {
		teams = append(teams, map[string]any{"name": t.Name, "minimum": t.Minimum})
	}
	v.SetDefault("rota.rules.teams", teams)

	overrides := make([]map[string]any, 0, len(d.Rules.Overrides))
	for _, o := range d.Rules.Overrides {
		overrides = append(overrides, map[string]any{"name": o.Name, "team": o.Team})
	}
	v.SetDefault("rota.rules.overrides", overrides)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"http.request_timeout",
		"http.body_limit",
		"http.form_field",
		"rota.sheet_name",
		"rota.weekdays",
		"rota.unavailable_tokens",
		"rota.layout.team_column",
		"rota.layout.name_column",
		"rota.layout.day_columns",
		"rota.names.banned",
		"rota.names.junior_marker",
		"rota.rules.locum_threshold",
		"rota.rules.locum_marker",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}

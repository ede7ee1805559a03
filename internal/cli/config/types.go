// Package config provides configuration management for the analystdemo CLI.
//
// Values are layered, lowest to highest precedence: built-in defaults, the
// YAML config file, environment variables, then explicitly set flags.
package config

import (
	"time"

	"github.com/leapstack-labs/analystdemo/internal/ui"
)

// Default configuration values.
const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 7860
	DefaultExportFormat    = "html"
	DefaultShutdownTimeout = 5 * time.Second

	DefaultSessionSecret = ui.DefaultSessionSecret

	EnvPrefix = "ANALYSTDEMO_"
)

// ServerConfig holds configuration for the web runtime.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	NoBrowser       bool          `koanf:"no_browser"`
	Watch           bool          `koanf:"watch"`
	Dev             bool          `koanf:"dev"`
	StaticDir       string        `koanf:"static_dir"`
	SessionSecret   string        `koanf:"session_secret"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// ExportConfig holds defaults for the export command.
type ExportConfig struct {
	Format string `koanf:"format"`
	Out    string `koanf:"out"`
}

// Config holds all CLI configuration options.
type Config struct {
	Verbose bool         `koanf:"verbose"`
	NoColor bool         `koanf:"no_color"`
	Server  ServerConfig `koanf:"server"`
	Export  ExportConfig `koanf:"export"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			SessionSecret:   DefaultSessionSecret,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Export: ExportConfig{
			Format: DefaultExportFormat,
		},
	}
}

func defaultsMap() map[string]any {
	d := Default()
	return map[string]any{
		"verbose":                 d.Verbose,
		"no_color":                d.NoColor,
		"server.host":             d.Server.Host,
		"server.port":             d.Server.Port,
		"server.no_browser":       d.Server.NoBrowser,
		"server.watch":            d.Server.Watch,
		"server.dev":              d.Server.Dev,
		"server.static_dir":       d.Server.StaticDir,
		"server.session_secret":   d.Server.SessionSecret,
		"server.shutdown_timeout": d.Server.ShutdownTimeout.String(),
		"export.format":           d.Export.Format,
		"export.out":              d.Export.Out,
	}
}

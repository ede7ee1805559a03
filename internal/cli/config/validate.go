package config

import (
	"fmt"

	"github.com/leapstack-labs/analystdemo/internal/export"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	// 0 asks the OS for a free port.
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout must not be negative, got %s", c.Server.ShutdownTimeout)
	}
	if c.Server.SessionSecret == "" {
		return fmt.Errorf("server.session_secret must not be empty")
	}
	if c.Export.Format != "" {
		if _, err := export.ParseFormat(c.Export.Format); err != nil {
			return fmt.Errorf("export.format: %w", err)
		}
	}
	return nil
}

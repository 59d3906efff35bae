package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}

	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= database.min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}

	if c.Reports.ActivityWindow <= 0 {
		return fmt.Errorf("reports.activity_window must be > 0 (got %v)", c.Reports.ActivityWindow)
	}
	if c.Reports.ActivityMaxItems <= 0 {
		return fmt.Errorf("reports.activity_max_items must be > 0 (got %d)", c.Reports.ActivityMaxItems)
	}

	return nil
}

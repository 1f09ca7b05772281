package config

import (
	"fmt"
	"slices"
	"strings"
)

var validLogLevels = []string{"debug", "info", "warn", "warning", "error"}

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Issues.validate(); err != nil {
		return fmt.Errorf("issues: %w", err)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if c.RateLimit.ImportPerMinute < 0 {
		return fmt.Errorf("rate_limit.import_per_minute must be >= 0 (got %d)", c.RateLimit.ImportPerMinute)
	}

	return nil
}

func (i *IssuesConfig) validate() error {
	if i.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", i.DefaultPageSize)
	}
	if i.MaxPageSize < i.DefaultPageSize {
		return fmt.Errorf("max_page_size (%d) must be >= default_page_size (%d)", i.MaxPageSize, i.DefaultPageSize)
	}
	if i.MaxBulkIDs <= 0 {
		return fmt.Errorf("max_bulk_ids must be > 0 (got %d)", i.MaxBulkIDs)
	}
	if i.MaxImportBytes <= 0 {
		return fmt.Errorf("max_import_bytes must be > 0 (got %d)", i.MaxImportBytes)
	}
	if i.MaxImportRows <= 0 {
		return fmt.Errorf("max_import_rows must be > 0 (got %d)", i.MaxImportRows)
	}
	if i.DefaultReportLimit <= 0 {
		return fmt.Errorf("default_report_limit must be > 0 (got %d)", i.DefaultReportLimit)
	}
	return nil
}

func (l *LogConfig) validate() error {
	level := strings.ToLower(strings.TrimSpace(l.Level))
	if !slices.Contains(validLogLevels, level) {
		return fmt.Errorf("unknown level %q", l.Level)
	}

	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("unknown format %q (want json or text)", l.Format)
	}
	return nil
}

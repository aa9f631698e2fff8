// AI Solutions Dashboard - Web Access Log Analytics and Sales Insights
// Copyright 2026 THB213
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/THB213/AI-Solutions-Dashboard

package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for internally inconsistent or
// unusable values. It is called by Load after all layers are merged.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "disabled":
	default:
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}

	if c.Ingest.MaxUploadBytes <= 0 {
		return fmt.Errorf("ingest.max_upload_bytes must be positive, got %d", c.Ingest.MaxUploadBytes)
	}
	if c.Ingest.MaxLineBytes <= 0 {
		return fmt.Errorf("ingest.max_line_bytes must be positive, got %d", c.Ingest.MaxLineBytes)
	}
	if len(c.Ingest.AllowedExtensions) == 0 {
		return fmt.Errorf("ingest.allowed_extensions must not be empty")
	}

	if t := c.Analytics.Targets.BounceRate; t < 0 || t > 100 {
		return fmt.Errorf("analytics.targets.bounce_rate must be within [0,100], got %g", t)
	}
	if t := c.Analytics.Targets.VirtualAssistantShare; t < 0 || t > 100 {
		return fmt.Errorf("analytics.targets.virtual_assistant_share must be within [0,100], got %g", t)
	}

	if len(c.Catalog) == 0 {
		return fmt.Errorf("catalog must list at least one product")
	}
	slugs := make(map[string]struct{}, len(c.Catalog))
	for _, p := range c.Catalog {
		if p.Slug == "" {
			return fmt.Errorf("catalog entries must have a slug")
		}
		if _, dup := slugs[p.Slug]; dup {
			return fmt.Errorf("catalog slug %q is duplicated", p.Slug)
		}
		slugs[p.Slug] = struct{}{}
		if p.Price < 0 || p.Cost < 0 {
			return fmt.Errorf("catalog product %q has negative price or cost", p.Slug)
		}
	}

	for _, r := range c.Geo {
		if r.Prefix == "" || r.Country == "" {
			return fmt.Errorf("geo rules must have both prefix and country")
		}
	}

	codes := make(map[string]struct{}, len(c.Employees))
	for _, e := range c.Employees {
		if e.Code == "" {
			return fmt.Errorf("employee entries must have a promo code")
		}
		if _, dup := codes[e.Code]; dup {
			return fmt.Errorf("employee promo code %q is duplicated", e.Code)
		}
		codes[e.Code] = struct{}{}
	}

	for _, t := range c.Analytics.CountryTargets {
		if t.Country == "" {
			return fmt.Errorf("country targets must name a country")
		}
		if t.Target < 0 {
			return fmt.Errorf("country target for %q must not be negative", t.Country)
		}
	}

	return nil
}

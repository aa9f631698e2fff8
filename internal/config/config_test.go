// AI Solutions Dashboard - Web Access Log Analytics and Sales Insights
// Copyright 2026 THB213
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/THB213/AI-Solutions-Dashboard

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// ===================================================================================================
// Defaults Tests
// ===================================================================================================

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaultConfig().Validate() returned error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if len(cfg.Catalog) != 8 {
		t.Errorf("default catalog has %d products, want 8", len(cfg.Catalog))
	}
	if len(cfg.Geo) != 4 {
		t.Errorf("default geo table has %d rules, want 4", len(cfg.Geo))
	}
	if len(cfg.Employees) != 10 {
		t.Errorf("default directory has %d employees, want 10", len(cfg.Employees))
	}
	if len(cfg.Analytics.CountryTargets) != 4 {
		t.Errorf("default country targets = %d, want 4", len(cfg.Analytics.CountryTargets))
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 8080 {
		t.Errorf("server = %s:%d, want 0.0.0.0:8080", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %s/%s, want info/json", cfg.Logging.Level, cfg.Logging.Format)
	}
	if cfg.Analytics.Targets.BounceRate != 40 {
		t.Errorf("bounce target = %g, want 40", cfg.Analytics.Targets.BounceRate)
	}
	if cfg.Analytics.VirtualAssistantPath != "/virtual-assistant" {
		t.Errorf("virtual assistant path = %q", cfg.Analytics.VirtualAssistantPath)
	}
}

// ===================================================================================================
// Layering Tests
// ===================================================================================================

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TARGET_BOUNCE_RATE", "55")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want env override 9090", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Analytics.Targets.BounceRate != 55 {
		t.Errorf("bounce target = %g, want 55", cfg.Analytics.Targets.BounceRate)
	}
	if len(cfg.API.CORSOrigins) != 2 || cfg.API.CORSOrigins[1] != "https://b.example" {
		t.Errorf("cors origins = %v, want two trimmed entries", cfg.API.CORSOrigins)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "server:\n  port: 9999\nlogging:\n  format: console\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("port = %d, want file value 9999", cfg.Server.Port)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("format = %q, want console", cfg.Logging.Format)
	}
	// Untouched settings keep their defaults.
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("timeout = %s, want default 30s", cfg.Server.Timeout)
	}
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9999\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7070")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want env to beat file (7070)", cfg.Server.Port)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "HTTP_PORT", want: "server.port"},
		{key: "log_level", want: "logging.level"},
		{key: "TARGET_VA_SHARE", want: "analytics.targets.virtual_assistant_share"},
		{key: "PATH", want: ""},
		{key: "HOME", want: ""},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.key); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

// ===================================================================================================
// Validation Tests
// ===================================================================================================

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "port too low", mutate: func(c *Config) { c.Server.Port = 0 }},
		{name: "port too high", mutate: func(c *Config) { c.Server.Port = 70000 }},
		{name: "zero timeout", mutate: func(c *Config) { c.Server.Timeout = 0 }},
		{name: "bad log level", mutate: func(c *Config) { c.Logging.Level = "verbose" }},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }},
		{name: "zero upload cap", mutate: func(c *Config) { c.Ingest.MaxUploadBytes = 0 }},
		{name: "no allowed extensions", mutate: func(c *Config) { c.Ingest.AllowedExtensions = nil }},
		{name: "bounce target out of range", mutate: func(c *Config) { c.Analytics.Targets.BounceRate = 140 }},
		{name: "va target out of range", mutate: func(c *Config) { c.Analytics.Targets.VirtualAssistantShare = -1 }},
		{name: "empty catalog", mutate: func(c *Config) { c.Catalog = nil }},
		{name: "missing slug", mutate: func(c *Config) { c.Catalog[0].Slug = "" }},
		{name: "duplicate slug", mutate: func(c *Config) { c.Catalog[1].Slug = c.Catalog[0].Slug }},
		{name: "negative price", mutate: func(c *Config) { c.Catalog[0].Price = -1 }},
		{name: "geo rule without prefix", mutate: func(c *Config) { c.Geo[0].Prefix = "" }},
		{name: "geo rule without country", mutate: func(c *Config) { c.Geo[0].Country = "" }},
		{name: "employee without code", mutate: func(c *Config) { c.Employees[0].Code = "" }},
		{name: "duplicate employee code", mutate: func(c *Config) { c.Employees[1].Code = c.Employees[0].Code }},
		{name: "country target without name", mutate: func(c *Config) { c.Analytics.CountryTargets[0].Country = "" }},
		{name: "negative country target", mutate: func(c *Config) { c.Analytics.CountryTargets[0].Target = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() succeeded, want error")
			}
		})
	}
}

// ===================================================================================================
// Converter Tests
// ===================================================================================================

func TestConverters_PreserveOrder(t *testing.T) {
	cfg := defaultConfig()

	rules := cfg.GeoRules()
	if len(rules) != len(cfg.Geo) {
		t.Fatalf("GeoRules() has %d entries, want %d", len(rules), len(cfg.Geo))
	}
	if rules[0].Country != "Botswana" || rules[0].Prefix != "168." {
		t.Errorf("GeoRules()[0] = %+v, want the first configured rule", rules[0])
	}

	products := cfg.Products()
	if len(products) != len(cfg.Catalog) {
		t.Fatalf("Products() has %d entries, want %d", len(products), len(cfg.Catalog))
	}
	if products[0].Slug != "smart-assist" || products[0].Price != 2000 {
		t.Errorf("Products()[0] = %+v, want smart-assist at 2000", products[0])
	}

	employees := cfg.EmployeeList()
	if len(employees) != len(cfg.Employees) {
		t.Fatalf("EmployeeList() has %d entries, want %d", len(employees), len(cfg.Employees))
	}
	if employees[0].Code != "BOTSALE1" {
		t.Errorf("EmployeeList()[0] = %+v, want BOTSALE1 first", employees[0])
	}
}

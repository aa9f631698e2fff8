// AI Solutions Dashboard - Web Access Log Analytics and Sales Insights
// Copyright 2026 THB213
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/THB213/AI-Solutions-Dashboard

// Package config defines the application configuration and loads it with
// layered precedence: struct defaults, then an optional YAML file, then
// environment variables.
//
// The analytics configuration (product catalog, geo rule table, employee
// directory, gauge targets) lives here rather than in code so a deployment
// can reprice products or add affiliate codes without a rebuild.
package config

import (
	"time"

	"github.com/THB213/AI-Solutions-Dashboard/internal/catalog"
	"github.com/THB213/AI-Solutions-Dashboard/internal/geo"
)

// Config is the root configuration.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Logging   LoggingConfig    `koanf:"logging"`
	API       APIConfig        `koanf:"api"`
	Ingest    IngestConfig     `koanf:"ingest"`
	Analytics AnalyticsConfig  `koanf:"analytics"`
	Catalog   []ProductConfig  `koanf:"catalog"`
	Geo       []GeoRuleConfig  `koanf:"geo"`
	Employees []EmployeeConfig `koanf:"employees"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// LoggingConfig holds the logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// APIConfig holds API-layer settings.
type APIConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// IngestConfig holds upload and parsing limits.
type IngestConfig struct {
	// MaxUploadBytes caps the multipart upload size.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`

	// MaxLineBytes caps a single log line during scanning.
	MaxLineBytes int `koanf:"max_line_bytes"`

	// AllowedExtensions lists accepted upload file extensions.
	AllowedExtensions []string `koanf:"allowed_extensions"`
}

// AnalyticsConfig holds metric targets and feature paths.
type AnalyticsConfig struct {
	Targets        TargetsConfig   `koanf:"targets"`
	CountryTargets []CountryTarget `koanf:"country_targets"`

	// VirtualAssistantPath is the URL fragment identifying
	// virtual-assistant feature traffic.
	VirtualAssistantPath string `koanf:"virtual_assistant_path"`
}

// TargetsConfig holds the dashboard gauge targets.
type TargetsConfig struct {
	// BounceRate is the bounce-rate ceiling in percent.
	BounceRate float64 `koanf:"bounce_rate"`

	// Profit is the total profit goal.
	Profit float64 `koanf:"profit"`

	// DailyVisitors is the visitor-volume goal.
	DailyVisitors float64 `koanf:"daily_visitors"`

	// VirtualAssistantShare is the adoption goal in percent.
	VirtualAssistantShare float64 `koanf:"virtual_assistant_share"`
}

// CountryTarget is the revenue target for one sales region.
type CountryTarget struct {
	Country string  `koanf:"country"`
	Target  float64 `koanf:"target"`
}

// ProductConfig is one catalog entry.
type ProductConfig struct {
	Slug  string  `koanf:"slug"`
	Price float64 `koanf:"price"`
	Cost  float64 `koanf:"cost"`
}

// GeoRuleConfig is one ordered IP-prefix rule.
type GeoRuleConfig struct {
	Prefix  string `koanf:"prefix"`
	Country string `koanf:"country"`
	ISOCode string `koanf:"iso_code"`
}

// EmployeeConfig is one affiliate sales employee.
type EmployeeConfig struct {
	Code    string `koanf:"code"`
	Name    string `koanf:"name"`
	Country string `koanf:"country"`
}

// defaultConfig returns the built-in defaults, matching the production
// deployment of the marketing site.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8080,
			Timeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		API: APIConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
		},
		Ingest: IngestConfig{
			MaxUploadBytes:    64 << 20, // 64MB
			MaxLineBytes:      1 << 20,  // 1MB
			AllowedExtensions: []string{".txt"},
		},
		Analytics: AnalyticsConfig{
			Targets: TargetsConfig{
				BounceRate:            40,
				Profit:                4_000_000,
				DailyVisitors:         1_000,
				VirtualAssistantShare: 15,
			},
			CountryTargets: []CountryTarget{
				{Country: "Botswana", Target: 10_000_000},
				{Country: "Namibia", Target: 5_000_000},
				{Country: "South Africa", Target: 2_000_000},
				{Country: "Zimbabwe", Target: 2_000_000},
			},
			VirtualAssistantPath: "/virtual-assistant",
		},
		Catalog: []ProductConfig{
			{Slug: "smart-assist", Price: 2000, Cost: 800},
			{Slug: "proto-genius", Price: 5000, Cost: 2000},
			{Slug: "flow-optimizer", Price: 15000, Cost: 6000},
			{Slug: "team-connect", Price: 1200, Cost: 400},
			{Slug: "insight-dashboard", Price: 8000, Cost: 3000},
			{Slug: "virtual-designer", Price: 20000, Cost: 8000},
			{Slug: "rapid-launch", Price: 12000, Cost: 5000},
			{Slug: "ai-inspector", Price: 30000, Cost: 12000},
		},
		Geo: []GeoRuleConfig{
			{Prefix: "168.", Country: "Botswana", ISOCode: "BWA"},
			{Prefix: "102.", Country: "South Africa", ISOCode: "ZAF"},
			{Prefix: "154.", Country: "Namibia", ISOCode: "NAM"},
			{Prefix: "197.", Country: "Zimbabwe", ISOCode: "ZWE"},
		},
		Employees: []EmployeeConfig{
			{Code: "BOTSALE1", Name: "Ava Smith", Country: "Botswana"},
			{Code: "BOTSALE2", Name: "Liam Jones", Country: "Botswana"},
			{Code: "BOTSALE3", Name: "Emma Brown", Country: "Botswana"},
			{Code: "BOTSALE4", Name: "Noah Davis", Country: "Botswana"},
			{Code: "ZASALE1", Name: "Olivia Wilson", Country: "South Africa"},
			{Code: "ZASALE2", Name: "James Taylor", Country: "South Africa"},
			{Code: "ZASALE3", Name: "Sophia Clark", Country: "South Africa"},
			{Code: "NAMSALE1", Name: "William Lee", Country: "Namibia"},
			{Code: "NAMSALE2", Name: "Isabella Harris", Country: "Namibia"},
			{Code: "ZIMSALE1", Name: "Lucas Martin", Country: "Zimbabwe"},
		},
	}
}

// GeoRules converts the configured rule table for the classifier,
// preserving order.
func (c *Config) GeoRules() []geo.Rule {
	rules := make([]geo.Rule, len(c.Geo))
	for i, r := range c.Geo {
		rules[i] = geo.Rule{Prefix: r.Prefix, Country: r.Country, ISOCode: r.ISOCode}
	}
	return rules
}

// Products converts the configured catalog entries, preserving order.
func (c *Config) Products() []catalog.Product {
	products := make([]catalog.Product, len(c.Catalog))
	for i, p := range c.Catalog {
		products[i] = catalog.Product{Slug: p.Slug, Price: p.Price, Cost: p.Cost}
	}
	return products
}

// EmployeeList converts the configured directory entries, preserving order.
func (c *Config) EmployeeList() []catalog.Employee {
	employees := make([]catalog.Employee, len(c.Employees))
	for i, e := range c.Employees {
		employees[i] = catalog.Employee{Code: e.Code, Name: e.Name, Country: e.Country}
	}
	return employees
}

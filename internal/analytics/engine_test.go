// AI Solutions Dashboard - Web Access Log Analytics and Sales Insights
// Copyright 2026 THB213
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/THB213/AI-Solutions-Dashboard

package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/THB213/AI-Solutions-Dashboard/internal/catalog"
	"github.com/THB213/AI-Solutions-Dashboard/internal/config"
	"github.com/THB213/AI-Solutions-Dashboard/internal/geo"
	"github.com/THB213/AI-Solutions-Dashboard/internal/models"
	"github.com/THB213/AI-Solutions-Dashboard/internal/referrer"
	"github.com/THB213/AI-Solutions-Dashboard/internal/store"
)

// ===================================================================================================
// Test Fixtures
// ===================================================================================================

func testGeoRules() []geo.Rule {
	return []geo.Rule{
		{Prefix: "168.", Country: "Botswana", ISOCode: "BWA"},
		{Prefix: "102.", Country: "South Africa", ISOCode: "ZAF"},
		{Prefix: "154.", Country: "Namibia", ISOCode: "NAM"},
		{Prefix: "197.", Country: "Zimbabwe", ISOCode: "ZWE"},
	}
}

func testCatalogProducts() []catalog.Product {
	return []catalog.Product{
		{Slug: "smart-assist", Price: 2000, Cost: 800},
		{Slug: "proto-genius", Price: 5000, Cost: 2000},
		{Slug: "ai-inspector", Price: 30000, Cost: 12000},
	}
}

func testEmployees() []catalog.Employee {
	return []catalog.Employee{
		{Code: "BOTSALE1", Name: "Ava Smith", Country: "Botswana"},
		{Code: "ZASALE1", Name: "Olivia Wilson", Country: "South Africa"},
	}
}

func testAnalyticsConfig() config.AnalyticsConfig {
	return config.AnalyticsConfig{
		Targets: config.TargetsConfig{
			BounceRate:            40,
			Profit:                4_000_000,
			DailyVisitors:         1_000,
			VirtualAssistantShare: 15,
		},
		CountryTargets: []config.CountryTarget{
			{Country: "Botswana", Target: 10_000_000},
			{Country: "Namibia", Target: 5_000_000},
			{Country: "South Africa", Target: 2_000_000},
			{Country: "Zimbabwe", Target: 2_000_000},
		},
		VirtualAssistantPath: "/virtual-assistant",
	}
}

// testEngine builds an engine over the given records with the fixture
// catalog, geo table and directory.
func testEngine(recs ...models.LogRecord) *Engine {
	return testEngineWithConfig(testAnalyticsConfig(), recs...)
}

func testEngineWithConfig(cfg config.AnalyticsConfig, recs ...models.LogRecord) *Engine {
	st := store.New()
	st.AppendBatch(recs)
	return New(
		st,
		geo.New(testGeoRules()),
		referrer.New(),
		catalog.NewCatalog(testCatalogProducts()),
		catalog.NewDirectory(testEmployees()),
		cfg,
	)
}

// ts builds a UTC timestamp. 2024-03-11 is a Monday.
func ts(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

func rec(ip, method, path string, when time.Time) models.LogRecord {
	return models.LogRecord{
		IP:        ip,
		Method:    method,
		Path:      path,
		Timestamp: when,
		Status:    200,
		UserAgent: "Mozilla/5.0",
	}
}

// ===================================================================================================
// Years Tests
// ===================================================================================================

func TestYears_EmptyStore(t *testing.T) {
	e := testEngine()

	years := e.Years()
	if years.Years == nil {
		t.Fatal("Years() returned nil slice, want empty non-nil")
	}
	if len(years.Years) != 0 {
		t.Errorf("Years() = %v, want empty", years.Years)
	}
}

func TestYears_SortedAscending(t *testing.T) {
	e := testEngine(
		rec("1.1.1.1", "GET", "/", ts(2025, time.May, 1, 0)),
		rec("1.1.1.1", "GET", "/", ts(2023, time.May, 1, 0)),
		rec("1.1.1.1", "GET", "/", ts(2024, time.May, 1, 0)),
	)

	years := e.Years().Years
	want := []int{2023, 2024, 2025}
	if len(years) != 3 {
		t.Fatalf("Years() = %v, want %v", years, want)
	}
	for i := range want {
		if years[i] != want[i] {
			t.Errorf("Years()[%d] = %d, want %d", i, years[i], want[i])
		}
	}
}

// ===================================================================================================
// Filter Tests
// ===================================================================================================

func TestFilter_Year(t *testing.T) {
	e := testEngine(
		rec("1.1.1.1", "GET", "/", ts(2023, time.May, 1, 0)),
		rec("2.2.2.2", "GET", "/", ts(2024, time.May, 1, 0)),
		rec("3.3.3.3", "GET", "/", ts(2024, time.June, 1, 0)),
	)

	out := e.TrafficOverview(models.Filter{Year: 2024})
	if out.TotalRequests != 2 {
		t.Errorf("TotalRequests with year filter = %d, want 2", out.TotalRequests)
	}

	out = e.TrafficOverview(models.Filter{Year: 1999})
	if out.TotalRequests != 0 {
		t.Errorf("TotalRequests for absent year = %d, want 0", out.TotalRequests)
	}
}

func TestFilter_Country(t *testing.T) {
	e := testEngine(
		rec("168.1.1.1", "GET", "/", ts(2024, time.May, 1, 0)),
		rec("168.2.2.2", "GET", "/", ts(2024, time.May, 1, 0)),
		rec("102.1.1.1", "GET", "/", ts(2024, time.May, 1, 0)),
		rec("8.8.8.8", "GET", "/", ts(2024, time.May, 1, 0)), // unmatched
	)

	out := e.TrafficOverview(models.Filter{Country: "Botswana"})
	if out.TotalRequests != 2 {
		t.Errorf("TotalRequests for Botswana = %d, want 2", out.TotalRequests)
	}

	// An unmatched IP never satisfies a country filter.
	out = e.TrafficOverview(models.Filter{Country: "Zambia"})
	if out.TotalRequests != 0 {
		t.Errorf("TotalRequests for unknown country = %d, want 0", out.TotalRequests)
	}
}

func TestFilter_YearAndCountryCombined(t *testing.T) {
	e := testEngine(
		rec("168.1.1.1", "GET", "/", ts(2023, time.May, 1, 0)),
		rec("168.1.1.1", "GET", "/", ts(2024, time.May, 1, 0)),
		rec("102.1.1.1", "GET", "/", ts(2024, time.May, 1, 0)),
	)

	out := e.TrafficOverview(models.Filter{Year: 2024, Country: "Botswana"})
	if out.TotalRequests != 1 {
		t.Errorf("TotalRequests for 2024+Botswana = %d, want 1", out.TotalRequests)
	}
}

// ===================================================================================================
// Metric Dispatch Tests
// ===================================================================================================

func TestMetric_DispatchesEveryKnownName(t *testing.T) {
	e := testEngine(
		rec("168.1.1.1", "POST", "/solutions/smart-assist/", ts(2024, time.March, 11, 14)),
	)

	for _, name := range MetricNames() {
		data, err := e.Metric(name, models.Filter{})
		if err != nil {
			t.Errorf("Metric(%q) returned error: %v", name, err)
		}
		if data == nil {
			t.Errorf("Metric(%q) returned nil payload", name)
		}
	}
}

func TestMetric_EmptyStoreNeverPanics(t *testing.T) {
	e := testEngine()

	for _, name := range MetricNames() {
		data, err := e.Metric(name, models.Filter{})
		if err != nil {
			t.Errorf("Metric(%q) over an empty store returned error: %v", name, err)
		}
		if data == nil {
			t.Errorf("Metric(%q) over an empty store returned nil payload", name)
		}
	}
}

func TestMetric_UnknownName(t *testing.T) {
	e := testEngine()

	_, err := e.Metric("no_such_metric", models.Filter{})
	if !errors.Is(err, ErrUnknownMetric) {
		t.Errorf("Metric(unknown) error = %v, want ErrUnknownMetric", err)
	}
}

// ===================================================================================================
// ratio Tests
// ===================================================================================================

func TestRatio(t *testing.T) {
	if got := ratio(1, 0); got != 0 {
		t.Errorf("ratio(1, 0) = %g, want 0", got)
	}
	if got := ratio(1, 4); got != 25 {
		t.Errorf("ratio(1, 4) = %g, want 25", got)
	}
	if got := ratio(0, 10); got != 0 {
		t.Errorf("ratio(0, 10) = %g, want 0", got)
	}
}

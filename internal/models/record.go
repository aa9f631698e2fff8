// AI Solutions Dashboard - Web Access Log Analytics and Sales Insights
// Copyright 2026 THB213
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/THB213/AI-Solutions-Dashboard

// Package models defines the data types shared between the ingest pipeline,
// the record store, the analytics engine, and the API layer.
package models

import (
	"time"
)

// LogRecord is one parsed web-server access log entry.
//
// Referrer is the empty string when the log line carried the "-" placeholder.
// PromoCode is the raw (not URL-decoded) value of the first promo_code query
// parameter, or empty when absent.
type LogRecord struct {
	IP          string    `json:"ip"`
	Timestamp   time.Time `json:"timestamp"`
	Method      string    `json:"method"`
	Path        string    `json:"path"`
	RawQuery    string    `json:"raw_query,omitempty"`
	HTTPVersion string    `json:"http_version"`
	Status      int       `json:"status"`
	Size        int64     `json:"size"`
	Referrer    string    `json:"referrer,omitempty"`
	UserAgent   string    `json:"user_agent"`
	PromoCode   string    `json:"promo_code,omitempty"`
}

// Year returns the calendar year of the record timestamp.
func (r *LogRecord) Year() int {
	return r.Timestamp.Year()
}

// IsPOST reports whether the record is a POST request.
func (r *LogRecord) IsPOST() bool {
	return r.Method == "POST"
}

// IngestSummary is the outcome of one batch ingestion.
// Accepted + Rejected equals the number of non-empty input lines.
type IngestSummary struct {
	Accepted   int `json:"accepted"`
	Rejected   int `json:"rejected"`
	StoreTotal int `json:"store_total"`
}

// Filter scopes analytics queries. The zero value selects everything.
type Filter struct {
	// Year restricts records to one calendar year. 0 means all years.
	Year int `json:"year,omitempty"`

	// Country restricts records to IPs classified into the named country.
	// Empty means all countries, including unmatched IPs.
	Country string `json:"country,omitempty"`
}

// IsZero reports whether the filter selects the full dataset.
func (f Filter) IsZero() bool {
	return f.Year == 0 && f.Country == ""
}

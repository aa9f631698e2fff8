// AI Solutions Dashboard - Web Access Log Analytics and Sales Insights
// Copyright 2026 THB213
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/THB213/AI-Solutions-Dashboard

// Package logparse turns raw web-server access log lines into LogRecords.
//
// The accepted grammar is the combined access-log format the marketing site
// emits:
//
//	IP - - [02/Jan/2006:15:04:05 -0700] "METHOD /path?query HTTP/1.1" 200 1234 "referrer" "user agent"
//
// A "-" referrer is normalized to the empty string. The promo code is the
// raw value of the first promo_code query parameter; it is deliberately not
// URL-decoded because affiliate codes are issued as plain ASCII tokens.
package logparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/THB213/AI-Solutions-Dashboard/internal/models"
)

// timestampLayout is the access-log timestamp format.
const timestampLayout = "02/Jan/2006:15:04:05 -0700"

// promoParam is the query parameter carrying affiliate promo codes.
const promoParam = "promo_code"

// linePattern matches one access-log line. The query group is optional;
// the referrer and user agent groups may be empty.
var linePattern = regexp.MustCompile(
	`^(?P<ip>[\d.]+) - - \[(?P<timestamp>[^\]]+)\] ` +
		`"(?P<method>\w+) (?P<path>[^?\s"]*)(?:\?(?P<query>[^\s"]*))? (?P<version>HTTP/\d\.\d)" ` +
		`(?P<status>\d+) (?P<size>\d+) "(?P<referrer>[^"]*)" "(?P<agent>[^"]*)"$`)

// group indexes into linePattern submatches, resolved once at init.
var (
	idxIP        = linePattern.SubexpIndex("ip")
	idxTimestamp = linePattern.SubexpIndex("timestamp")
	idxMethod    = linePattern.SubexpIndex("method")
	idxPath      = linePattern.SubexpIndex("path")
	idxQuery     = linePattern.SubexpIndex("query")
	idxVersion   = linePattern.SubexpIndex("version")
	idxStatus    = linePattern.SubexpIndex("status")
	idxSize      = linePattern.SubexpIndex("size")
	idxReferrer  = linePattern.SubexpIndex("referrer")
	idxAgent     = linePattern.SubexpIndex("agent")
)

// Parser converts access-log lines into LogRecords.
// The zero value is not usable; construct with New.
type Parser struct{}

// New returns a ready Parser.
func New() *Parser {
	return &Parser{}
}

// Parse converts a single log line into a LogRecord.
// Returns a *ParseError when the line does not match the grammar or a
// matched field fails conversion.
func (p *Parser) Parse(line string) (models.LogRecord, error) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return models.LogRecord{}, newParseError(line, "line does not match access-log format", nil)
	}

	ts, err := time.Parse(timestampLayout, m[idxTimestamp])
	if err != nil {
		return models.LogRecord{}, newParseError(line, "invalid timestamp", err)
	}

	status, err := strconv.Atoi(m[idxStatus])
	if err != nil {
		return models.LogRecord{}, newParseError(line, "invalid status code", err)
	}

	size, err := strconv.ParseInt(m[idxSize], 10, 64)
	if err != nil {
		return models.LogRecord{}, newParseError(line, "invalid response size", err)
	}

	referrer := m[idxReferrer]
	if referrer == "-" {
		referrer = ""
	}

	rawQuery := m[idxQuery]

	return models.LogRecord{
		IP:          m[idxIP],
		Timestamp:   ts,
		Method:      m[idxMethod],
		Path:        m[idxPath],
		RawQuery:    rawQuery,
		HTTPVersion: m[idxVersion],
		Status:      status,
		Size:        size,
		Referrer:    referrer,
		UserAgent:   m[idxAgent],
		PromoCode:   ExtractPromoCode(rawQuery),
	}, nil
}

// ExtractPromoCode returns the value of the first promo_code parameter in a
// raw query string, or "" when absent. Values are matched case-sensitively
// and returned without URL decoding; a value containing '=' is cut at the
// second separator.
func ExtractPromoCode(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}
	for _, param := range strings.Split(rawQuery, "&") {
		if !strings.HasPrefix(param, promoParam+"=") {
			continue
		}
		parts := strings.Split(param, "=")
		if len(parts) >= 2 {
			return parts[1]
		}
	}
	return ""
}

// ParseError describes one rejected log line.
type ParseError struct {
	// Line is the offending input, truncated for log hygiene.
	Line string

	// Reason is a short human-readable cause.
	Reason string

	// Err is the underlying conversion error, if any.
	Err error
}

// maxErrLine caps the input snippet kept in parse errors.
const maxErrLine = 200

func newParseError(line, reason string, err error) *ParseError {
	if len(line) > maxErrLine {
		line = line[:maxErrLine]
	}
	return &ParseError{Line: line, Reason: reason, Err: err}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse log line: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse log line: %s", e.Reason)
}

// Unwrap returns the underlying conversion error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

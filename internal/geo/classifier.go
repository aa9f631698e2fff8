// AI Solutions Dashboard - Web Access Log Analytics and Sales Insights
// Copyright 2026 THB213
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/THB213/AI-Solutions-Dashboard

// Package geo classifies client IP addresses into countries using an
// ordered prefix rule table.
//
// Matching is first-match-in-table-order, not longest-prefix: the rule
// table is small and curated, and its order is part of the configuration
// contract.
package geo

import (
	"strings"
)

// Rule maps one IP string prefix to a country.
type Rule struct {
	Prefix  string
	Country string
	ISOCode string
}

// Result is a tagged classification outcome. Matched is false when no rule
// prefix matched the address; Country is empty in that case.
type Result struct {
	Country string
	ISOCode string
	Matched bool
}

// Classifier applies an ordered rule table to IP addresses.
type Classifier struct {
	rules []Rule
}

// New returns a classifier over the given rules. The slice order is the
// match order.
func New(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify returns the country of the first rule whose prefix matches the
// address, or an unmatched result.
func (c *Classifier) Classify(ip string) Result {
	for _, r := range c.rules {
		if strings.HasPrefix(ip, r.Prefix) {
			return Result{Country: r.Country, ISOCode: r.ISOCode, Matched: true}
		}
	}
	return Result{}
}

// Rules returns the rule table in match order.
func (c *Classifier) Rules() []Rule {
	return c.rules
}

// Countries returns the configured country names in rule-table order.
func (c *Classifier) Countries() []string {
	out := make([]string, len(c.rules))
	for i, r := range c.rules {
		out[i] = r.Country
	}
	return out
}

// Knows reports whether the named country appears in the rule table.
func (c *Classifier) Knows(country string) bool {
	for _, r := range c.rules {
		if r.Country == country {
			return true
		}
	}
	return false
}

// AI Solutions Dashboard - Web Access Log Analytics and Sales Insights
// Copyright 2026 THB213
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/THB213/AI-Solutions-Dashboard

// Package api provides HTTP handlers for the dashboard backend.
//
// requests.go - Query parameter parsing and validation
package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/THB213/AI-Solutions-Dashboard/internal/models"
	"github.com/THB213/AI-Solutions-Dashboard/internal/validation"
)

// FilterRequest carries the common year/country scoping parameters.
type FilterRequest struct {
	Year    int    `validate:"omitempty,min=1970,max=2100"`
	Country string `validate:"omitempty,max=64"`
}

// parseFilter extracts and validates the year/country query parameters.
func parseFilter(r *http.Request) (models.Filter, error) {
	req := FilterRequest{Country: r.URL.Query().Get("country")}

	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return models.Filter{}, fmt.Errorf("year must be an integer, got %q", raw)
		}
		req.Year = year
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		return models.Filter{}, verr
	}

	return models.Filter{Year: req.Year, Country: req.Country}, nil
}

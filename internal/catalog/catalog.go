// AI Solutions Dashboard - Web Access Log Analytics and Sales Insights
// Copyright 2026 THB213
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/THB213/AI-Solutions-Dashboard

// Package catalog holds the product price list and the sales-employee
// directory, both injected from configuration.
//
// A sale is a POST request whose path addresses a catalog product under
// /solutions/. Unknown products and unknown promo codes are tagged misses,
// never errors: the log may legitimately reference retired products or
// expired affiliate codes.
package catalog

import (
	"strings"
)

// solutionsPrefix is the URL namespace for product pages.
const solutionsPrefix = "/solutions/"

// Product is one sellable catalog entry.
type Product struct {
	Slug  string
	Price float64
	Cost  float64
}

// Profit is the margin of one unit.
func (p Product) Profit() float64 {
	return p.Price - p.Cost
}

// Catalog is the product price list. Iteration order follows the
// configured order.
type Catalog struct {
	bySlug map[string]Product
	order  []string
}

// NewCatalog builds a catalog from configured products. Later duplicates
// of a slug override earlier ones.
func NewCatalog(products []Product) *Catalog {
	c := &Catalog{bySlug: make(map[string]Product, len(products))}
	for _, p := range products {
		if _, exists := c.bySlug[p.Slug]; !exists {
			c.order = append(c.order, p.Slug)
		}
		c.bySlug[p.Slug] = p
	}
	return c
}

// Lookup returns the product for a slug.
func (c *Catalog) Lookup(slug string) (Product, bool) {
	p, ok := c.bySlug[slug]
	return p, ok
}

// Slugs returns product slugs in configured order.
func (c *Catalog) Slugs() []string {
	return c.order
}

// ProductFromPath extracts the catalog product addressed by a request path.
// Returns false when the path is outside /solutions/ or the slug is not in
// the catalog.
func (c *Catalog) ProductFromPath(path string) (Product, bool) {
	slug, ok := SolutionSlug(path)
	if !ok {
		return Product{}, false
	}
	return c.Lookup(slug)
}

// SolutionSlug extracts the first path segment under /solutions/.
func SolutionSlug(path string) (string, bool) {
	rest, found := strings.CutPrefix(path, solutionsPrefix)
	if !found || rest == "" {
		return "", false
	}
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	if rest == "" {
		return "", false
	}
	return rest, true
}

// Employee is one affiliate sales employee.
type Employee struct {
	Code    string
	Name    string
	Country string
}

// Directory maps promo codes to employees. Iteration order follows the
// configured order.
type Directory struct {
	byCode map[string]Employee
	order  []string
}

// NewDirectory builds the employee directory from configuration.
func NewDirectory(employees []Employee) *Directory {
	d := &Directory{byCode: make(map[string]Employee, len(employees))}
	for _, e := range employees {
		if _, exists := d.byCode[e.Code]; !exists {
			d.order = append(d.order, e.Code)
		}
		d.byCode[e.Code] = e
	}
	return d
}

// Lookup resolves a promo code. Codes are matched case-sensitively.
func (d *Directory) Lookup(code string) (Employee, bool) {
	e, ok := d.byCode[code]
	return e, ok
}

// Codes returns promo codes in configured order.
func (d *Directory) Codes() []string {
	return d.order
}

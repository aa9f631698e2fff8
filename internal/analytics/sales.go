// AI Solutions Dashboard - Web Access Log Analytics and Sales Insights
// Copyright 2026 THB213
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/THB213/AI-Solutions-Dashboard

package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/THB213/AI-Solutions-Dashboard/internal/models"
	"github.com/THB213/AI-Solutions-Dashboard/internal/referrer"
)

// SalesSummary aggregates sale counts, revenue and profit for the scope.
//
// Conversion is sales over distinct POST-visitor IPs. Average yearly
// profit is the mean of per-year profit sums over the years present in
// scope; under a single-year filter it degenerates to that year's sum.
func (e *Engine) SalesSummary(f models.Filter) models.SalesSummary {
	recs := e.scope(f)

	out := models.SalesSummary{}
	postIPs := make(map[string]struct{})
	profitByYear := make(map[int]float64)
	for i := range recs {
		r := &recs[i]
		if r.IsPOST() {
			postIPs[r.IP] = struct{}{}
		}
		product, ok := e.sale(r)
		if !ok {
			continue
		}
		out.Sales++
		out.Revenue += product.Price
		out.Profit += product.Profit()
		profitByYear[r.Year()] += product.Profit()
	}

	out.DistinctVisitors = len(postIPs)
	out.ConversionRate = ratio(float64(out.Sales), float64(out.DistinctVisitors))
	if len(profitByYear) > 0 {
		sum := 0.0
		for _, p := range profitByYear {
			sum += p
		}
		out.AvgYearlyProfit = sum / float64(len(profitByYear))
	}
	out.ProfitGauge = models.GaugeStatus{
		Value:    out.Profit,
		Target:   e.cfg.Targets.Profit,
		OnTarget: out.Profit >= e.cfg.Targets.Profit,
	}
	return out
}

// MonthlyProfit returns the profit series over calendar months.
// All 12 buckets are always present, January first.
func (e *Engine) MonthlyProfit(f models.Filter) models.MonthlyProfit {
	recs := e.scope(f)

	sums := sumBy(recs,
		func(r *models.LogRecord) (time.Month, bool) {
			_, ok := e.sale(r)
			return r.Timestamp.Month(), ok
		},
		func(r *models.LogRecord) float64 {
			product, _ := e.sale(r)
			return product.Profit()
		},
	)

	out := models.MonthlyProfit{Months: make([]models.MonthProfit, 12)}
	for m := time.January; m <= time.December; m++ {
		out.Months[m-1] = models.MonthProfit{Month: m.String(), Profit: sums[m]}
	}
	return out
}

// WeeklyRevenue returns the revenue trend over ISO weeks, ascending.
// Only weeks with at least one sale appear in the series.
func (e *Engine) WeeklyRevenue(f models.Filter) models.WeeklyRevenue {
	recs := e.scope(f)

	sums := sumBy(recs,
		func(r *models.LogRecord) (string, bool) {
			if _, ok := e.sale(r); !ok {
				return "", false
			}
			y, w := r.Timestamp.ISOWeek()
			return fmt.Sprintf("%04d-W%02d", y, w), true
		},
		func(r *models.LogRecord) float64 {
			product, _ := e.sale(r)
			return product.Price
		},
	)

	out := models.WeeklyRevenue{Weeks: make([]models.WeekRevenue, 0, len(sums))}
	for week, rev := range sums {
		out.Weeks = append(out.Weeks, models.WeekRevenue{Week: week, Revenue: rev})
	}
	sort.Slice(out.Weeks, func(i, j int) bool { return out.Weeks[i].Week < out.Weeks[j].Week })
	return out
}

// SalesTrafficSources buckets POST requests by referrer category under
// the inclusive policy: the traffic-source mix behind purchase activity,
// as opposed to ReferrerDistribution which covers all requests.
func (e *Engine) SalesTrafficSources(f models.Filter) models.ReferrerDistribution {
	recs := e.scope(f)

	counts, _ := countBy(recs, func(r *models.LogRecord) (string, bool) {
		if !r.IsPOST() {
			return "", false
		}
		cat, _ := e.referrers.Classify(r.Referrer, referrer.PolicyInclusive)
		return cat, true
	})

	cats := referrer.Categories(referrer.PolicyInclusive)
	out := models.ReferrerDistribution{
		Policy:     string(referrer.PolicyInclusive),
		Categories: make([]models.ReferrerSlice, len(cats)),
	}
	for i, cat := range cats {
		out.Categories[i] = models.ReferrerSlice{Category: cat, Requests: counts[cat]}
	}
	return out
}

// SalesByCountry decomposes revenue against the configured per-country
// targets, in configured order. Revenue attribution classifies the buyer
// IP with the geo rule table.
func (e *Engine) SalesByCountry(f models.Filter) models.SalesByCountry {
	recs := e.scope(f)

	revenue := sumBy(recs,
		func(r *models.LogRecord) (string, bool) {
			if _, ok := e.sale(r); !ok {
				return "", false
			}
			res := e.geo.Classify(r.IP)
			return res.Country, res.Matched
		},
		func(r *models.LogRecord) float64 {
			product, _ := e.sale(r)
			return product.Price
		},
	)

	out := models.SalesByCountry{Countries: make([]models.CountrySales, len(e.cfg.CountryTargets))}
	for i, ct := range e.cfg.CountryTargets {
		rev := revenue[ct.Country]
		out.Countries[i] = models.CountrySales{
			Country:  ct.Country,
			Revenue:  rev,
			Target:   ct.Target,
			Achieved: min(rev, ct.Target),
			Over:     max(rev-ct.Target, 0),
			Under:    max(ct.Target-rev, 0),
		}
	}
	return out
}

// EmployeePerformance aggregates attributed sales per directory employee,
// in directory order. Sales with a missing or unrecognized promo code are
// counted as unattributed rather than failing.
func (e *Engine) EmployeePerformance(f models.Filter) models.EmployeePerformance {
	recs := e.scope(f)

	type totals struct {
		sales   int
		revenue float64
		profit  float64
	}
	byCode := make(map[string]*totals)
	unattributed := 0
	for i := range recs {
		r := &recs[i]
		product, ok := e.sale(r)
		if !ok {
			continue
		}
		if _, known := e.directory.Lookup(r.PromoCode); !known {
			unattributed++
			continue
		}
		t := byCode[r.PromoCode]
		if t == nil {
			t = &totals{}
			byCode[r.PromoCode] = t
		}
		t.sales++
		t.revenue += product.Price
		t.profit += product.Profit()
	}

	out := models.EmployeePerformance{Unattributed: unattributed}
	for _, code := range e.directory.Codes() {
		emp, _ := e.directory.Lookup(code)
		row := models.EmployeeSales{Code: emp.Code, Name: emp.Name, Country: emp.Country}
		if t := byCode[code]; t != nil {
			row.Sales = t.sales
			row.Revenue = t.revenue
			row.Profit = t.profit
		}
		out.Employees = append(out.Employees, row)
	}
	return out
}

// ProductPerformance contrasts product-page views with purchases per
// catalog product, in catalog order. A view is a GET addressing the
// product's /solutions/ page.
func (e *Engine) ProductPerformance(f models.Filter) models.ProductPerformance {
	recs := e.scope(f)

	views := make(map[string]int)
	purchases := make(map[string]int)
	revenue := make(map[string]float64)
	for i := range recs {
		r := &recs[i]
		product, ok := e.catalog.ProductFromPath(r.Path)
		if !ok {
			continue
		}
		switch r.Method {
		case "GET":
			views[product.Slug]++
		case "POST":
			purchases[product.Slug]++
			revenue[product.Slug] += product.Price
		}
	}

	out := models.ProductPerformance{}
	for _, slug := range e.catalog.Slugs() {
		out.Products = append(out.Products, models.ProductActivity{
			Product:   slug,
			Views:     views[slug],
			Purchases: purchases[slug],
			Revenue:   revenue[slug],
		})
	}
	return out
}

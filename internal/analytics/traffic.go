// AI Solutions Dashboard - Web Access Log Analytics and Sales Insights
// Copyright 2026 THB213
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/THB213/AI-Solutions-Dashboard

package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/THB213/AI-Solutions-Dashboard/internal/models"
	"github.com/THB213/AI-Solutions-Dashboard/internal/referrer"
)

// topPageCount is the size of the top-pages and top-agents rankings.
const topPageCount = 5

// weekdays in dashboard display order, Monday first.
var weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// TrafficOverview summarizes request volume in the filtered scope.
func (e *Engine) TrafficOverview(f models.Filter) models.TrafficOverview {
	recs := e.scope(f)

	out := models.TrafficOverview{TotalRequests: len(recs)}
	ips := make(map[string]struct{})
	for i := range recs {
		r := &recs[i]
		switch r.Method {
		case "GET":
			out.GetRequests++
		case "POST":
			out.PostRequests++
		}
		switch {
		case r.Status >= 200 && r.Status < 300:
			out.Status2xx++
		case r.Status >= 300 && r.Status < 400:
			out.Status3xx++
		case r.Status >= 400 && r.Status < 500:
			out.Status4xx++
		case r.Status >= 500 && r.Status < 600:
			out.Status5xx++
		}
		ips[r.IP] = struct{}{}
	}
	out.UniqueIPs = len(ips)
	return out
}

// HourlyTraffic returns the request histogram over hours of the day.
// All 24 buckets are always present, zero-filled.
func (e *Engine) HourlyTraffic(f models.Filter) models.HourlyTraffic {
	recs := e.scope(f)

	counts, _ := countBy(recs, func(r *models.LogRecord) (int, bool) {
		return r.Timestamp.Hour(), true
	})

	out := models.HourlyTraffic{Buckets: make([]models.HourBucket, 24)}
	for h := 0; h < 24; h++ {
		out.Buckets[h] = models.HourBucket{Hour: h, Requests: counts[h]}
		if counts[h] > counts[out.PeakHour] {
			out.PeakHour = h
		}
	}
	return out
}

// DailyVisitors returns request volume, sales and conversion per weekday.
// Visitors count every record in the bucket and sales count every POST
// record, catalog or not; conversion is their ratio. All 7 buckets are
// always present, Monday first.
func (e *Engine) DailyVisitors(f models.Filter) models.DailyVisitors {
	recs := e.scope(f)

	visitors, _ := countBy(recs, func(r *models.LogRecord) (time.Weekday, bool) {
		return r.Timestamp.Weekday(), true
	})
	sales, _ := countBy(recs, func(r *models.LogRecord) (time.Weekday, bool) {
		return r.Timestamp.Weekday(), r.IsPOST()
	})

	out := models.DailyVisitors{Buckets: make([]models.WeekdayBucket, len(weekdays))}
	for i, wd := range weekdays {
		out.Buckets[i] = models.WeekdayBucket{
			Weekday:        wd.String(),
			Visitors:       visitors[wd],
			Sales:          sales[wd],
			ConversionRate: ratio(float64(sales[wd]), float64(visitors[wd])),
		}
		out.TotalVisitors += visitors[wd]
	}
	out.Gauge = models.GaugeStatus{
		Value:    float64(out.TotalVisitors),
		Target:   e.cfg.Targets.DailyVisitors,
		OnTarget: float64(out.TotalVisitors) >= e.cfg.Targets.DailyVisitors,
	}
	return out
}

// BounceRate computes the share of POST-visitor IPs seen exactly once.
// A lower rate is better; the gauge is on target at or below the ceiling.
func (e *Engine) BounceRate(f models.Filter) models.BounceRate {
	recs := e.scope(f)

	counts, _ := countBy(recs, func(r *models.LogRecord) (string, bool) {
		return r.IP, r.IsPOST()
	})

	bounced := 0
	for _, n := range counts {
		if n == 1 {
			bounced++
		}
	}

	rate := ratio(float64(bounced), float64(len(counts)))
	return models.BounceRate{
		Rate:       rate,
		BouncedIPs: bounced,
		TotalIPs:   len(counts),
		Gauge: models.GaugeStatus{
			Value:    rate,
			Target:   e.cfg.Targets.BounceRate,
			OnTarget: rate <= e.cfg.Targets.BounceRate,
		},
	}
}

// UniqueVisitors returns per-day distinct visitor counts, sorted by date.
func (e *Engine) UniqueVisitors(f models.Filter) models.UniqueVisitors {
	recs := e.scope(f)

	sets := distinctBy(recs,
		func(r *models.LogRecord) (string, bool) { return r.Timestamp.Format("2006-01-02"), true },
		func(r *models.LogRecord) string { return r.IP },
	)

	days := make([]models.DayVisitors, 0, len(sets))
	for date, ips := range sets {
		days = append(days, models.DayVisitors{Date: date, Visitors: len(ips)})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return models.UniqueVisitors{Days: days}
}

// TopPages ranks the most requested paths. Query strings are already kept
// separate from paths by the parser, so paths group cleanly. Ties keep
// first-occurrence order.
func (e *Engine) TopPages(f models.Filter) models.TopPages {
	recs := e.scope(f)

	counts, order := countBy(recs, func(r *models.LogRecord) (string, bool) {
		return r.Path, true
	})

	pages := make([]models.PageCount, 0, topPageCount)
	for _, path := range topKeys(counts, order, topPageCount) {
		pages = append(pages, models.PageCount{Path: path, Requests: counts[path]})
	}
	return models.TopPages{Pages: pages}
}

// ReferrerDistribution buckets traffic by referrer category under the
// requested policy. Categories the policy defines are always present,
// zero-filled; Excluded counts requests the social-only policy drops.
func (e *Engine) ReferrerDistribution(f models.Filter, policy referrer.Policy) models.ReferrerDistribution {
	recs := e.scope(f)

	excluded := 0
	counts, _ := countBy(recs, func(r *models.LogRecord) (string, bool) {
		cat, ok := e.referrers.Classify(r.Referrer, policy)
		if !ok {
			excluded++
		}
		return cat, ok
	})

	cats := referrer.Categories(policy)
	out := models.ReferrerDistribution{
		Policy:     string(policy),
		Categories: make([]models.ReferrerSlice, len(cats)),
		Excluded:   excluded,
	}
	for i, cat := range cats {
		out.Categories[i] = models.ReferrerSlice{Category: cat, Requests: counts[cat]}
	}
	return out
}

// GeoDistribution counts traffic per configured country in rule-table
// order, plus the count of addresses no rule matched.
func (e *Engine) GeoDistribution(f models.Filter) models.GeoDistribution {
	recs := e.scope(f)

	unmatched := 0
	counts, _ := countBy(recs, func(r *models.LogRecord) (string, bool) {
		res := e.geo.Classify(r.IP)
		if !res.Matched {
			unmatched++
		}
		return res.Country, res.Matched
	})

	rules := e.geo.Rules()
	out := models.GeoDistribution{
		Countries: make([]models.CountryTraffic, 0, len(rules)),
		Unmatched: unmatched,
	}
	seen := make(map[string]struct{}, len(rules))
	for _, rule := range rules {
		// A country may appear under several prefixes; emit it once.
		if _, dup := seen[rule.Country]; dup {
			continue
		}
		seen[rule.Country] = struct{}{}
		out.Countries = append(out.Countries, models.CountryTraffic{
			Country:  rule.Country,
			ISOCode:  rule.ISOCode,
			Requests: counts[rule.Country],
		})
	}
	return out
}

// VirtualAssistantShare computes the share of requests touching the
// virtual-assistant feature path.
func (e *Engine) VirtualAssistantShare(f models.Filter) models.VirtualAssistantShare {
	recs := e.scope(f)

	n := 0
	for i := range recs {
		if strings.Contains(recs[i].Path, e.cfg.VirtualAssistantPath) {
			n++
		}
	}

	share := ratio(float64(n), float64(len(recs)))
	return models.VirtualAssistantShare{
		Requests: n,
		Total:    len(recs),
		Share:    share,
		Gauge: models.GaugeStatus{
			Value:    share,
			Target:   e.cfg.Targets.VirtualAssistantShare,
			OnTarget: share >= e.cfg.Targets.VirtualAssistantShare,
		},
	}
}

// TopAgents ranks the most frequent user agents. Ties keep
// first-occurrence order.
func (e *Engine) TopAgents(f models.Filter) models.TopAgents {
	recs := e.scope(f)

	counts, order := countBy(recs, func(r *models.LogRecord) (string, bool) {
		return r.UserAgent, true
	})

	agents := make([]models.AgentCount, 0, topPageCount)
	for _, agent := range topKeys(counts, order, topPageCount) {
		agents = append(agents, models.AgentCount{UserAgent: agent, Requests: counts[agent]})
	}
	return models.TopAgents{Agents: agents}
}

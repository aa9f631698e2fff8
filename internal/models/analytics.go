// AI Solutions Dashboard - Web Access Log Analytics and Sales Insights
// Copyright 2026 THB213
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/THB213/AI-Solutions-Dashboard

package models

// GaugeStatus compares a computed value against its configured target.
type GaugeStatus struct {
	Value    float64 `json:"value"`
	Target   float64 `json:"target"`
	OnTarget bool    `json:"on_target"`
}

// TrafficOverview summarizes request volume in the filtered scope.
type TrafficOverview struct {
	TotalRequests int `json:"total_requests"`
	GetRequests   int `json:"get_requests"`
	PostRequests  int `json:"post_requests"`
	UniqueIPs     int `json:"unique_ips"`
	Status2xx     int `json:"status_2xx"`
	Status3xx     int `json:"status_3xx"`
	Status4xx     int `json:"status_4xx"`
	Status5xx     int `json:"status_5xx"`
}

// HourBucket is one of the 24 dense hourly traffic buckets.
type HourBucket struct {
	Hour     int `json:"hour"`
	Requests int `json:"requests"`
}

// HourlyTraffic is the request histogram over hours of the day.
// Buckets always has 24 entries, hour 0 through 23.
type HourlyTraffic struct {
	Buckets  []HourBucket `json:"buckets"`
	PeakHour int          `json:"peak_hour"`
}

// WeekdayBucket is one of the 7 dense weekday buckets, Monday first.
type WeekdayBucket struct {
	Weekday        string  `json:"weekday"`
	Visitors       int     `json:"visitors"`
	Sales          int     `json:"sales"`
	ConversionRate float64 `json:"conversion_rate"`
}

// DailyVisitors is the weekday visitor breakdown with the visitor gauge.
// Buckets always has 7 entries, Monday through Sunday.
type DailyVisitors struct {
	Buckets       []WeekdayBucket `json:"buckets"`
	TotalVisitors int             `json:"total_visitors"`
	Gauge         GaugeStatus     `json:"gauge"`
}

// BounceRate is the share of single-visit POST IPs among all POST IPs.
type BounceRate struct {
	Rate       float64     `json:"rate"`
	BouncedIPs int         `json:"bounced_ips"`
	TotalIPs   int         `json:"total_ips"`
	Gauge      GaugeStatus `json:"gauge"`
}

// DayVisitors is the distinct-IP count for one calendar day.
type DayVisitors struct {
	Date     string `json:"date"`
	Visitors int    `json:"visitors"`
}

// UniqueVisitors lists per-day distinct visitor counts, sorted by date.
type UniqueVisitors struct {
	Days []DayVisitors `json:"days"`
}

// PageCount is one entry of the top-pages ranking.
type PageCount struct {
	Path     string `json:"path"`
	Requests int    `json:"requests"`
}

// TopPages ranks the most requested paths, query strings stripped.
type TopPages struct {
	Pages []PageCount `json:"pages"`
}

// ReferrerSlice is one category of the referrer distribution.
type ReferrerSlice struct {
	Category string `json:"category"`
	Requests int    `json:"requests"`
}

// ReferrerDistribution is the per-category referrer breakdown under one
// classification policy.
type ReferrerDistribution struct {
	Policy     string          `json:"policy"`
	Categories []ReferrerSlice `json:"categories"`
	Excluded   int             `json:"excluded,omitempty"`
}

// CountryTraffic is the request count for one configured country.
type CountryTraffic struct {
	Country  string `json:"country"`
	ISOCode  string `json:"iso_code"`
	Requests int    `json:"requests"`
}

// GeoDistribution is the per-country traffic breakdown in rule-table order,
// plus the count of IPs no rule matched.
type GeoDistribution struct {
	Countries []CountryTraffic `json:"countries"`
	Unmatched int              `json:"unmatched"`
}

// SalesSummary aggregates sale-derived figures for the filtered scope.
type SalesSummary struct {
	Sales            int         `json:"sales"`
	Revenue          float64     `json:"revenue"`
	Profit           float64     `json:"profit"`
	ConversionRate   float64     `json:"conversion_rate"`
	AvgYearlyProfit  float64     `json:"avg_yearly_profit"`
	ProfitGauge      GaugeStatus `json:"profit_gauge"`
	DistinctVisitors int         `json:"distinct_visitors"`
}

// MonthProfit is the profit sum for one calendar month.
type MonthProfit struct {
	Month  string  `json:"month"`
	Profit float64 `json:"profit"`
}

// MonthlyProfit is the dense 12-bucket profit series, January first.
type MonthlyProfit struct {
	Months []MonthProfit `json:"months"`
}

// WeekRevenue is the revenue sum for one ISO week, keyed "2024-W05".
type WeekRevenue struct {
	Week    string  `json:"week"`
	Revenue float64 `json:"revenue"`
}

// WeeklyRevenue is the revenue trend over the ISO weeks with sales,
// sorted ascending.
type WeeklyRevenue struct {
	Weeks []WeekRevenue `json:"weeks"`
}

// CountrySales decomposes revenue against the per-country target:
// achieved = min(revenue, target), over and under are the positive
// remainders on either side.
type CountrySales struct {
	Country  string  `json:"country"`
	Revenue  float64 `json:"revenue"`
	Target   float64 `json:"target"`
	Achieved float64 `json:"achieved"`
	Over     float64 `json:"over"`
	Under    float64 `json:"under"`
}

// SalesByCountry lists revenue vs target per configured country.
type SalesByCountry struct {
	Countries []CountrySales `json:"countries"`
}

// EmployeeSales is the attributed performance of one sales employee.
type EmployeeSales struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
}

// EmployeePerformance lists per-employee attributed sales totals.
// Sales without a recognized promo code are reported as Unattributed.
type EmployeePerformance struct {
	Employees    []EmployeeSales `json:"employees"`
	Unattributed int             `json:"unattributed"`
}

// ProductActivity contrasts page views with purchases for one product.
type ProductActivity struct {
	Product   string  `json:"product"`
	Views     int     `json:"views"`
	Purchases int     `json:"purchases"`
	Revenue   float64 `json:"revenue"`
}

// ProductPerformance lists views-vs-purchases per catalog product.
type ProductPerformance struct {
	Products []ProductActivity `json:"products"`
}

// VirtualAssistantShare is the share of requests touching the
// virtual-assistant feature, compared against its adoption target.
type VirtualAssistantShare struct {
	Requests int         `json:"requests"`
	Total    int         `json:"total"`
	Share    float64     `json:"share"`
	Gauge    GaugeStatus `json:"gauge"`
}

// AgentCount is one entry of the top user-agent ranking.
type AgentCount struct {
	UserAgent string `json:"user_agent"`
	Requests  int    `json:"requests"`
}

// TopAgents ranks the most frequent user agents.
type TopAgents struct {
	Agents []AgentCount `json:"agents"`
}

// YearList enumerates the distinct years present in the store, ascending.
type YearList struct {
	Years []int `json:"years"`
}

// HealthStatus is the health check response.
type HealthStatus struct {
	Status  string  `json:"status"`
	Version string  `json:"version"`
	Records int     `json:"records"`
	Uptime  float64 `json:"uptime_seconds"`
}

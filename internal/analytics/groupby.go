// AI Solutions Dashboard - Web Access Log Analytics and Sales Insights
// Copyright 2026 THB213
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/THB213/AI-Solutions-Dashboard

package analytics

import (
	"sort"

	"github.com/THB213/AI-Solutions-Dashboard/internal/models"
)

// keyFunc extracts the grouping key for a record. The second return
// excludes the record from the group entirely.
type keyFunc[K comparable] func(*models.LogRecord) (K, bool)

// countBy folds records into per-key counts. The returned order slice
// holds keys in first-seen order, which top-N rankings rely on for stable
// ties.
func countBy[K comparable](recs []models.LogRecord, key keyFunc[K]) (map[K]int, []K) {
	counts := make(map[K]int)
	var order []K
	for i := range recs {
		k, ok := key(&recs[i])
		if !ok {
			continue
		}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	return counts, order
}

// sumBy folds records into per-key sums of val.
func sumBy[K comparable](recs []models.LogRecord, key keyFunc[K], val func(*models.LogRecord) float64) map[K]float64 {
	sums := make(map[K]float64)
	for i := range recs {
		k, ok := key(&recs[i])
		if !ok {
			continue
		}
		sums[k] += val(&recs[i])
	}
	return sums
}

// distinctBy folds records into per-key sets of a secondary dimension,
// typically the client IP.
func distinctBy[K comparable](recs []models.LogRecord, key keyFunc[K], dim func(*models.LogRecord) string) map[K]map[string]struct{} {
	sets := make(map[K]map[string]struct{})
	for i := range recs {
		k, ok := key(&recs[i])
		if !ok {
			continue
		}
		set := sets[k]
		if set == nil {
			set = make(map[string]struct{})
			sets[k] = set
		}
		set[dim(&recs[i])] = struct{}{}
	}
	return sets
}

// topKeys ranks keys by descending count, keeping first-seen order for
// ties, and returns at most n keys.
func topKeys[K comparable](counts map[K]int, order []K, n int) []K {
	ranked := make([]K, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

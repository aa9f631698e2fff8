// AI Solutions Dashboard - Web Access Log Analytics and Sales Insights
// Copyright 2026 THB213
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/THB213/AI-Solutions-Dashboard

package analytics

import (
	"testing"
	"time"

	"github.com/THB213/AI-Solutions-Dashboard/internal/models"
)

func groupRecords() []models.LogRecord {
	return []models.LogRecord{
		rec("1.1.1.1", "GET", "/b", ts(2024, time.May, 1, 0)),
		rec("2.2.2.2", "GET", "/a", ts(2024, time.May, 1, 1)),
		rec("1.1.1.1", "GET", "/a", ts(2024, time.May, 1, 2)),
		rec("3.3.3.3", "POST", "/c", ts(2024, time.May, 1, 3)),
	}
}

func TestCountBy(t *testing.T) {
	counts, order := countBy(groupRecords(), func(r *models.LogRecord) (string, bool) {
		return r.Path, true
	})

	if counts["/a"] != 2 || counts["/b"] != 1 || counts["/c"] != 1 {
		t.Errorf("counts = %v, want /a 2, /b 1, /c 1", counts)
	}
	if len(order) != 3 || order[0] != "/b" || order[1] != "/a" || order[2] != "/c" {
		t.Errorf("order = %v, want first-seen [/b /a /c]", order)
	}
}

func TestCountBy_ExcludedRecords(t *testing.T) {
	counts, order := countBy(groupRecords(), func(r *models.LogRecord) (string, bool) {
		return r.Path, r.Method == "POST"
	})

	if len(counts) != 1 || counts["/c"] != 1 {
		t.Errorf("counts = %v, want only /c", counts)
	}
	if len(order) != 1 {
		t.Errorf("order = %v, want only /c", order)
	}
}

func TestSumBy(t *testing.T) {
	sums := sumBy(groupRecords(),
		func(r *models.LogRecord) (string, bool) { return r.Method, true },
		func(r *models.LogRecord) float64 { return 10 },
	)

	if sums["GET"] != 30 || sums["POST"] != 10 {
		t.Errorf("sums = %v, want GET 30, POST 10", sums)
	}
}

func TestDistinctBy(t *testing.T) {
	sets := distinctBy(groupRecords(),
		func(r *models.LogRecord) (string, bool) { return r.Path, true },
		func(r *models.LogRecord) string { return r.IP },
	)

	if len(sets["/a"]) != 2 {
		t.Errorf("distinct IPs for /a = %d, want 2", len(sets["/a"]))
	}
	if len(sets["/b"]) != 1 {
		t.Errorf("distinct IPs for /b = %d, want 1", len(sets["/b"]))
	}
}

func TestTopKeys(t *testing.T) {
	counts := map[string]int{"a": 3, "b": 1, "c": 3, "d": 2}
	order := []string{"b", "c", "d", "a"}

	top := topKeys(counts, order, 3)
	// c and a tie at 3; c was seen before a and stays ahead.
	want := []string{"c", "a", "d"}
	if len(top) != 3 {
		t.Fatalf("topKeys returned %v, want %v", top, want)
	}
	for i := range want {
		if top[i] != want[i] {
			t.Errorf("topKeys[%d] = %q, want %q", i, top[i], want[i])
		}
	}
}

func TestTopKeys_FewerThanN(t *testing.T) {
	top := topKeys(map[string]int{"a": 1}, []string{"a"}, 5)
	if len(top) != 1 {
		t.Errorf("topKeys returned %d keys, want 1", len(top))
	}
}

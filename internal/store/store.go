// AI Solutions Dashboard - Web Access Log Analytics and Sales Insights
// Copyright 2026 THB213
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/THB213/AI-Solutions-Dashboard

// Package store holds parsed log records in memory.
//
// The store is append-only: uploads add records, nothing removes them while
// the process lives. Re-uploading a file appends duplicates; deduplication
// is intentionally not performed. An RWMutex makes the store safe for the
// concurrent upload/read pattern of the HTTP server.
package store

import (
	"sort"
	"sync"

	"github.com/THB213/AI-Solutions-Dashboard/internal/models"
)

// Predicate selects records during a Query scan.
type Predicate func(*models.LogRecord) bool

// Store is the in-memory record store.
type Store struct {
	mu      sync.RWMutex
	records []models.LogRecord
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Append adds one record.
func (s *Store) Append(rec models.LogRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

// AppendBatch adds all records of one ingested batch.
func (s *Store) AppendBatch(recs []models.LogRecord) {
	if len(recs) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, recs...)
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Query returns all records matching the predicate, in insertion order.
// A nil predicate matches everything.
func (s *Store) Query(pred Predicate) []models.LogRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.LogRecord, 0, len(s.records))
	for i := range s.records {
		if pred == nil || pred(&s.records[i]) {
			out = append(out, s.records[i])
		}
	}
	return out
}

// Count returns the number of records matching the predicate without
// materializing them.
func (s *Store) Count(pred Predicate) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if pred == nil {
		return len(s.records)
	}
	n := 0
	for i := range s.records {
		if pred(&s.records[i]) {
			n++
		}
	}
	return n
}

// Years returns the distinct calendar years present, ascending.
func (s *Store) Years() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[int]struct{})
	for i := range s.records {
		seen[s.records[i].Year()] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// DistinctIPs returns the number of distinct client addresses among records
// matching the predicate.
func (s *Store) DistinctIPs(pred Predicate) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for i := range s.records {
		if pred == nil || pred(&s.records[i]) {
			seen[s.records[i].IP] = struct{}{}
		}
	}
	return len(seen)
}

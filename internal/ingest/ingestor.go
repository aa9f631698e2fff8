// AI Solutions Dashboard - Web Access Log Analytics and Sales Insights
// Copyright 2026 THB213
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/THB213/AI-Solutions-Dashboard

// Package ingest reads access-log files line by line into the record store.
package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/THB213/AI-Solutions-Dashboard/internal/logging"
	"github.com/THB213/AI-Solutions-Dashboard/internal/logparse"
	"github.com/THB213/AI-Solutions-Dashboard/internal/metrics"
	"github.com/THB213/AI-Solutions-Dashboard/internal/models"
	"github.com/THB213/AI-Solutions-Dashboard/internal/store"
)

// Ingestor parses a stream of access-log lines and appends the accepted
// records to the store as one batch.
type Ingestor struct {
	parser       *logparse.Parser
	store        *store.Store
	maxLineBytes int
}

// New returns an Ingestor writing to the given store.
// maxLineBytes caps a single scanned line; lines beyond it fail the scan.
func New(parser *logparse.Parser, st *store.Store, maxLineBytes int) *Ingestor {
	return &Ingestor{
		parser:       parser,
		store:        st,
		maxLineBytes: maxLineBytes,
	}
}

// Ingest scans r line by line. Malformed lines are counted and logged but
// never abort the batch; blank lines are skipped entirely. Accepted records
// are appended to the store in input order after the scan completes.
//
// Re-ingesting the same file appends duplicate records; the store does not
// deduplicate.
//
// A non-nil error is returned only for stream-level failures (read error,
// line exceeding the configured cap, context cancellation); the summary is
// still valid for everything scanned up to that point.
func (ing *Ingestor) Ingest(ctx context.Context, r io.Reader) (models.IngestSummary, error) {
	start := time.Now()
	summary := models.IngestSummary{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), ing.maxLineBytes)

	var batch []models.LogRecord
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return ing.finish(summary, batch, start), fmt.Errorf("ingest canceled: %w", err)
		}

		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		rec, err := ing.parser.Parse(line)
		if err != nil {
			summary.Rejected++
			metrics.IngestLinesRejected.Inc()
			logging.Ctx(ctx).Debug().
				Int("line", lineNo).
				Err(err).
				Msg("Rejected log line")
			continue
		}

		batch = append(batch, rec)
		summary.Accepted++
		metrics.IngestLinesAccepted.Inc()
	}

	if err := scanner.Err(); err != nil {
		return ing.finish(summary, batch, start), fmt.Errorf("scan log stream: %w", err)
	}

	out := ing.finish(summary, batch, start)
	logging.Ctx(ctx).Info().
		Int("accepted", out.Accepted).
		Int("rejected", out.Rejected).
		Int("store_total", out.StoreTotal).
		Msg("Batch ingested")
	return out, nil
}

// finish appends the batch and completes the summary and metrics.
func (ing *Ingestor) finish(summary models.IngestSummary, batch []models.LogRecord, start time.Time) models.IngestSummary {
	ing.store.AppendBatch(batch)
	summary.StoreTotal = ing.store.Len()
	metrics.StoreRecords.Set(float64(summary.StoreTotal))
	metrics.IngestDuration.Observe(time.Since(start).Seconds())
	return summary
}

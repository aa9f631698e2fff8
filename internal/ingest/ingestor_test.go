// AI Solutions Dashboard - Web Access Log Analytics and Sales Insights
// Copyright 2026 THB213
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/THB213/AI-Solutions-Dashboard

package ingest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/THB213/AI-Solutions-Dashboard/internal/logparse"
	"github.com/THB213/AI-Solutions-Dashboard/internal/store"
)

const testMaxLineBytes = 1 << 20

func newTestIngestor() (*Ingestor, *store.Store) {
	st := store.New()
	return New(logparse.New(), st, testMaxLineBytes), st
}

// sampleLog mixes two valid lines, one malformed line and blank lines.
const sampleLog = `168.167.104.22 - - [12/Mar/2024:14:23:01 +0200] "GET /solutions/smart-assist/ HTTP/1.1" 200 5321 "https://www.google.com/" "Mozilla/5.0"

this line is not an access log entry
102.65.3.10 - - [12/Mar/2024:14:25:44 +0200] "POST /solutions/smart-assist/?promo_code=BOTSALE1 HTTP/1.1" 200 310 "-" "Mozilla/5.0"
`

func TestIngest_MixedBatch(t *testing.T) {
	ing, st := newTestIngestor()

	summary, err := ing.Ingest(context.Background(), strings.NewReader(sampleLog))
	if err != nil {
		t.Fatalf("Ingest() returned error: %v", err)
	}

	if summary.Accepted != 2 {
		t.Errorf("Accepted = %d, want 2", summary.Accepted)
	}
	if summary.Rejected != 1 {
		t.Errorf("Rejected = %d, want 1", summary.Rejected)
	}
	if summary.StoreTotal != 2 {
		t.Errorf("StoreTotal = %d, want 2", summary.StoreTotal)
	}
	if st.Len() != 2 {
		t.Errorf("store Len() = %d, want 2", st.Len())
	}

	recs := st.Query(nil)
	if recs[0].IP != "168.167.104.22" || recs[1].IP != "102.65.3.10" {
		t.Errorf("records out of input order: %q, %q", recs[0].IP, recs[1].IP)
	}
	if recs[1].PromoCode != "BOTSALE1" {
		t.Errorf("PromoCode = %q, want BOTSALE1", recs[1].PromoCode)
	}
}

func TestIngest_ReingestAppendsDuplicates(t *testing.T) {
	ing, st := newTestIngestor()

	if _, err := ing.Ingest(context.Background(), strings.NewReader(sampleLog)); err != nil {
		t.Fatalf("first Ingest() returned error: %v", err)
	}
	summary, err := ing.Ingest(context.Background(), strings.NewReader(sampleLog))
	if err != nil {
		t.Fatalf("second Ingest() returned error: %v", err)
	}

	if summary.Accepted != 2 {
		t.Errorf("second batch Accepted = %d, want 2", summary.Accepted)
	}
	if summary.StoreTotal != 4 {
		t.Errorf("StoreTotal after re-ingest = %d, want 4", summary.StoreTotal)
	}
	if st.Len() != 4 {
		t.Errorf("store Len() = %d, want 4 (no deduplication)", st.Len())
	}
}

func TestIngest_EmptyStream(t *testing.T) {
	ing, _ := newTestIngestor()

	summary, err := ing.Ingest(context.Background(), strings.NewReader(""))
	if err != nil {
		t.Fatalf("Ingest() returned error: %v", err)
	}
	if summary.Accepted != 0 || summary.Rejected != 0 || summary.StoreTotal != 0 {
		t.Errorf("summary = %+v, want all zero", summary)
	}
}

func TestIngest_BlankLinesSkippedEntirely(t *testing.T) {
	ing, _ := newTestIngestor()

	summary, err := ing.Ingest(context.Background(), strings.NewReader("\n\n   \n\t\n"))
	if err != nil {
		t.Fatalf("Ingest() returned error: %v", err)
	}
	if summary.Accepted != 0 || summary.Rejected != 0 {
		t.Errorf("blank lines counted: %+v, want accepted 0 rejected 0", summary)
	}
}

func TestIngest_CanceledContext(t *testing.T) {
	ing, _ := newTestIngestor()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ing.Ingest(ctx, strings.NewReader(sampleLog))
	if err == nil {
		t.Fatal("Ingest() with canceled context succeeded, want error")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Ingest() error = %v, want context.Canceled in the chain", err)
	}
}

// failingReader errors after yielding its prefix.
type failingReader struct {
	data string
	read bool
}

var errBrokenStream = errors.New("broken stream")

func (f *failingReader) Read(p []byte) (int, error) {
	if !f.read {
		f.read = true
		return copy(p, f.data), nil
	}
	return 0, errBrokenStream
}

func TestIngest_StreamErrorKeepsScannedRecords(t *testing.T) {
	ing, st := newTestIngestor()

	line := `168.167.104.22 - - [12/Mar/2024:14:23:01 +0200] "GET / HTTP/1.1" 200 100 "-" "ua"` + "\n"
	summary, err := ing.Ingest(context.Background(), &failingReader{data: line})
	if err == nil {
		t.Fatal("Ingest() over a failing reader succeeded, want error")
	}
	if !errors.Is(err, errBrokenStream) {
		t.Errorf("Ingest() error = %v, want wrapped stream error", err)
	}

	// Everything scanned before the failure is still committed.
	if summary.Accepted != 1 {
		t.Errorf("Accepted = %d, want 1", summary.Accepted)
	}
	if st.Len() != 1 {
		t.Errorf("store Len() = %d, want 1", st.Len())
	}
}

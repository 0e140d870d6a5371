package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/studiowebux/playperf/internal/stats"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "playperf.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndListRuns(t *testing.T) {
	s := openTestStore(t)

	overall := stats.NewSummary(false)
	overall.UpdateResolving(10)

	perURL := map[string]*stats.Summary{
		"http://a.com/8KB": stats.NewSummary(false),
	}

	cfg := RunConfig{Clients: 2, RecvLen: 8192, IntervalUs: 0, TimeoutS: 10}
	runID, err := s.SaveRun(time.Now(), cfg, overall, perURL)
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if runID == 0 {
		t.Fatalf("expected non-zero run id")
	}

	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Clients != 2 {
		t.Errorf("Clients = %d, want 2", runs[0].Clients)
	}

	summaries, err := s.URLSummaries(runID)
	if err != nil {
		t.Fatalf("URLSummaries: %v", err)
	}
	if _, ok := summaries["http://a.com/8KB"]; !ok {
		t.Errorf("expected a summary line for http://a.com/8KB, got %v", summaries)
	}
}

func TestListRunsOrdersNewestFirst(t *testing.T) {
	s := openTestStore(t)
	overall := stats.NewSummary(false)

	older := time.Now().Add(-time.Hour)
	newer := time.Now()

	if _, err := s.SaveRun(older, RunConfig{Clients: 1}, overall, nil); err != nil {
		t.Fatalf("SaveRun older: %v", err)
	}
	if _, err := s.SaveRun(newer, RunConfig{Clients: 3}, overall, nil); err != nil {
		t.Fatalf("SaveRun newer: %v", err)
	}

	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 || runs[0].Clients != 3 {
		t.Fatalf("expected newest run (clients=3) first, got %+v", runs)
	}
}

package stats

import (
	"strings"
	"testing"
)

func TestSummaryLineAllUnset(t *testing.T) {
	s := NewSummary(false)
	line := s.Line()
	if strings.Count(line, "-") < 15 {
		t.Errorf("expected every unset gauge to render '-', got: %s", line)
	}
	if !strings.Contains(line, "err (resolve/connect/request/recv/bad_http/timeout/early_eof): 0/0/0/0/0/0/0") {
		t.Errorf("expected zeroed error vector, got: %s", line)
	}
}

func TestSummaryUpdateAndErrorVector(t *testing.T) {
	s := NewSummary(false)
	s.UpdateResolving(10)
	s.UpdateConnecting(5)
	s.UpdateRecvHeader(3)
	s.UpdateFirstChunk(1)
	s.UpdateThroughput(2048, 100)
	s.UpdateError(ErrBadHTTP)
	s.UpdateError(ErrBadHTTP)
	s.UpdateError(ErrorKind(999)) // out of range, ignored

	if s.ErrorCount(ErrBadHTTP) != 2 {
		t.Errorf("ErrorCount(BadHTTP) = %d, want 2", s.ErrorCount(ErrBadHTTP))
	}
	line := s.Line()
	if !strings.Contains(line, "2/0/0") {
		t.Errorf("expected bad_http=2 in error vector, got: %s", line)
	}
}

func TestSummaryDetailSeriesAndCSV(t *testing.T) {
	s := NewSummary(true)
	s.UpdateResolving(10)
	s.UpdateResolving(20)
	s.UpdateConnecting(5)

	var buf strings.Builder
	if err := s.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 { // header + 2 rows (resolve has 2 samples)
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "resolve cost (ms),connect cost (ms),recvhdr cost (ms),1stchunk cost (ms)" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != "10,5,," {
		t.Errorf("unexpected first row: %q", lines[1])
	}
	if lines[2] != "20,,," {
		t.Errorf("unexpected second row: %q", lines[2])
	}
}

func TestSummarySnapshotReflectsUpdates(t *testing.T) {
	s := NewSummary(false)
	s.UpdateResolving(10)
	s.UpdateError(ErrBadHTTP)

	snap := s.Snapshot()
	if snap.Resolve.Value() != "10" {
		t.Errorf("Snapshot Resolve.Value() = %q, want 10", snap.Resolve.Value())
	}
	if snap.ErrorCount(ErrBadHTTP) != 1 {
		t.Errorf("Snapshot ErrorCount(BadHTTP) = %d, want 1", snap.ErrorCount(ErrBadHTTP))
	}

	s.UpdateResolving(999)
	if snap.Resolve.Value() != "10" {
		t.Errorf("Snapshot should not observe updates made after it was taken")
	}
}

func TestSummaryDetailDisabledDoesNotRecordSeries(t *testing.T) {
	s := NewSummary(false)
	s.UpdateResolving(10)
	if s.resolveSeries.Len() != 0 {
		t.Errorf("expected no series capture when detail disabled")
	}
}

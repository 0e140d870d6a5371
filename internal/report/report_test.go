package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/studiowebux/playperf/internal/stats"
)

func TestPrintTextIncludesOverallAndEachURL(t *testing.T) {
	overall := stats.NewSummary(false)
	overall.UpdateResolving(10)

	perURL := map[string]*stats.Summary{
		"http://a.com/": stats.NewSummary(false),
		"http://b.com/": stats.NewSummary(false),
	}

	var buf strings.Builder
	PrintText(&buf, overall, perURL)
	out := buf.String()

	for _, want := range []string{"Overall", "http://a.com/", "http://b.com/"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestWriteDetailCSVsSkipsSummariesWithoutDetail(t *testing.T) {
	dir := t.TempDir()

	withDetail := stats.NewSummary(true)
	withDetail.UpdateResolving(5)
	withoutDetail := stats.NewSummary(false)
	withoutDetail.UpdateResolving(5)

	perURL := map[string]*stats.Summary{
		"http://a.com/8KB": withDetail,
		"http://b.com/8KB": withoutDetail,
	}

	if err := WriteDetailCSVs(dir, perURL); err != nil {
		t.Fatalf("WriteDetailCSVs: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, stats.CSVFilename("http://a.com/8KB"))); err != nil {
		t.Errorf("expected CSV for detailed summary: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, stats.CSVFilename("http://b.com/8KB"))); !os.IsNotExist(err) {
		t.Errorf("expected no CSV for non-detailed summary, stat err = %v", err)
	}
}

// Package report renders run results to the terminal and to CSV files.
// Text rendering is a thin wrapper around Summary.Line; the lipgloss
// styling here is purely presentational and never changes the underlying
// values.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/playperf/internal/stats"
)

var (
	styleHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"})
	styleURL     = lipgloss.NewStyle().Bold(true)
)

// PrintText writes the overall Summary and each per-URL Summary to w, in a
// stable (sorted) URL order so output is reproducible across runs.
func PrintText(w io.Writer, overall *stats.Summary, perURL map[string]*stats.Summary) {
	fmt.Fprintln(w, styleHeading.Render("Overall"))
	fmt.Fprintln(w, overall.Line())
	fmt.Fprintln(w)

	urls := make([]string, 0, len(perURL))
	for u := range perURL {
		urls = append(urls, u)
	}
	sort.Strings(urls)

	for _, u := range urls {
		fmt.Fprintln(w, styleURL.Render(u))
		fmt.Fprintln(w, perURL[u].Line())
		fmt.Fprintln(w)
	}
}

// WriteDetailCSVs writes one CSV file per URL whose Summary has detail
// capture enabled, named per stats.CSVFilename. It reports the first error
// encountered but still attempts every file.
func WriteDetailCSVs(dir string, perURL map[string]*stats.Summary) error {
	var firstErr error
	for url, s := range perURL {
		if !s.DetailEnabled() {
			continue
		}
		path := filepath.Join(dir, stats.CSVFilename(url))
		if err := writeCSVFile(path, s); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("write csv for %q: %w", url, err)
		}
	}
	return firstErr
}

func writeCSVFile(path string, s *stats.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.WriteCSV(f)
}

package stats

import "strconv"

// Series is an append-only, ordered sequence of millisecond samples
// captured for CSV export when detail mode is enabled.
type Series struct {
	name    string
	samples []int32
}

// NewSeries creates an empty series with the given CSV column header.
func NewSeries(name string) Series {
	return Series{name: name}
}

// Append records one more sample.
func (s *Series) Append(v int32) {
	s.samples = append(s.samples, v)
}

// Len returns the number of recorded samples.
func (s *Series) Len() int {
	return len(s.samples)
}

// Name returns the CSV column header for this series.
func (s *Series) Name() string {
	return s.name
}

// At returns the string form of sample i, or "" past the end of the series.
func (s *Series) At(i int) string {
	if i < 0 || i >= len(s.samples) {
		return ""
	}
	return strconv.FormatInt(int64(s.samples[i]), 10)
}

package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"sync"
)

// Summary bundles the four latency gauges, the throughput gauge, the error
// histogram, and (when detail is enabled) the four per-sample series that
// back CSV export. One Summary is kept per URL plus one overall.
//
// A single Summary is written by exactly one goroutine (Arena's dispatcher)
// but may be polled concurrently by a live progress view; mu guards every
// field below it.
type Summary struct {
	detail bool

	mu sync.Mutex

	Resolve    Avg
	Connect    Avg
	RecvHeader Avg
	FirstChunk Avg
	Throughput Avg

	resolveSeries    Series
	connectSeries    Series
	recvHeaderSeries Series
	firstChunkSeries Series

	errors [errorKindCount]uint64
}

// Snapshot is a locked, self-contained copy of a Summary's gauges and error
// counts, safe to read from a goroutine other than the one mutating the
// Summary (e.g. the live progress view).
type Snapshot struct {
	Resolve    Avg
	Connect    Avg
	RecvHeader Avg
	FirstChunk Avg
	Throughput Avg

	errors [errorKindCount]uint64
}

// ErrorCount returns how many times kind was recorded at snapshot time.
func (sn Snapshot) ErrorCount(kind ErrorKind) uint64 {
	if !kind.valid() {
		return 0
	}
	return sn.errors[kind]
}

// NewSummary creates an empty Summary. detail controls whether latency
// samples are appended to the per-sample series for CSV export.
func NewSummary(detail bool) *Summary {
	return &Summary{
		detail:           detail,
		resolveSeries:    NewSeries("resolve cost (ms)"),
		connectSeries:    NewSeries("connect cost (ms)"),
		recvHeaderSeries: NewSeries("recvhdr cost (ms)"),
		firstChunkSeries: NewSeries("1stchunk cost (ms)"),
	}
}

// UpdateResolving records one DNS-resolution latency sample.
func (s *Summary) UpdateResolving(durMs int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Resolve.Update(1, int64(durMs))
	if s.detail {
		s.resolveSeries.Append(durMs)
	}
}

// UpdateConnecting records one TCP-connect latency sample.
func (s *Summary) UpdateConnecting(durMs int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Connect.Update(1, int64(durMs))
	if s.detail {
		s.connectSeries.Append(durMs)
	}
}

// UpdateRecvHeader records one response-header latency sample.
func (s *Summary) UpdateRecvHeader(durMs int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.RecvHeader.Update(1, int64(durMs))
	if s.detail {
		s.recvHeaderSeries.Append(durMs)
	}
}

// UpdateFirstChunk records one first-body-byte latency sample.
func (s *Summary) UpdateFirstChunk(durMs int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FirstChunk.Update(1, int64(durMs))
	if s.detail {
		s.firstChunkSeries.Append(durMs)
	}
}

// UpdateThroughput folds one streaming window into the bytes-per-ms gauge.
func (s *Summary) UpdateThroughput(bytes uint64, durMs int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Throughput.Update(int64(durMs), int64(bytes))
}

// UpdateError increments the error histogram. Kinds outside the known
// range are silently ignored.
func (s *Summary) UpdateError(kind ErrorKind) {
	if !kind.valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors[kind]++
}

// ErrorCount returns how many times kind has been recorded.
func (s *Summary) ErrorCount(kind ErrorKind) uint64 {
	if !kind.valid() {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errors[kind]
}

// Snapshot copies the gauges and error histogram under lock, for readers
// (the live progress view) that run on a different goroutine than the one
// mutating this Summary.
func (s *Summary) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Resolve:    s.Resolve,
		Connect:    s.Connect,
		RecvHeader: s.RecvHeader,
		FirstChunk: s.FirstChunk,
		Throughput: s.Throughput,
		errors:     s.errors,
	}
}

// Line renders the textual summary line.
func (s *Summary) Line() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf(
		"resolve (avg/max/min): %s/%s/%s (ms)"+
			"  connect (avg/max/min): %s/%s/%s (ms)"+
			"  recvhdr (avg/max/min): %s/%s/%s (ms)"+
			"  first_chunk (avg/max/min): %s/%s/%s (ms)"+
			"  bps (avg/max/min): %s/%s/%s (KB/s)"+
			"  err (resolve/connect/request/recv/bad_http/timeout/early_eof): %d/%d/%d/%d/%d/%d/%d",
		s.Resolve.Value(), s.Resolve.Max(), s.Resolve.Min(),
		s.Connect.Value(), s.Connect.Max(), s.Connect.Min(),
		s.RecvHeader.Value(), s.RecvHeader.Max(), s.RecvHeader.Min(),
		s.FirstChunk.Value(), s.FirstChunk.Max(), s.FirstChunk.Min(),
		s.Throughput.Value(), s.Throughput.Max(), s.Throughput.Min(),
		s.errors[ErrOnResolve], s.errors[ErrOnConnect], s.errors[ErrOnRequest],
		s.errors[ErrOnRecv], s.errors[ErrBadHTTP], s.errors[ErrTimeoutForNoData],
		s.errors[ErrEarlyEOF],
	)
}

// WriteCSV emits the four detail series as columns, one header row followed
// by one row per sample index, with empty cells past the end of a shorter
// series. LF line endings.
func (s *Summary) WriteCSV(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cw := csv.NewWriter(w)

	if err := cw.Write([]string{
		s.resolveSeries.Name(),
		s.connectSeries.Name(),
		s.recvHeaderSeries.Name(),
		s.firstChunkSeries.Name(),
	}); err != nil {
		return err
	}

	rows := s.resolveSeries.Len()
	for _, n := range []int{s.connectSeries.Len(), s.recvHeaderSeries.Len(), s.firstChunkSeries.Len()} {
		if n > rows {
			rows = n
		}
	}

	for i := 0; i < rows; i++ {
		if err := cw.Write([]string{
			s.resolveSeries.At(i),
			s.connectSeries.At(i),
			s.recvHeaderSeries.At(i),
			s.firstChunkSeries.At(i),
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// DetailEnabled reports whether this Summary is capturing per-sample series.
func (s *Summary) DetailEnabled() bool {
	return s.detail
}

/*
Package stats implements the running aggregates the arena reports at the
end of a run.

# Overview

Two pieces compose the aggregation model:

  - Avg: a weighted running average with min/max tracking, used for the
    four latency gauges (resolve, connect, recv-header, first-chunk) and
    the throughput gauge (bytes per millisecond).
  - Summary: a bundle of five Avg gauges, an error-count vector indexed
    by ErrorKind, and — when detail capture is enabled — four Series of
    raw per-sample millisecond values for CSV export.

Summary is shared between the Arena's overall aggregate and its per-URL
map; every mutation goes through the single dispatcher goroutine in
package arena. Summary still guards its fields with a mutex so a live
progress view can read it concurrently through Snapshot.

# Rendering

Value renders as "-" for an Avg that was never updated. WriteCSV emits
one row per sample index across the four detail series, using an empty
cell where a series is shorter than the row count.
*/
package stats

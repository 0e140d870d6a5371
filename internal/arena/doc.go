/*
Package arena implements the launcher, event dispatcher, and shutdown
coordinator that turns a set of Sessions into per-URL and overall Summaries.

# Serialized aggregation across goroutines

Each Session runs on its own goroutine (package session) doing blocking
I/O, so Arena implements session.Observer with methods that do no
aggregation work themselves, just enqueue an event onto a channel. One
dispatcher goroutine drains that channel and is the only goroutine that
ever mutates a stats.Summary directly; a live progress view instead reads
through Summary.Snapshot, which takes its own lock.

# Lifecycle bookkeeping

A small sessions map (guarded by a mutex, since it's written from the
launcher goroutine and read/deleted from the dispatcher goroutine) tracks
which per-URL Summary each live session belongs to and enforces
terminate-exactly-once: cap-triggered termination, OnFinished, and OnError
all funnel through terminate, which is a no-op for a session no longer
present in the map.
*/
package arena

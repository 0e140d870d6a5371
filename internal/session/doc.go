/*
Package session implements the per-connection HTTP GET download state
machine.

# State machine

A Session progresses through RESOLVING (skipped for literal IP hosts),
CONNECTING, REQUESTING, RECV_HEADER, FIRST_CHUNK, and STREAMING, reporting
one phase-timed event per transition to an Observer. It is expressed here
as a single goroutine that runs its suspension points (resolve, dial,
write, read) sequentially, rather than as a chain of completion handlers.

# Observer dispatch and concurrency

Session calls Observer methods directly from its own goroutine (the
inactivity timeout error comes from a separate watchdog goroutine). The
implementation the arena package supplies does no aggregation work inline;
it enqueues onto a single channel drained by one dispatcher goroutine, so
one Summary is only ever mutated from that one goroutine. A live progress
view reading the same Summary concurrently goes through Summary.Snapshot,
which takes its own lock, keeping Session itself free of any dependency on
how events are consumed.

# Cancellation

Disconnect is idempotent: it closes the socket (unblocking any pending
Read) and cancels the session's context (unblocking any pending resolve or
dial). Once closed, no further event is emitted — a racing read that
returns just after Disconnect sees a closed connection and is swallowed.
*/
package session

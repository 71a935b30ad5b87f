// Package status implements the background polling half of vigil.
//
// A Poller runs on its own goroutine, fetching a statuspage-shaped
// components feed (and optionally an unresolved-incidents feed) once per
// interval. Each cycle produces an immutable Snapshot: the filtered
// component list, an overall severity classification, and a flag saying
// whether any component changed state since the last published cycle.
//
// # Handoff
//
// Snapshots cross into the rendering goroutine through a Mailbox: a
// single-slot, latest-wins buffer. Publish overwrites any unconsumed
// snapshot; TryTake copies the slot out without blocking. Intermediate
// snapshots may be dropped when the consumer is slow, which is fine for a
// status display (freshness beats history). No live references cross the
// goroutine boundary, only copies.
//
// # Failure model
//
// Transport errors, non-2xx responses, and malformed payloads never stop
// the poller. They degrade to an invalid Snapshot whose StatusLine carries
// a human-readable reason, and the loop tries again next interval. A
// decode failure on the incidents feed is treated as "no unresolved
// incidents" so a transient parse hiccup cannot raise severity on its own.
package status

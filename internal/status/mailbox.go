package status

import "sync"

// Mailbox is a single-slot, latest-wins handoff buffer between the poller
// goroutine and the rendering goroutine. It holds zero or one unconsumed
// Snapshot plus a "has new data" flag.
//
// Both sides use a bounded lock acquisition (TryLock): a publisher that
// cannot get the lock abandons the attempt and retries next cycle, and a
// consumer that cannot get the lock just polls again next frame. Neither
// side ever blocks indefinitely on the other.
type Mailbox struct {
	mu     sync.Mutex
	slot   Snapshot
	hasNew bool
}

// NewMailbox returns an empty mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// Publish overwrites the slot with a copy of s and marks it unconsumed.
// Returns false if the lock could not be acquired; the caller should treat
// that as "retry next cycle" rather than waiting.
func (m *Mailbox) Publish(s Snapshot) bool {
	if !m.mu.TryLock() {
		return false
	}
	defer m.mu.Unlock()

	m.slot = s.Clone()
	m.hasNew = true
	return true
}

// TryTake copies out the unconsumed snapshot and clears the flag, or
// returns false without blocking if there is nothing new (or the lock is
// momentarily held by the publisher).
func (m *Mailbox) TryTake() (Snapshot, bool) {
	if !m.mu.TryLock() {
		return Snapshot{}, false
	}
	defer m.mu.Unlock()

	if !m.hasNew {
		return Snapshot{}, false
	}
	m.hasNew = false
	return m.slot.Clone(), true
}

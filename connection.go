package sigslot

import "sync/atomic"

// nextConnectionID is the source of connection identifiers for all signals
// in the process. Atomic increments keep identifiers unique under concurrent
// Connect calls across signal instances; identifiers are monotonically
// increasing and never reused.
var nextConnectionID atomic.Uint64

// record is the shared state behind one signal-slot attachment. It is
// referenced both from the owning Signal's collection and from every
// Connection handle copied from the original, and it stays reachable until
// the last of those holders drops it. The record never keeps the Signal
// alive.
type record[T any] struct {
	id   uint64
	slot func(T)

	// valid is true from creation until the record is disconnected, either
	// individually or as part of DisconnectAll/Close. The transition is
	// one-way and idempotent.
	valid atomic.Bool

	// owner routes Connection.Disconnect back to the signal currently
	// holding this record. It is repointed when the signal is moved and
	// severed when the record is invalidated, so a handle never reaches
	// into a signal that has already torn down.
	owner atomic.Pointer[Signal[T]]
}

func newRecord[T any](owner *Signal[T], slot func(T)) *record[T] {
	r := &record[T]{
		id:   nextConnectionID.Add(1),
		slot: slot,
	}
	r.valid.Store(true)
	r.owner.Store(owner)
	return r
}

// call invokes the slot if the record is still live. A record disconnected
// after the emission snapshot was taken is skipped here; a call that had
// already started when the record was invalidated runs to completion.
func (r *record[T]) call(v T) {
	if !r.valid.Load() {
		return
	}
	r.slot(v)
}

// invalidate moves the record to its terminal state and severs the owner
// back-reference. Safe to call more than once.
func (r *record[T]) invalidate() {
	r.valid.Store(false)
	r.owner.Store(nil)
}

// Connection identifies one slot's attachment to a Signal. It is a small
// copyable value; all copies refer to the same attachment. The zero value
// is an inert handle: Valid reports false and Disconnect returns false.
//
// A Connection may outlive its attachment and even the signal itself. Once
// the attachment has been severed, by Disconnect on any copy, by the
// signal's Disconnect or DisconnectAll, or by Close, the handle simply
// reports invalid; it never dangles.
type Connection[T any] struct {
	rec *record[T]
}

// Valid reports whether the attachment this handle refers to is still
// connected to its signal.
func (c Connection[T]) Valid() bool {
	return c.rec != nil && c.rec.valid.Load()
}

// Disconnect severs the attachment, asking the owning signal to remove it.
// It returns false if the attachment was already severed, including when
// the owning signal has since been closed.
func (c Connection[T]) Disconnect() bool {
	if c.rec == nil {
		return false
	}
	owner := c.rec.owner.Load()
	if owner == nil {
		return false
	}
	return owner.Disconnect(c)
}

// Equal reports whether two handles refer to the same attachment. Copies of
// a Connection compare equal to each other regardless of validity.
func (c Connection[T]) Equal(other Connection[T]) bool {
	if c.rec == nil || other.rec == nil {
		return c.rec == other.rec
	}
	return c.rec.id == other.rec.id
}

package sigslot

import "sync"

// Void is a convenience payload for signals that carry no data.
//
//	var closed sigslot.Signal[sigslot.Void]
//	closed.Emit(sigslot.Void{})
type Void = struct{}

// Signal broadcasts emitted values to every connected slot. The zero value
// is ready to use.
//
// A Signal must not be copied after first use; connections reference the
// instance they were made on. Duplicating a live collection of connections
// is not a meaningful operation. Use MoveTo to relocate a signal's
// connections to another instance.
type Signal[T any] struct {
	mu    sync.Mutex
	conns []*record[T] // insertion order; emitted in reverse
}

// New creates a Signal. Equivalent to declaring a zero-value Signal;
// provided for callers that want the pointer form directly.
func New[T any]() *Signal[T] {
	return &Signal[T]{}
}

// Connect attaches a slot to the signal. The slot will be called with the
// value of every subsequent emission until the returned Connection is
// disconnected. The slot's return values, if it is a closure over something
// that produces any, play no part in emission.
func (s *Signal[T]) Connect(slot func(T)) Connection[T] {
	rec := newRecord(s, slot)
	s.mu.Lock()
	s.conns = append(s.conns, rec)
	s.mu.Unlock()
	return Connection[T]{rec: rec}
}

// Disconnect removes the attachment identified by c from the signal.
// It returns true if the attachment was found and removed, false if it was
// already disconnected or belongs to a different signal.
func (s *Signal[T]) Disconnect(c Connection[T]) bool {
	if c.rec == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.conns {
		if rec.id == c.rec.id {
			rec.invalidate()
			s.conns = append(s.conns[:i], s.conns[i+1:]...)
			return true
		}
	}
	return false
}

// DisconnectAll severs every current attachment. Outstanding Connection
// handles immediately report invalid. The signal remains usable; new slots
// may be connected afterward.
func (s *Signal[T]) DisconnectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.conns {
		rec.invalidate()
	}
	s.conns = nil
}

// Close tears the signal down at the end of its life. Every outstanding
// Connection handle reports Valid() == false afterward, and Disconnect on
// any of them returns false without touching the signal.
func (s *Signal[T]) Close() {
	s.DisconnectAll()
}

// Emit calls every slot connected at the moment Emit is entered, passing v
// to each. Slots are called in reverse connection order: the last slot
// connected is the first one called.
//
// The signal's lock is not held while slots run, so a slot may connect,
// disconnect (itself included), or emit on this same signal. Slots
// connected during the emission are not called until the next one; slots
// disconnected during the emission are skipped from that point on.
//
// If a slot panics, the panic propagates to the caller and the remaining
// slots of this emission are not called. The panicking slot stays
// connected.
func (s *Signal[T]) Emit(v T) {
	s.mu.Lock()
	snapshot := make([]*record[T], len(s.conns))
	copy(snapshot, s.conns)
	s.mu.Unlock()

	for i := len(snapshot) - 1; i >= 0; i-- {
		snapshot[i].call(v)
	}
}

// Len returns the number of currently connected slots.
func (s *Signal[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// MoveTo relocates the signal's connections to dst. Existing Connection
// handles stay live and route through dst from then on; dst emits to them
// after its own pre-existing slots in the usual reverse-connection order.
// The receiver is left empty: emitting on it calls nothing, and connecting
// to it starts a fresh collection.
//
// MoveTo locks the source and then the destination, so two signals must not
// be moved into each other from separate goroutines at the same time.
func (s *Signal[T]) MoveTo(dst *Signal[T]) {
	if dst == nil || dst == s {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	dst.mu.Lock()
	defer dst.mu.Unlock()
	for _, rec := range s.conns {
		rec.owner.Store(dst)
	}
	dst.conns = append(dst.conns, s.conns...)
	s.conns = nil
}

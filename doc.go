// Package sigslot provides a thread-safe signal/slot primitive for
// synchronous in-process broadcast.
//
// A [Signal] holds an ordered collection of connected slots; emitting the
// signal calls every currently-connected slot with the emitted value. Each
// Connect returns a [Connection] handle that identifies that one attachment
// and can be used to query or terminate it, even after the signal itself has
// been closed or moved.
//
// # Main Types
//
//   - [Signal]: the publisher, holding connected slots and broadcasting
//     emitted values to all of them
//   - [Connection]: a copyable handle identifying one slot's attachment,
//     providing Disconnect and Valid
//   - [Bind]: adapter turning a method expression plus receiver into a slot
//
// # Thread Safety
//
// A Signal is safe for concurrent use: Connect, Disconnect, Emit, and Close
// may all be called from multiple goroutines against the same instance.
// Emission snapshots the connected slots and then calls them without holding
// the signal's lock, so slots may freely connect, disconnect (including
// disconnecting themselves), or re-emit on the same signal.
//
// Slots connected while an emission is in progress are not called during
// that emission. Slots disconnected while an emission is in progress are not
// called after the disconnect takes effect, though a slot call already
// underway is allowed to run to completion.
//
// Emission order is the reverse of connection order: the last slot connected
// is the first one called. This makes teardown-style notification natural,
// where later (more derived) subscribers observe an event before the earlier
// ones they depend on.
//
// A panicking slot propagates its panic to the Emit caller and aborts the
// remaining slot calls of that emission. The signal's state is unaffected;
// the panicking slot stays connected. Callers wanting isolation between
// handlers can use the event subpackage, which recovers and logs instead.
//
// # Basic Usage
//
//	var saved sigslot.Signal[string]
//
//	conn := saved.Connect(func(path string) {
//	    fmt.Println("saved to", path)
//	})
//
//	saved.Emit("/tmp/state.json") // prints
//
//	conn.Disconnect()
//	saved.Emit("/tmp/state.json") // silent
//
// Methods bound to a specific receiver connect through [ConnectMethod]:
//
//	conn := sigslot.ConnectMethod(&saved, recorder, (*Recorder).Record)
//
// The signal never owns the receiver; keeping it alive for the lifetime of
// the connection is the caller's responsibility.
package sigslot

package sigslot

// Bind adapts a method expression and its receiver into a slot. Every
// emitted value is forwarded to the method unchanged:
//
//	slot := sigslot.Bind(recorder, (*Recorder).Record)
//	sig.Connect(slot)
//
// The resulting closure holds recv for as long as it exists; the signal
// itself takes no ownership of the receiver, and keeping it usable for the
// lifetime of the connection is the caller's responsibility. A method value
// such as recorder.Record works directly with Connect; Bind exists for
// call sites that hold the receiver and the method expression separately.
func Bind[R, T any](recv R, method func(R, T)) func(T) {
	return func(v T) {
		method(recv, v)
	}
}

// ConnectMethod connects a method bound to a specific receiver, the
// two-argument companion to [Signal.Connect]:
//
//	conn := sigslot.ConnectMethod(&sig, recorder, (*Recorder).Record)
//
// It is a free function rather than a method because the receiver type is
// an independent type parameter.
func ConnectMethod[R, T any](s *Signal[T], recv R, method func(R, T)) Connection[T] {
	return s.Connect(Bind(recv, method))
}

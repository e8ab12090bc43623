// Package event provides a topic-keyed synchronous event bus built on the
// sigslot core.
//
// A [Bus] groups independent signals under string topics so that loosely
// coupled components can publish and subscribe without holding references to
// each other. Delivery is synchronous and in-process: Publish calls every
// matching handler on the calling goroutine before returning.
//
// # Main Types
//
//   - [Bus]: topic-keyed dispatcher; one sigslot.Signal per topic
//   - [Wildcard]: the topic matched by every publish, for logging-style
//     subscribers
//
// # Thread Safety
//
// A Bus is safe for concurrent use. Handlers run outside the bus lock, so a
// handler may subscribe, unsubscribe, or publish on the same bus. Within one
// topic, handlers are called in the core's order: last subscribed, first
// called. Topic handlers run before wildcard handlers.
//
// Unlike sigslot.Signal, the bus isolates handlers from each other: a
// panicking handler is recovered, logged with its stack, and does not stop
// delivery to the remaining handlers.
//
// # Basic Usage
//
//	bus := event.New[string]()
//
//	conn := bus.Subscribe("instance.started", func(id string) {
//	    fmt.Println("started:", id)
//	})
//	bus.SubscribeAll(func(id string) {
//	    fmt.Println("observed:", id)
//	})
//
//	bus.Publish("instance.started", "inst-1")
//
//	conn.Disconnect()
package event

package event

import (
	"log/slog"
	"sync"

	"github.com/sourcegraph/conc/panics"

	"github.com/sigkit/sigslot"
)

// Wildcard is the topic matched by every publish. Subscribing to it
// receives all events regardless of topic.
const Wildcard = "*"

// Bus is a synchronous topic-keyed event dispatcher. Each topic is backed
// by its own sigslot.Signal, created lazily on first subscription.
type Bus[T any] struct {
	mu     sync.Mutex
	topics map[string]*sigslot.Signal[T]
	logger *slog.Logger
}

// New creates an event bus.
func New[T any](opts ...Option) *Bus[T] {
	o := defaultOptions()
	o.apply(opts...)
	return &Bus[T]{
		topics: make(map[string]*sigslot.Signal[T]),
		logger: o.logger,
	}
}

// Subscribe registers a handler for a specific topic. The returned
// connection disconnects that one handler.
func (b *Bus[T]) Subscribe(topic string, handler func(T)) sigslot.Connection[T] {
	b.mu.Lock()
	sig, ok := b.topics[topic]
	if !ok {
		sig = sigslot.New[T]()
		b.topics[topic] = sig
	}
	b.mu.Unlock()
	return sig.Connect(b.safe(topic, handler))
}

// SubscribeAll registers a handler called for every published event,
// whatever its topic.
func (b *Bus[T]) SubscribeAll(handler func(T)) sigslot.Connection[T] {
	return b.Subscribe(Wildcard, handler)
}

// Unsubscribe removes a subscription. Returns true if the subscription was
// still active.
func (b *Bus[T]) Unsubscribe(c sigslot.Connection[T]) bool {
	return c.Disconnect()
}

// Publish delivers v to every handler subscribed to topic, then to every
// wildcard handler. Handlers run on the calling goroutine, outside the bus
// lock, so they may subscribe, unsubscribe, or publish in turn.
func (b *Bus[T]) Publish(topic string, v T) {
	b.mu.Lock()
	sig := b.topics[topic]
	wild := b.topics[Wildcard]
	b.mu.Unlock()

	if sig != nil {
		sig.Emit(v)
	}
	if wild != nil && topic != Wildcard {
		wild.Emit(v)
	}
}

// Clear removes all subscriptions from every topic. Outstanding connection
// handles report invalid afterward.
func (b *Bus[T]) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, sig := range b.topics {
		sig.DisconnectAll()
	}
	b.topics = make(map[string]*sigslot.Signal[T])
}

// SubscriberCount returns the total number of active subscriptions across
// all topics.
func (b *Bus[T]) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	count := 0
	for _, sig := range b.topics {
		count += sig.Len()
	}
	return count
}

// safe wraps a handler so that a panic is recovered and logged with its
// stack rather than propagated. One misbehaving handler cannot block event
// delivery to the rest.
func (b *Bus[T]) safe(topic string, handler func(T)) func(T) {
	return func(v T) {
		if r := panics.Try(func() { handler(v) }); r != nil {
			b.logger.Error("event handler panicked",
				"topic", topic,
				"panic", r.Value,
				"stack", string(r.Stack))
		}
	}
}

package event

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Event is one published occurrence on the bus.
type Event struct {
	// Topic identifies the kind of occurrence.
	Topic Topic

	// Payload carries the topic-specific event data.
	Payload any
}

// Handler processes a delivered event.
type Handler interface {
	Handle(ev Event)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ev Event)

// Handle calls the function.
func (f HandlerFunc) Handle(ev Event) {
	f(ev)
}

// Subscription is one registered handler on the bus.
type Subscription struct {
	id      string
	pattern Topic
	handler Handler
	active  bool
}

// ID returns the subscription's unique identifier.
func (s *Subscription) ID() string {
	return s.id
}

// Pattern returns the topic pattern the subscription matches.
func (s *Subscription) Pattern() Topic {
	return s.pattern
}

// IsActive returns true until the subscription is removed from the bus.
func (s *Subscription) IsActive() bool {
	return s.active
}

// Bus delivers events synchronously to matching subscriptions in
// subscription order. All methods assume the single UI-affine execution
// context; Publish may be called reentrantly from inside a handler.
type Bus struct {
	subs []*Subscription
	log  zerolog.Logger
}

// NewBus creates an empty bus.
func NewBus(log zerolog.Logger) *Bus {
	return &Bus{log: log}
}

// Subscribe registers a handler for every topic matching the pattern.
func (b *Bus) Subscribe(pattern Topic, handler Handler) *Subscription {
	sub := &Subscription{
		id:      uuid.NewString(),
		pattern: pattern,
		handler: handler,
		active:  true,
	}
	b.subs = append(b.subs, sub)
	return sub
}

// SubscribeFunc registers a function handler for the pattern.
func (b *Bus) SubscribeFunc(pattern Topic, fn HandlerFunc) *Subscription {
	return b.Subscribe(pattern, fn)
}

// Unsubscribe removes a subscription. Returns false if the subscription
// was not registered (or already removed).
func (b *Bus) Unsubscribe(sub *Subscription) bool {
	if sub == nil {
		return false
	}
	for i, s := range b.subs {
		if s == sub {
			sub.active = false
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Publish delivers the event to every matching subscription before
// returning. Handlers run on the caller's stack; a panicking handler is
// logged and delivery continues with the remaining handlers.
//
// Delivery iterates a snapshot of the subscription list, so handlers may
// subscribe and unsubscribe during delivery; an unsubscribed handler that
// was in the snapshot is skipped via its active flag.
func (b *Bus) Publish(topicName Topic, payload any) {
	if len(b.subs) == 0 {
		return
	}

	snapshot := make([]*Subscription, len(b.subs))
	copy(snapshot, b.subs)

	ev := Event{Topic: topicName, Payload: payload}
	for _, sub := range snapshot {
		if !sub.active || !topicName.Match(sub.pattern) {
			continue
		}
		b.dispatch(sub, ev)
	}
}

// SubscriberCount returns the number of active subscriptions.
func (b *Bus) SubscriberCount() int {
	return len(b.subs)
}

// dispatch invokes one handler with panic isolation.
func (b *Bus) dispatch(sub *Subscription, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error().
				Str("subscription", sub.id).
				Stringer("topic", ev.Topic).
				Interface("panic", r).
				Msg("event: handler panicked")
		}
	}()
	sub.handler.Handle(ev)
}

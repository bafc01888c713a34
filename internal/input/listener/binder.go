package listener

import (
	"github.com/modalkit/modalkit/internal/event"
	"github.com/modalkit/modalkit/internal/input/mouse"
	"github.com/modalkit/modalkit/internal/view"
)

// Binder attaches and detaches the shim's listeners as views open and
// close. Each attached view gets its own subscriptions so detaching one
// view never disturbs its siblings.
type Binder struct {
	bus       *event.Bus
	registry  *view.Registry
	selection SelectionListener
	mouse     MouseListener

	subs map[*view.View][]*event.Subscription
}

// NewBinder creates a binder delivering the given listeners.
func NewBinder(bus *event.Bus, registry *view.Registry, sel SelectionListener, m MouseListener) *Binder {
	return &Binder{
		bus:       bus,
		registry:  registry,
		selection: sel,
		mouse:     m,
		subs:      make(map[*view.View][]*event.Subscription),
	}
}

// Attach registers the view and subscribes the listeners to its native
// events. Attaching an already-attached view is a no-op.
func (b *Binder) Attach(v *view.View) {
	if _, ok := b.subs[v]; ok {
		return
	}
	b.registry.Add(v)

	subs := []*event.Subscription{
		b.bus.SubscribeFunc(view.TopicSelectionChanged, func(ev event.Event) {
			p, ok := ev.Payload.(view.SelectionChanged)
			if ok && p.View == v {
				b.selection.OnSelectionChanged(p)
			}
		}),
		b.bus.SubscribeFunc(mouse.TopicDragged, func(ev event.Event) {
			if p, ok := b.mouseEventFor(ev, v); ok {
				b.mouse.OnMouseDragged(p)
			}
		}),
		b.bus.SubscribeFunc(mouse.TopicReleased, func(ev event.Event) {
			if p, ok := b.mouseEventFor(ev, v); ok {
				b.mouse.OnMouseReleased(p)
			}
		}),
		b.bus.SubscribeFunc(mouse.TopicClicked, func(ev event.Event) {
			if p, ok := b.mouseEventFor(ev, v); ok {
				b.mouse.OnMouseClicked(p)
			}
		}),
	}
	b.subs[v] = subs
}

// Detach removes the view's subscriptions and unregisters it.
// Detaching an unknown view is a no-op.
func (b *Binder) Detach(v *view.View) {
	subs, ok := b.subs[v]
	if !ok {
		return
	}
	for _, sub := range subs {
		b.bus.Unsubscribe(sub)
	}
	delete(b.subs, v)
	b.registry.Remove(v)
}

// IsAttached returns true if the view's listeners are registered.
func (b *Binder) IsAttached(v *view.View) bool {
	_, ok := b.subs[v]
	return ok
}

// mouseEventFor unwraps a mouse event payload addressed to the view.
func (b *Binder) mouseEventFor(ev event.Event, v *view.View) (mouse.Event, bool) {
	p, ok := ev.Payload.(mouse.Event)
	if !ok || p.View != v {
		return mouse.Event{}, false
	}
	return p, true
}

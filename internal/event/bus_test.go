package event

import (
	"testing"

	"github.com/rs/zerolog"
)

func newTestBus() *Bus {
	return NewBus(zerolog.Nop())
}

func TestTopicMatch(t *testing.T) {
	tests := []struct {
		topic   Topic
		pattern Topic
		want    bool
	}{
		{"view.selection.changed", "view.selection.changed", true},
		{"view.selection.changed", "view.selection.*", true},
		{"view.selection.changed", "view.*.changed", true},
		{"view.selection.changed", "view.**", true},
		{"view.selection.changed", "**", true},
		{"view.selection.changed", "view.mouse.*", false},
		{"view.selection", "view.selection.*", false},
		{"view.selection.changed.extra", "view.selection.*", false},
		{"view", "view.**", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.topic)+"/"+string(tt.pattern), func(t *testing.T) {
			if got := tt.topic.Match(tt.pattern); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.topic, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	bus := newTestBus()

	var order []int
	bus.SubscribeFunc("a.b", func(Event) { order = append(order, 1) })
	bus.SubscribeFunc("a.*", func(Event) { order = append(order, 2) })
	bus.SubscribeFunc("other", func(Event) { order = append(order, 3) })

	bus.Publish("a.b", nil)

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("delivery order = %v, want [1 2]", order)
	}
}

func TestPublishIsSynchronousAndReentrant(t *testing.T) {
	bus := newTestBus()

	var trace []string
	bus.SubscribeFunc("outer", func(Event) {
		trace = append(trace, "outer-start")
		bus.Publish("inner", nil)
		trace = append(trace, "outer-end")
	})
	bus.SubscribeFunc("inner", func(Event) {
		trace = append(trace, "inner")
	})

	bus.Publish("outer", nil)

	want := []string{"outer-start", "inner", "outer-end"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("trace = %v, want %v", trace, want)
		}
	}
}

func TestUnsubscribeDuringDelivery(t *testing.T) {
	bus := newTestBus()

	var sub2 *Subscription
	calls := 0
	bus.SubscribeFunc("t", func(Event) {
		bus.Unsubscribe(sub2)
	})
	sub2 = bus.SubscribeFunc("t", func(Event) {
		calls++
	})

	bus.Publish("t", nil)

	if calls != 0 {
		t.Errorf("unsubscribed handler ran %d times", calls)
	}
	if sub2.IsActive() {
		t.Error("subscription should be inactive after Unsubscribe")
	}
	if bus.SubscriberCount() != 1 {
		t.Errorf("SubscriberCount() = %d, want 1", bus.SubscriberCount())
	}
}

func TestPanickingHandlerDoesNotStopDelivery(t *testing.T) {
	bus := newTestBus()

	delivered := false
	bus.SubscribeFunc("t", func(Event) { panic("listener failure") })
	bus.SubscribeFunc("t", func(Event) { delivered = true })

	bus.Publish("t", nil)

	if !delivered {
		t.Error("second handler should run after first panics")
	}
}

func TestUnsubscribeUnknown(t *testing.T) {
	bus := newTestBus()

	if bus.Unsubscribe(nil) {
		t.Error("Unsubscribe(nil) should return false")
	}

	sub := bus.SubscribeFunc("t", func(Event) {})
	if !bus.Unsubscribe(sub) {
		t.Error("first Unsubscribe should succeed")
	}
	if bus.Unsubscribe(sub) {
		t.Error("second Unsubscribe should return false")
	}
}

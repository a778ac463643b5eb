package eventsys

import "testing"

func TestPublisher_Publish_RegistrationOrder(t *testing.T) {
	sys := newTestSystem()
	sub := sys.Subscriber()

	var order []int
	for i := 0; i < 5; i++ {
		n := i
		sub.Subscribe(kindItemMoved, func(Event) { order = append(order, n) })
	}

	sys.Publisher().Publish(itemMoved{})

	if len(order) != 5 {
		t.Fatalf("expected 5 deliveries, got %d", len(order))
	}
	for i, n := range order {
		if n != i {
			t.Errorf("position %d: expected callback %d, got %d", i, i, n)
		}
	}
}

func TestPublisher_Publish_NoSubscribers(t *testing.T) {
	sys := newTestSystem()

	// A kind with zero subscriptions is a silent no-op.
	sys.Publisher().Publish(doorOpened{})
}

func TestPublisher_Publish_OnlyMatchingKind(t *testing.T) {
	sys := newTestSystem()
	sub := sys.Subscriber()

	movedCalls, droppedCalls := 0, 0
	sub.Subscribe(kindItemMoved, func(Event) { movedCalls++ })
	sub.Subscribe(kindItemDropped, func(Event) { droppedCalls++ })

	sys.Publisher().Publish(itemMoved{X: 1, Y: 1})

	if movedCalls != 1 {
		t.Errorf("expected the matching callback to fire once, got %d", movedCalls)
	}
	if droppedCalls != 0 {
		t.Errorf("expected the non-matching callback not to fire, got %d", droppedCalls)
	}
}

func TestPublisher_Publish_DeliversHandle(t *testing.T) {
	sys := newTestSystem()

	var gotX, gotY int
	sys.Subscriber().Subscribe(kindItemMoved, func(e Event) {
		moved := Narrow[itemMoved](e)
		gotX, gotY = moved.X, moved.Y
	})

	sys.Publisher().Publish(itemMoved{X: 6, Y: 8})

	if gotX != 6 || gotY != 8 {
		t.Errorf("expected payload {6 8}, got {%d %d}", gotX, gotY)
	}
}

func TestPublisher_Publish_NilEvent(t *testing.T) {
	sys := newTestSystem()

	mustPanic(t, "non-nil event", func() {
		sys.Publisher().Publish(nil)
	})
}

func TestPublisher_Publish_UnknownKind(t *testing.T) {
	sys := NewSystem(kindItemMoved)

	mustPanic(t, "not registered with this System", func() {
		sys.Publisher().Publish(doorOpened{})
	})
}

func TestPublisher_Publish_UnsubscribeDuringDispatch(t *testing.T) {
	sys := newTestSystem()
	sub := sys.Subscriber()
	pub := sys.Publisher()

	var fired []string
	var idB SubscriptionID
	sub.Subscribe(kindItemMoved, func(Event) {
		fired = append(fired, "a")
		// Removing b mid-dispatch affects the next publish only; the
		// in-flight snapshot still delivers to it.
		sub.Unsubscribe(kindItemMoved, idB)
	})
	idB = sub.Subscribe(kindItemMoved, func(Event) { fired = append(fired, "b") })

	pub.Publish(itemMoved{})
	if len(fired) != 2 || fired[1] != "b" {
		t.Errorf("expected the in-flight snapshot to deliver [a b], got %v", fired)
	}

	fired = nil
	pub.Publish(itemMoved{})
	if len(fired) != 1 || fired[0] != "a" {
		t.Errorf("expected only [a] on the next publish, got %v", fired)
	}
}

func TestPublisher_Publish_SubscribeDuringDispatch(t *testing.T) {
	sys := newTestSystem()
	sub := sys.Subscriber()
	pub := sys.Publisher()

	lateCalls := 0
	registered := false
	sub.Subscribe(kindItemMoved, func(Event) {
		if !registered {
			registered = true
			sub.Subscribe(kindItemMoved, func(Event) { lateCalls++ })
		}
	})

	pub.Publish(itemMoved{})
	if lateCalls != 0 {
		t.Errorf("expected a callback added mid-dispatch not to fire in-flight, got %d calls", lateCalls)
	}

	pub.Publish(itemMoved{})
	if lateCalls != 1 {
		t.Errorf("expected the late callback to fire on the next publish, got %d calls", lateCalls)
	}
}

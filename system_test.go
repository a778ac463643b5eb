package eventsys

import "testing"

func TestNewSystem(t *testing.T) {
	sys := newTestSystem()

	if sys == nil {
		t.Fatal("expected non-nil system")
	}
	if got := len(sys.Kinds()); got != 3 {
		t.Errorf("expected 3 kinds, got %d", got)
	}
}

func TestNewSystem_NoKinds(t *testing.T) {
	mustPanic(t, "at least one event kind", func() {
		NewSystem()
	})
}

func TestNewSystem_EmptyKind(t *testing.T) {
	mustPanic(t, "empty kind token", func() {
		NewSystem(kindItemMoved, "")
	})
}

func TestNewSystem_DuplicateKind(t *testing.T) {
	mustPanic(t, "duplicate kind", func() {
		NewSystem(kindItemMoved, kindItemDropped, kindItemMoved)
	})
}

func TestSystem_Kinds_Sorted(t *testing.T) {
	sys := NewSystem("zeta", "alpha", "mid")

	kinds := sys.Kinds()
	want := []Kind{"alpha", "mid", "zeta"}
	for i, k := range kinds {
		if k != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], k)
		}
	}
}

func TestSystem_Accepts(t *testing.T) {
	sys := newTestSystem()

	if !sys.Accepts(kindItemMoved) {
		t.Errorf("expected system to accept %q", kindItemMoved)
	}
	if sys.Accepts("no.such.kind") {
		t.Error("expected system to reject an unregistered kind")
	}
}

func TestSystem_Views_Stable(t *testing.T) {
	sys := newTestSystem()

	if sys.Subscriber() != sys.Subscriber() {
		t.Error("expected Subscriber to return the same view each call")
	}
	if sys.Publisher() != sys.Publisher() {
		t.Error("expected Publisher to return the same view each call")
	}
}

func TestSystem_IDsGloballyUnique(t *testing.T) {
	sys := newTestSystem()
	sub := sys.Subscriber()

	seen := make(map[SubscriptionID]bool)
	kinds := []Kind{kindItemMoved, kindItemDropped, kindDoorOpened}
	for i := 0; i < 30; i++ {
		id := sub.Subscribe(kinds[i%len(kinds)], noopCallback)
		if id == NoSubscription {
			t.Fatal("expected Subscribe to never issue the sentinel ID")
		}
		if seen[id] {
			t.Fatalf("expected globally unique IDs, got %d twice", id)
		}
		seen[id] = true
	}
}

func TestSystem_IDsNotReused(t *testing.T) {
	sys := newTestSystem()
	sub := sys.Subscriber()

	first := sub.Subscribe(kindItemMoved, noopCallback)
	sub.Unsubscribe(kindItemMoved, first)

	second := sub.Subscribe(kindItemMoved, noopCallback)
	if second == first {
		t.Errorf("expected a fresh ID after unsubscribe, got %d again", first)
	}
	if second <= first {
		t.Errorf("expected IDs to strictly increase, got %d after %d", second, first)
	}
}

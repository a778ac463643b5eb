package eventsys

// Subscriber is the registration view over a System's dispatch table. It
// can register and remove callbacks but cannot fire events; hand a component
// a Subscriber and it gains no publishing capability.
//
// The zero value is not usable; obtain a Subscriber from (*System).Subscriber.
type Subscriber struct {
	sys *System
}

// Subscribe registers fn for the given kind and returns a fresh subscription
// ID, unique across the whole System. Multiple callbacks may be registered
// for one kind, including structurally identical ones; each gets its own ID
// and fires independently, in registration order.
//
// Subscribe panics if kind is outside the System's closed set or fn is nil.
func (s *Subscriber) Subscribe(kind Kind, fn Callback) SubscriptionID {
	s.sys.mustAccept(kind, "Subscribe")
	if fn == nil {
		panic("eventsys: Subscribe requires a non-nil callback")
	}

	id := s.sys.allocateID()
	s.sys.table.add(kind, entry{id: id, fn: fn})
	return id
}

// Unsubscribe removes the callback registered under kind with the given ID.
// It reports whether a callback was removed. Because IDs are unique across
// the whole System, an ID issued for a different kind never matches: passing
// the wrong kind reports false and removes nothing, which is how
// "subscribed under A, unsubscribed under B" mistakes surface.
//
// Unsubscribe panics if kind is outside the System's closed set.
func (s *Subscriber) Unsubscribe(kind Kind, id SubscriptionID) bool {
	s.sys.mustAccept(kind, "Unsubscribe")
	if !id.Valid() {
		return false
	}
	return s.sys.table.remove(kind, id)
}

// Count returns the number of callbacks currently registered for kind.
func (s *Subscriber) Count(kind Kind) int {
	s.sys.mustAccept(kind, "Count")
	return s.sys.table.count(kind)
}

// Subscribe registers a typed callback for the event kind T. The callback
// receives the already-narrowed event, so no assertion is needed in its body.
func Subscribe[T Event](s *Subscriber, fn func(T)) SubscriptionID {
	if fn == nil {
		panic("eventsys: Subscribe requires a non-nil callback")
	}
	return s.Subscribe(KindOf[T](), func(e Event) {
		fn(Narrow[T](e))
	})
}

// Unsubscribe removes the subscription with the given ID from the event
// kind T. See (*Subscriber).Unsubscribe for the cross-kind contract.
func Unsubscribe[T Event](s *Subscriber, id SubscriptionID) bool {
	return s.Unsubscribe(KindOf[T](), id)
}

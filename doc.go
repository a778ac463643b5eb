// Package eventsys provides a synchronous, in-process publish/subscribe
// dispatcher over a closed set of event kinds.
//
// A System is created once per closed kind set and owns the dispatch table
// for its whole lifetime. It exposes two restricted views: a Subscriber,
// which registers and removes callbacks, and a Publisher, which fires
// events. The views can only be obtained from the owning System, so code
// that only publishes never sees the subscription surface and vice versa.
//
// # Event kinds
//
// Each event kind is a type implementing Event with a unique Kind token:
//
//	const KindItemMoved eventsys.Kind = "item.moved"
//
//	type ItemMoved struct {
//		X, Y int
//	}
//
//	func (ItemMoved) Kind() eventsys.Kind { return KindItemMoved }
//
// The System's kind set is declared at construction and is closed: using a
// kind outside the set with Subscribe, Unsubscribe, or Publish panics. This
// is the runtime analog of rejecting an invalid kind at compile time; it is
// a misconfiguration, not a condition callers branch on.
//
// # Basic usage
//
//	sys := eventsys.NewSystem(KindItemMoved, KindItemDropped)
//
//	id := sys.Subscriber().Subscribe(KindItemMoved, func(e eventsys.Event) {
//		moved := eventsys.Narrow[ItemMoved](e)
//		fmt.Printf("moved to %d,%d\n", moved.X, moved.Y)
//	})
//
//	sys.Publisher().Publish(ItemMoved{X: 3, Y: 4})
//	sys.Subscriber().Unsubscribe(KindItemMoved, id)
//
// The typed helpers remove the Narrow call from callback bodies:
//
//	id := eventsys.Subscribe(sys.Subscriber(), func(moved ItemMoved) {
//		fmt.Printf("moved to %d,%d\n", moved.X, moved.Y)
//	})
//
// # Subscription identity
//
// Subscribe returns a SubscriptionID unique across the whole System, never
// reused, with NoSubscription (0) reserved as the "no subscription"
// sentinel. Unsubscribe matches the ID only under the kind it was issued
// for: unsubscribing an ID under the wrong kind reports false and removes
// nothing, which surfaces subscribed-under-A-unsubscribed-under-B bugs.
//
// # Subscription managers
//
// A Manager maps stable application tags to subscriptions on one Subscriber
// view. Subscribing an already-live tag reports false and keeps the original
// registration; Close removes everything the manager still owns, so
// callbacks registered through a manager never outlive it:
//
//	mgr := eventsys.NewManager[componentTag](sys.Subscriber())
//	defer mgr.Close()
//
//	eventsys.SubscribeTag(mgr, tagMoveLogger, func(moved ItemMoved) { ... })
//
// # Delivery semantics
//
// Publish runs every matching callback inline on the calling goroutine, in
// registration order, and returns when the last one has. Publishing a kind
// with no subscribers is a no-op. Dispatch iterates a snapshot of the
// kind's callback list: subscribing or unsubscribing from inside a callback
// is legal and takes effect on the next Publish, not the in-flight one.
//
// # Thread safety
//
// The dispatch table is guarded by a single read-write mutex and callbacks
// run with no lock held, so Systems, their views, and Managers are safe for
// concurrent use. No ordering is guaranteed between publishes on different
// goroutines; within one Publish, callbacks always fire in registration
// order.
package eventsys

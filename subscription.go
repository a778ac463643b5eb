package eventsys

// SubscriptionID identifies one registered callback. IDs are allocated by
// the owning System from a strictly increasing counter and are unique across
// the entire System, not merely within one kind. An ID is never reused, even
// after its subscription is removed.
type SubscriptionID uint64

// NoSubscription is the reserved sentinel meaning "no subscription". It is
// never issued to a real subscription.
const NoSubscription SubscriptionID = 0

// Valid reports whether id could refer to a real subscription.
func (id SubscriptionID) Valid() bool {
	return id != NoSubscription
}

package eventsys

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// System is the aggregate that owns the dispatch table for a closed set of
// event kinds. The set is fixed at construction; using any other kind with
// the System's views panics (the misuse is a programming error, not a
// runtime condition to branch on).
//
// A System exposes exactly one Subscriber view and one Publisher view. The
// views are the only way to mutate or fire the dispatch table, and they can
// only be obtained from the owning System.
type System struct {
	kinds  map[Kind]struct{}
	table  *table
	nextID atomic.Uint64

	subscriber Subscriber
	publisher  Publisher
}

// NewSystem creates a System accepting exactly the given event kinds.
// It panics if no kinds are given, if a token is empty, or if a token is
// repeated: the kind set is part of the program's static configuration.
func NewSystem(kinds ...Kind) *System {
	if len(kinds) == 0 {
		panic("eventsys: NewSystem requires at least one event kind")
	}

	set := make(map[Kind]struct{}, len(kinds))
	for _, k := range kinds {
		if k == "" {
			panic("eventsys: NewSystem given an empty kind token")
		}
		if _, dup := set[k]; dup {
			panic(fmt.Sprintf("eventsys: NewSystem given duplicate kind %q", k))
		}
		set[k] = struct{}{}
	}

	s := &System{
		kinds: set,
		table: newTable(),
	}
	s.subscriber = Subscriber{sys: s}
	s.publisher = Publisher{sys: s}
	return s
}

// Subscriber returns the System's registration view.
func (s *System) Subscriber() *Subscriber {
	return &s.subscriber
}

// Publisher returns the System's firing view.
func (s *System) Publisher() *Publisher {
	return &s.publisher
}

// Kinds returns the closed kind set in sorted order.
func (s *System) Kinds() []Kind {
	kinds := make([]Kind, 0, len(s.kinds))
	for k := range s.kinds {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Accepts reports whether kind belongs to the System's closed set.
func (s *System) Accepts(kind Kind) bool {
	_, ok := s.kinds[kind]
	return ok
}

// mustAccept panics if kind is outside the closed set. op names the entry
// point for the diagnostic.
func (s *System) mustAccept(kind Kind, op string) {
	if _, ok := s.kinds[kind]; !ok {
		panic(fmt.Sprintf("eventsys: %s: kind %q is not registered with this System", op, kind))
	}
}

// allocateID issues the next subscription ID. IDs start at 1 and strictly
// increase, so NoSubscription (0) is never issued.
func (s *System) allocateID() SubscriptionID {
	return SubscriptionID(s.nextID.Add(1))
}

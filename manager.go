package eventsys

import "sync"

// tagRecord ties a tag to the subscription registered under it. The manager
// is the only authoritative record of this association; the dispatch table
// has no notion of tags.
type tagRecord struct {
	kind Kind
	id   SubscriptionID
}

// Manager maps stable application-chosen tags to subscriptions on one
// Subscriber view. Tags are typically drawn from a small enumeration owned
// by the component using the manager; at most one subscription is live per
// tag at any time.
//
// The manager guarantees scoped cleanup: Close removes every subscription it
// still owns, so callbacks registered through a manager never outlive it.
// Components should defer Close before the owning System is torn down.
type Manager[Tag comparable] struct {
	sub *Subscriber

	mu     sync.Mutex
	tags   map[Tag]tagRecord
	closed bool
}

// NewManager creates a Manager bound to the given Subscriber view.
func NewManager[Tag comparable](sub *Subscriber) *Manager[Tag] {
	if sub == nil {
		panic("eventsys: NewManager requires a non-nil Subscriber")
	}
	return &Manager[Tag]{
		sub:  sub,
		tags: make(map[Tag]tagRecord),
	}
}

// Subscribe registers fn for kind under the given tag. If the tag already
// has a live subscription, or the manager is closed, nothing is registered
// and Subscribe reports false. This is the duplicate-registration guard: a
// component that accidentally subscribes the same tag twice keeps its
// original registration.
func (m *Manager[Tag]) Subscribe(tag Tag, kind Kind, fn Callback) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return false
	}
	if _, live := m.tags[tag]; live {
		return false
	}

	id := m.sub.Subscribe(kind, fn)
	m.tags[tag] = tagRecord{kind: kind, id: id}
	return true
}

// Unsubscribe removes the subscription registered under tag, using the kind
// the manager recorded for it. It reports false if the tag has no live
// subscription. A tag can be reused after it is unsubscribed.
func (m *Manager[Tag]) Unsubscribe(tag Tag) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, live := m.tags[tag]
	if !live {
		return false
	}
	return m.removeLocked(tag, rec)
}

// removeLocked delegates the removal and erases the tag's record on success.
// If the underlying removal fails the record is left intact, so the manager
// never loses track of a subscription that is still registered.
func (m *Manager[Tag]) removeLocked(tag Tag, rec tagRecord) bool {
	if !m.sub.Unsubscribe(rec.kind, rec.id) {
		return false
	}
	delete(m.tags, tag)
	return true
}

// UnsubscribeAll removes every subscription the manager owns and clears its
// tag registry. The manager remains usable afterwards.
func (m *Manager[Tag]) UnsubscribeAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unsubscribeAllLocked()
}

func (m *Manager[Tag]) unsubscribeAllLocked() {
	for tag, rec := range m.tags {
		m.sub.Unsubscribe(rec.kind, rec.id)
		delete(m.tags, tag)
	}
}

// Close removes every subscription the manager owns and marks the manager
// closed; subsequent Subscribe calls report false. Close is idempotent and
// always returns nil; the error return satisfies io.Closer so a manager can
// sit in a defer chain.
func (m *Manager[Tag]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	m.unsubscribeAllLocked()
	return nil
}

// Registered reports whether tag currently has a live subscription.
func (m *Manager[Tag]) Registered(tag Tag) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, live := m.tags[tag]
	return live
}

// Len returns the number of tags with live subscriptions.
func (m *Manager[Tag]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tags)
}

// IsClosed reports whether Close has been called.
func (m *Manager[Tag]) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// SubscribeTag registers a typed callback for the event kind T under the
// given tag. It is the typed counterpart of (*Manager).Subscribe.
func SubscribeTag[T Event, Tag comparable](m *Manager[Tag], tag Tag, fn func(T)) bool {
	if fn == nil {
		panic("eventsys: SubscribeTag requires a non-nil callback")
	}
	return m.Subscribe(tag, KindOf[T](), func(e Event) {
		fn(Narrow[T](e))
	})
}

// UnsubscribeTag is the kind-checked variant of (*Manager).Unsubscribe: it
// additionally requires the caller to state the expected event kind T, and
// reports false without removing anything if T disagrees with the kind
// recorded for the tag. This catches unsubscribing the right tag while
// believing it maps to the wrong kind.
func UnsubscribeTag[T Event, Tag comparable](m *Manager[Tag], tag Tag) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, live := m.tags[tag]
	if !live {
		return false
	}
	if rec.kind != KindOf[T]() {
		return false
	}
	return m.removeLocked(tag, rec)
}

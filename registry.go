package eventsys

import "sync"

// entry pairs a callback with the subscription ID issued for it.
type entry struct {
	id SubscriptionID
	fn Callback
}

// table is the dispatch table: kind token -> callbacks in registration
// order. A kind is present in the map iff it has at least one entry; the
// last removal for a kind deletes the key, so lookups stay proportional to
// kinds with live subscriptions.
//
// Only the owning System mutates a table, through its Subscriber view.
type table struct {
	mu      sync.RWMutex
	entries map[Kind][]entry
}

func newTable() *table {
	return &table{
		entries: make(map[Kind][]entry),
	}
}

// add appends e to the sequence for kind, creating the sequence if absent.
func (t *table) add(kind Kind, e entry) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries[kind] = append(t.entries[kind], e)
}

// remove deletes the entry with the given ID from the sequence for kind.
// It reports whether an entry was removed. An ID issued under a different
// kind is not found here, so cross-kind removals report false.
func (t *table) remove(kind Kind, id SubscriptionID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	entries := t.entries[kind]
	for i, e := range entries {
		if e.id != id {
			continue
		}
		entries = append(entries[:i], entries[i+1:]...)
		if len(entries) == 0 {
			delete(t.entries, kind)
		} else {
			t.entries[kind] = entries
		}
		return true
	}
	return false
}

// snapshot returns a copy of the sequence for kind, or nil if the kind has
// no entries. Dispatch iterates the copy so callbacks may subscribe or
// unsubscribe without invalidating the in-flight iteration.
func (t *table) snapshot(kind Kind) []entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entries := t.entries[kind]
	if len(entries) == 0 {
		return nil
	}
	out := make([]entry, len(entries))
	copy(out, entries)
	return out
}

// count returns the number of entries registered for kind.
func (t *table) count(kind Kind) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.entries[kind])
}

// kindsInUse returns the number of kinds with at least one entry.
func (t *table) kindsInUse() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.entries)
}

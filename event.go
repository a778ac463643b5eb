package eventsys

import "fmt"

// Kind identifies one concrete event kind. Each kind declares exactly one
// token, stable for the lifetime of the program (e.g. "item.moved"). The
// token is the dispatch table's key, so two distinct event types must not
// share a token.
type Kind string

// Event is implemented by every event kind a System accepts. Implementations
// should declare Kind with a value receiver so the token can be derived from
// a zero value (see KindOf).
//
// Events are treated as immutable by the dispatcher: Publish hands the same
// value to every callback.
type Event interface {
	// Kind returns the event's kind token.
	Kind() Kind
}

// Callback receives published events. The event is delivered as the generic
// Event handle; use Narrow inside the callback to recover the concrete kind.
type Callback func(Event)

// KindOf returns the kind token declared by the event type T.
func KindOf[T Event]() Kind {
	var zero T
	return zero.Kind()
}

// Narrow converts a generic event handle to its concrete kind T.
//
// The conversion is always checked: narrowing to a kind other than the one
// the event actually carries panics with a diagnostic rather than corrupting
// state. The dispatcher ties kind tokens to callbacks by construction, so a
// mismatch can only come from narrowing to the wrong type inside a callback
// body. Use NarrowOK for the recoverable form.
func Narrow[T Event](e Event) T {
	t, ok := e.(T)
	if !ok {
		panic(fmt.Sprintf("eventsys: cannot narrow event of kind %q (%T) to %T", e.Kind(), e, t))
	}
	return t
}

// NarrowOK converts a generic event handle to its concrete kind T, reporting
// success instead of panicking on mismatch.
func NarrowOK[T Event](e Event) (T, bool) {
	t, ok := e.(T)
	return t, ok
}

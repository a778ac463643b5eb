package eventsys

// Publisher is the firing view over a System's dispatch table. It can fire
// events but cannot register or remove callbacks; code that only publishes
// never sees the subscription surface.
//
// The zero value is not usable; obtain a Publisher from (*System).Publisher.
type Publisher struct {
	sys *System
}

// Publish invokes every callback registered for e's kind, synchronously on
// the calling goroutine, in registration order. Publishing a kind with zero
// subscribers is a silent no-op.
//
// Dispatch iterates a snapshot of the kind's callback sequence: a callback
// that subscribes or unsubscribes during Publish affects the next Publish,
// never the in-flight one. In particular a callback unsubscribed mid-dispatch
// still fires for the event being delivered.
//
// Publish panics if e is nil or e's kind is outside the System's closed set.
func (p *Publisher) Publish(e Event) {
	if e == nil {
		panic("eventsys: Publish requires a non-nil event")
	}
	kind := e.Kind()
	p.sys.mustAccept(kind, "Publish")

	for _, ent := range p.sys.table.snapshot(kind) {
		ent.fn(e)
	}
}

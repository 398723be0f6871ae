package domq

import "domq/dom"

// On registers fn for eventType on every member and returns the receiver.
func (c *Collection) On(eventType string, fn dom.Listener) *Collection {
	for _, it := range c.items {
		it.AddEventListener(eventType, fn)
	}
	return c
}

// Off removes fn for eventType from every member. Removal matches by the
// function value that was registered.
func (c *Collection) Off(eventType string, fn dom.Listener) *Collection {
	for _, it := range c.items {
		it.RemoveEventListener(eventType, fn)
	}
	return c
}

// One registers fn for a single invocation per member.
func (c *Collection) One(eventType string, fn dom.Listener) *Collection {
	for _, it := range c.items {
		it.AddEventListenerOnce(eventType, fn)
	}
	return c
}

// Trigger dispatches a bubbling event of the given type on every member.
func (c *Collection) Trigger(eventType string) *Collection {
	for _, it := range c.items {
		it.DispatchEvent(&dom.Event{Type: eventType, Bubbles: true})
	}
	return c
}

// Ready arranges for fn to run once the collection's document has finished
// loading. While the document is still loading, fn is deferred until the
// one-time DOMContentLoaded signal; on an already-loaded document it is
// scheduled for a future turn. Either way fn never runs synchronously within
// this call.
func (c *Collection) Ready(fn func()) *Collection {
	if fn == nil {
		return c
	}
	doc := c.document()
	if doc == nil || doc.Document == nil {
		return c
	}
	if doc.Document.ReadyState == dom.ReadyStateLoading {
		doc.AddEventListenerOnce(dom.EventDOMContentLoaded, func(*dom.Event) { fn() })
		return c
	}
	doc.Defer(fn)
	return c
}

package dom

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Listener handles a dispatched event.
type Listener func(*Event)

// Event names the library itself dispatches.
const (
	EventDOMContentLoaded = "DOMContentLoaded"
	EventReadyStateChange = "readystatechange"
	EventLoad             = "load"
)

// https://dom.spec.whatwg.org/#interface-event
type Event struct {
	Type          string
	Target        Item
	CurrentTarget Item
	Bubbles       bool
	Cancelable    bool

	defaultPrevented   bool
	propagationStopped bool
}

func (e *Event) StopPropagation() {
	e.propagationStopped = true
}

func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

type registration struct {
	fn   Listener
	once bool
}

// eventTarget is the listener table shared by nodes and windows.
// https://dom.spec.whatwg.org/#interface-eventtarget
type eventTarget struct {
	listeners map[string][]*registration
}

func (t *eventTarget) AddEventListener(eventType string, fn Listener) {
	t.add(eventType, fn, false)
}

// AddEventListenerOnce registers fn for a single invocation.
func (t *eventTarget) AddEventListenerOnce(eventType string, fn Listener) {
	t.add(eventType, fn, true)
}

func (t *eventTarget) add(eventType string, fn Listener, once bool) {
	if fn == nil {
		return
	}
	if t.listeners == nil {
		t.listeners = map[string][]*registration{}
	}
	t.listeners[eventType] = append(t.listeners[eventType], &registration{fn: fn, once: once})
}

// RemoveEventListener drops the first listener registered for eventType whose
// function value equals fn. Removal depends on the caller supplying the same
// function value that was registered.
func (t *eventTarget) RemoveEventListener(eventType string, fn Listener) {
	regs := t.listeners[eventType]
	for i, reg := range regs {
		if fmt.Sprintf("%p", reg.fn) == fmt.Sprintf("%p", fn) {
			t.listeners[eventType] = append(regs[:i], regs[i+1:]...)
			return
		}
	}
	logrus.Debugf("dom: no %q listener to remove", eventType)
}

// invoke runs every listener registered for the event's type against the
// current target, pruning one-shot registrations.
func (t *eventTarget) invoke(e *Event, current Item) {
	regs := t.listeners[e.Type]
	if len(regs) == 0 {
		return
	}
	snapshot := make([]*registration, len(regs))
	copy(snapshot, regs)
	for _, reg := range snapshot {
		if reg.once {
			t.removeRegistration(e.Type, reg)
		}
		e.CurrentTarget = current
		reg.fn(e)
	}
}

func (t *eventTarget) removeRegistration(eventType string, reg *registration) {
	regs := t.listeners[eventType]
	for i := range regs {
		if regs[i] == reg {
			t.listeners[eventType] = append(regs[:i], regs[i+1:]...)
			return
		}
	}
}

// DispatchEvent runs n's listeners and, for bubbling events, the listeners of
// every ancestor up to the document and finally the window. It reports
// whether the event's default was left intact.
func (n *Node) DispatchEvent(e *Event) bool {
	if e == nil {
		return true
	}
	if e.Target == nil {
		e.Target = n
	}
	for current := n; current != nil; current = current.ParentNode {
		current.invoke(e, current)
		if !e.Bubbles || e.propagationStopped {
			e.CurrentTarget = nil
			return !e.defaultPrevented
		}
		if current.NodeType == DocumentNode {
			if w := current.Document.window; w != nil {
				w.invoke(e, w)
			}
			break
		}
	}
	e.CurrentTarget = nil
	return !e.defaultPrevented
}

package services

import (
	"fmt"
	"strings"

	"github.com/vango-dev/domattr/pkg/dom"
)

// Scope selects where an event listener is registered.
type Scope string

const (
	ScopeElement  Scope = ""
	ScopeWindow   Scope = "window"
	ScopeDocument Scope = "document"
)

// handlerSeparator joins several handlers registered for the same event.
const handlerSeparator = "\n"

// Event registers Handler for Event on the element by writing an
// on:<event> directive attribute.
type Event struct {
	Event   string
	Handler string
	Scope   Scope
}

// Name returns the service name used in error messages.
func (e *Event) Name() string { return "event:" + e.Event }

// AttrName returns the directive attribute the service writes.
func (e *Event) AttrName() string {
	event := strings.ToLower(e.Event)
	if e.Scope == ScopeElement {
		return "on:" + event
	}
	return "on-" + string(e.Scope) + ":" + event
}

// Attach implements attrs.Service. A handler already listed is not added
// twice.
func (e *Event) Attach(el dom.Element) error {
	if e.Event == "" || e.Handler == "" {
		return fmt.Errorf("services: event service needs event and handler, got %q/%q", e.Event, e.Handler)
	}
	switch e.Scope {
	case ScopeElement, ScopeWindow, ScopeDocument:
	default:
		return fmt.Errorf("services: unknown event scope %q", e.Scope)
	}

	name := e.AttrName()
	cur, ok := el.GetAttribute(name)
	if !ok || cur == "" {
		el.SetAttribute(name, e.Handler)
		return nil
	}
	for _, h := range strings.Split(cur, handlerSeparator) {
		if h == e.Handler {
			return nil
		}
	}
	el.SetAttribute(name, cur+handlerSeparator+e.Handler)
	return nil
}

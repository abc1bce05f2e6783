package attrs

import (
	"fmt"
	"reflect"

	"github.com/vango-dev/domattr/internal/errors"
	"github.com/vango-dev/domattr/pkg/dom"
)

// ServicesKey is the map key holding declarative services.
const ServicesKey = "decl:services"

// Service is attached to an element when the map is applied.
type Service interface {
	Attach(el dom.Element) error
}

// ServiceFunc adapts a function to Service.
type ServiceFunc func(el dom.Element) error

// Attach implements Service.
func (f ServiceFunc) Attach(el dom.Element) error { return f(el) }

// resolveServices checks the decl:services value and returns the services
// in order. Nothing is attached when any entry is invalid.
func resolveServices(value any) ([]Service, error) {
	items, ok := sequence(value)
	if !ok {
		return nil, errors.Newk(errors.KindServicesNotArray, value).WithAttr(ServicesKey)
	}
	out := make([]Service, 0, len(items))
	for _, item := range items {
		svc, ok := item.(Service)
		if !ok || isNilService(svc) {
			return nil, errors.Newk(errors.KindServiceNotObject, item).WithAttr(ServicesKey)
		}
		out = append(out, svc)
	}
	return out, nil
}

func isNilService(svc Service) bool {
	rv := reflect.ValueOf(svc)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

func serviceName(svc Service) string {
	if n, ok := svc.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", svc)
}

// trackingElement records whether any write through it changed el.
type trackingElement struct {
	dom.Element
	w       *writer
	mutated bool
}

func (t *trackingElement) SetAttribute(name, value string) {
	if cur, ok := t.Element.GetAttribute(name); ok && cur == value {
		return
	}
	t.Element.SetAttribute(name, value)
	t.mutated = true
	t.w.record(opSet, name)
}

func (t *trackingElement) RemoveAttribute(name string) {
	if !t.Element.HasAttribute(name) {
		return
	}
	t.Element.RemoveAttribute(name)
	t.mutated = true
	t.w.record(opRemove, name)
}

func (t *trackingElement) SetProperty(name string, value any) {
	prev, ok := t.Element.Property(name)
	t.Element.SetProperty(name, value)
	if !ok || !reflect.DeepEqual(prev, value) {
		t.mutated = true
		t.w.record(opProp, name)
	}
}

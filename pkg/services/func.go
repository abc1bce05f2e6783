package services

import "github.com/vango-dev/domattr/pkg/dom"

// FuncService is a named function service.
type FuncService struct {
	name string
	fn   func(el dom.Element) error
}

// Func creates a service that calls fn on attach.
func Func(name string, fn func(el dom.Element) error) *FuncService {
	return &FuncService{name: name, fn: fn}
}

// Name returns the service name used in error messages.
func (f *FuncService) Name() string { return f.name }

// Attach implements attrs.Service.
func (f *FuncService) Attach(el dom.Element) error { return f.fn(el) }

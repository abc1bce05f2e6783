package services

import (
	"github.com/vango-dev/domattr/pkg/attrs"
)

// Decode converts JSON service descriptors in a decl:services value into
// services. Descriptors with an unknown or missing kind, and values that are
// not lists, are returned unchanged so the applicator reports them.
func Decode(value any) any {
	items, ok := value.([]any)
	if !ok {
		return value
	}
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = decodeOne(item)
	}
	return out
}

func decodeOne(item any) any {
	p, ok := item.(attrs.Pairs)
	if !ok {
		return item
	}
	fields := make(map[string]any, len(p))
	for _, f := range p {
		fields[f.Key] = f.Value
	}

	switch fields["kind"] {
	case "event":
		ev, _ := fields["event"].(string)
		h, _ := fields["handler"].(string)
		scope, _ := fields["scope"].(string)
		return &Event{Event: ev, Handler: h, Scope: Scope(scope)}
	case "hook":
		name, _ := fields["name"].(string)
		return &Hook{HookName: name, Config: fields["config"]}
	default:
		return item
	}
}

// Resolve returns a copy of m with its decl:services value decoded.
func Resolve(m attrs.Map) attrs.Map {
	out := make(attrs.Map, len(m))
	copy(out, m)
	for i, a := range out {
		if a.Key == attrs.ServicesKey {
			out[i].Value = Decode(a.Value)
		}
	}
	return out
}

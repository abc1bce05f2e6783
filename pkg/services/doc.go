// Package services provides declarative services for the "decl:services"
// directive.
//
// A service is attached to an element while its attribute map is applied.
// Event stores an event handler reference as an on:* directive; Hook
// records a client hook name and its JSON config. Func adapts a plain
// function.
//
// Decode turns JSON descriptors such as
//
//	{"kind": "event", "event": "click", "handler": "./app.js#onClick"}
//
// into services so that attribute maps read from JSON can carry them.
package services

// Package dom defines the host element contract the attribute engine writes
// through, and an in-memory element that implements it.
//
// A host environment (a browser bridge, a server-side DOM, a test double)
// only needs to satisfy Element. Node is the reference implementation used
// by the CLI, the HTTP service and tests: attributes keep insertion order
// so serialization is deterministic, and live properties are stored apart
// from attributes so they can diverge the way form controls do in a
// browser.
//
// # Parsing
//
// Parse builds a Node from a single-element HTML fragment:
//
//	el, err := dom.Parse(`<input value="a">`)
//	el.Property("value") // "a", true
package dom

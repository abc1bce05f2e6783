// Package server exposes the attribute engine over HTTP.
//
// Routes:
//
//	POST /apply    apply an attribute map to an HTML element
//	GET  /healthz  liveness probe
//	GET  /metrics  Prometheus metrics (when a Registry is configured)
//
// A request to /apply carries the element markup, the attribute map, and
// the SVG flag:
//
//	{"html": "<input value=\"a\">", "attrs": {"value": "b"}, "svg": false}
//
// and is answered with the rendered element and the mutation flag:
//
//	{"html": "<input value=\"b\">", "mutated": true}
//
// Attribute maps keep their JSON key order, so $-binding merges follow the
// request. Services in decl:services are decoded with services.Resolve.
//
// Handler returns a chi router that can be mounted into a larger router.
package server

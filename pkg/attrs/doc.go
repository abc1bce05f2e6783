// Package attrs reconciles a desired set of attribute values onto a live
// element.
//
// Apply walks a Map entry by entry and routes each key to one of four
// write paths:
//
//   - "decl:services": a list of Service values attached to the element
//   - "on:*", "on-window:*", "on-document:*": directive attributes stored as-is
//   - "$name": reactive bindings, merged per slug into bind:<slug>="$a|$b"
//   - everything else: plain attributes, with class/style stringified and
//     value/checked/selected mirrored to live properties on form controls
//
// Every write is idempotent: the current attribute or property is read from
// the element first and nothing is written when it already matches. Apply
// reports whether anything changed.
//
// # Value shapes
//
//	attrs.Map{
//	    {Key: "class", Value: []string{"card", "active"}},          // class="card active"
//	    {Key: "style", Value: attrs.Pairs{{Key: "color", Value: "red"}}}, // style="color:red"
//	    {Key: "$item", Value: "todoItem:3"},                        // bind:todo-item:3="$item"
//	    {Key: "value", Value: "hello"},                             // attribute + live property
//	}
//
// Validation failures stop the call at the failing entry. Entries already
// written stay written.
package attrs

// Package render serializes dom.Node trees to HTML.
//
// Attributes are written in the order the element holds them, so the output
// shows exactly what the attribute engine produced:
//
//	el, _ := dom.Parse(`<input>`)
//	attrs.Apply(el, attrs.Map{{Key: "$v", Value: "myValue"}}, false)
//	html, _ := render.NewRenderer(render.Config{}).RenderToString(el)
//	// <input bind:my-value="$v">
//
// # innerHTML
//
// When an element carries a non-empty innerHTML live property, it is
// written verbatim in place of the children. The innerHTML="" marker
// attribute is kept so a hydrating client can tell injected content from
// literal markup.
//
// # Security
//
// Text and attribute values are escaped. innerHTML content is not and must
// come from trusted sources.
package render

package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/vango-dev/domattr/pkg/dom"
)

// innerHTMLKey matches attrs.InnerHTMLKey; render does not import attrs.
const innerHTMLKey = "innerHTML"

// Config configures the HTML renderer.
type Config struct {
	// Pretty enables indented output. Intended for debugging.
	Pretty bool

	// Indent is the string used per indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string
}

// Renderer writes dom.Node trees as HTML.
type Renderer struct {
	config Config
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders n to an HTML string.
func (r *Renderer) RenderToString(n *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams n to w.
func (r *Renderer) RenderToWriter(w io.Writer, n *dom.Node) error {
	if n == nil {
		return nil
	}
	ew := &errWriter{w: w}
	r.renderNode(ew, n, 0)
	return ew.err
}

// errWriter keeps the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) WriteString(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func (r *Renderer) renderNode(w *errWriter, n *dom.Node, depth int) {
	if n.IsText() {
		w.WriteString(escapeHTML(n.Text()))
		return
	}

	tag := n.TagName()
	if r.config.Pretty && depth > 0 {
		w.WriteString(strings.Repeat(r.config.Indent, depth))
	}

	w.WriteString("<" + tag)
	for _, name := range n.AttributeNames() {
		value, _ := n.GetAttribute(name)
		if value == "" && booleanAttrs[strings.ToLower(name)] {
			w.WriteString(" " + name)
			continue
		}
		w.WriteString(fmt.Sprintf(` %s="%s"`, name, escapeAttr(value)))
	}
	w.WriteString(">")

	if voidElements[tag] && n.Namespace() == "" {
		r.newline(w)
		return
	}

	if raw, ok := n.Property(innerHTMLKey); ok && raw != "" {
		w.WriteString(fmt.Sprint(raw))
	} else {
		block := r.config.Pretty && hasElementChild(n) && !inlineElements[tag]
		if block {
			w.WriteString("\n")
		}
		for _, c := range n.Children() {
			r.renderNode(w, c, depth+1)
		}
		if block {
			w.WriteString(strings.Repeat(r.config.Indent, depth))
		}
	}

	w.WriteString("</" + tag + ">")
	r.newline(w)
}

func (r *Renderer) newline(w *errWriter) {
	if r.config.Pretty {
		w.WriteString("\n")
	}
}

func hasElementChild(n *dom.Node) bool {
	for _, c := range n.Children() {
		if !c.IsText() {
			return true
		}
	}
	return false
}

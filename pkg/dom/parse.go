package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse parses an HTML fragment holding exactly one root element.
// Surrounding whitespace is ignored.
func Parse(markup string) (*Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, fmt.Errorf("dom: parse: %w", err)
	}

	var root *Node
	for _, hn := range nodes {
		switch hn.Type {
		case html.ElementNode:
			if root != nil {
				return nil, fmt.Errorf("dom: parse: expected one root element, found <%s> after <%s>", hn.Data, root.tag)
			}
			root = convert(hn)
		case html.TextNode:
			if strings.TrimSpace(hn.Data) != "" {
				return nil, fmt.Errorf("dom: parse: unexpected text %q outside root element", hn.Data)
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("dom: parse: no element in %q", markup)
	}
	return root, nil
}

func convert(hn *html.Node) *Node {
	var n *Node
	if hn.Namespace == "svg" {
		n = NewSVGElement(hn.Data)
	} else {
		n = NewElement(hn.Data)
	}
	for _, a := range hn.Attr {
		name := a.Key
		if a.Namespace != "" {
			name = a.Namespace + ":" + a.Key
		}
		n.SetAttribute(name, a.Val)
	}
	for c := hn.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			n.AppendChild(convert(c))
		case html.TextNode:
			n.AppendChild(NewText(c.Data))
		}
	}
	n.syncLiveProps()
	return n
}

package content

import (
	"golang.org/x/net/html"
)

// Element is a start-tag event. It wraps the element's node so selector
// matching can evaluate tag name, attributes and ancestry directly.
type Element struct {
	node    *html.Node
	removed bool
}

// NewElement creates an element event around an element node.
func NewElement(node *html.Node) *Element {
	return &Element{node: node}
}

// NewElementWithTag creates a detached element event with the given tag name
// and attributes.
func NewElementWithTag(tag string, attrs ...html.Attribute) *Element {
	return NewElement(&html.Node{
		Type: html.ElementNode,
		Data: tag,
		Attr: attrs,
	})
}

// Node returns the underlying element node. The engine evaluates selector
// matches against it.
func (e *Element) Node() *html.Node {
	return e.node
}

// TagName returns the element's tag name.
func (e *Element) TagName() string {
	return e.node.Data
}

// GetAttribute returns the value of the named attribute, if present.
func (e *Element) GetAttribute(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttribute reports whether the named attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.GetAttribute(name)
	return ok
}

// SetAttribute sets the named attribute, replacing any existing value.
func (e *Element) SetAttribute(name, value string) {
	for i, a := range e.node.Attr {
		if a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttribute removes the named attribute if present.
func (e *Element) RemoveAttribute(name string) {
	for i, a := range e.node.Attr {
		if a.Key == name {
			e.node.Attr = append(e.node.Attr[:i], e.node.Attr[i+1:]...)
			return
		}
	}
}

// Attributes returns a copy of the element's attributes in document order.
func (e *Element) Attributes() []html.Attribute {
	out := make([]html.Attribute, len(e.node.Attr))
	copy(out, e.node.Attr)
	return out
}

// Remove marks the element and its content for removal from the output.
func (e *Element) Remove() {
	e.removed = true
}

// Removed reports whether the element has been removed.
func (e *Element) Removed() bool {
	return e.removed
}

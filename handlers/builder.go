package handlers

import (
	"github.com/wippyai/html-rewriter/selector"
)

// documentSlots is one document-scoped registration: up to three handlers,
// each independently optional.
type documentSlots struct {
	doctype  Slot
	comments Slot
	text     Slot
}

// elementSlots is one element-scoped registration, bound to a parsed selector.
type elementSlots struct {
	selector *selector.Selector
	element  Slot
	comments Slot
	text     Slot
}

// Builder accumulates handler registrations in registration order. The order
// is the dispatch-priority order the engine honors.
type Builder struct {
	document []documentSlots
	element  []elementSlots
}

// NewBuilder creates an empty registration builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddDocumentHandlers appends one document-scoped registration. Any subset of
// the three slots may be absent. It always succeeds.
func (b *Builder) AddDocumentHandlers(doctype, comments, text Slot) {
	b.document = append(b.document, documentSlots{
		doctype:  doctype,
		comments: comments,
		text:     text,
	})
}

// AddElementHandlers parses rawSelector and appends one element-scoped
// registration bound to it. On parse failure nothing is appended and the
// builder is left unchanged.
func (b *Builder) AddElementHandlers(rawSelector []byte, element, comments, text Slot) error {
	sel, err := selector.ParseBytes(rawSelector)
	if err != nil {
		return err
	}

	b.element = append(b.element, elementSlots{
		selector: sel,
		element:  element,
		comments: comments,
		text:     text,
	})
	return nil
}

// DocumentCount returns the number of document-scoped registrations.
func (b *Builder) DocumentCount() int {
	return len(b.document)
}

// ElementCount returns the number of element-scoped registrations.
func (b *Builder) ElementCount() int {
	return len(b.element)
}

// Selectors returns the registered selectors in registration order.
// Duplicates are preserved.
func (b *Builder) Selectors() []*selector.Selector {
	out := make([]*selector.Selector, len(b.element))
	for i, e := range b.element {
		out[i] = e.selector
	}
	return out
}

package handlers

import (
	"context"

	"github.com/wippyai/html-rewriter/content"
	"github.com/wippyai/html-rewriter/selector"
)

// DocumentHandlers is one adapted document-scoped registration.
type DocumentHandlers struct {
	Doctype  DoctypeFunc
	Comments CommentFunc
	Text     TextFunc
}

// ElementHandlers is one adapted element-scoped registration.
type ElementHandlers struct {
	Element  ElementFunc
	Comments CommentFunc
	Text     TextFunc
}

// ElementEntry pairs an adapted element registration with its selector.
type ElementEntry struct {
	Selector *selector.Selector
	Handlers ElementHandlers
}

// SafeHandlers is the finalized, engine-consumable form of all registrations.
// It shares no state with the builder that produced it.
type SafeHandlers struct {
	Document []DocumentHandlers
	Element  []ElementEntry
}

// SafeHandlers adapts the builder's current registrations using inv to reach
// back into the guest. The builder is not consumed; calling again on an
// unmutated builder yields an equivalent, independent collection.
func (b *Builder) SafeHandlers(inv Invoker) SafeHandlers {
	safe := SafeHandlers{
		Document: make([]DocumentHandlers, 0, len(b.document)),
		Element:  make([]ElementEntry, 0, len(b.element)),
	}

	for _, d := range b.document {
		safe.Document = append(safe.Document, DocumentHandlers{
			Doctype:  adaptDoctype(inv, d.doctype),
			Comments: adaptComment(inv, d.comments),
			Text:     adaptText(inv, d.text),
		})
	}

	for _, e := range b.element {
		safe.Element = append(safe.Element, ElementEntry{
			Selector: e.selector,
			Handlers: ElementHandlers{
				Element:  adaptElement(inv, e.element),
				Comments: adaptComment(inv, e.comments),
				Text:     adaptText(inv, e.text),
			},
		})
	}

	return safe
}

// Each adapt function closes over the slot's function index and user-data
// values, never the slot itself, so a produced closure stays valid after the
// builder's storage is gone.

func adaptDoctype(inv Invoker, s Slot) DoctypeFunc {
	if !s.Present() {
		return nil
	}
	fn, userData := s.Func, s.UserData
	return func(ctx context.Context, doctype *content.Doctype) (content.Directive, error) {
		return inv.InvokeHandler(ctx, fn, doctype, userData)
	}
}

func adaptComment(inv Invoker, s Slot) CommentFunc {
	if !s.Present() {
		return nil
	}
	fn, userData := s.Func, s.UserData
	return func(ctx context.Context, comment *content.Comment) (content.Directive, error) {
		return inv.InvokeHandler(ctx, fn, comment, userData)
	}
}

func adaptText(inv Invoker, s Slot) TextFunc {
	if !s.Present() {
		return nil
	}
	fn, userData := s.Func, s.UserData
	return func(ctx context.Context, chunk *content.TextChunk) (content.Directive, error) {
		return inv.InvokeHandler(ctx, fn, chunk, userData)
	}
}

func adaptElement(inv Invoker, s Slot) ElementFunc {
	if !s.Present() {
		return nil
	}
	fn, userData := s.Func, s.UserData
	return func(ctx context.Context, element *content.Element) (content.Directive, error) {
		return inv.InvokeHandler(ctx, fn, element, userData)
	}
}

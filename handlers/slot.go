package handlers

import (
	"context"

	"github.com/wippyai/html-rewriter/content"
)

// GuestFunc identifies guest handler code by its function-table index.
// Index 0 is reserved and means "no handler registered".
type GuestFunc uint32

// NoFunc is the absent-handler marker.
const NoFunc GuestFunc = 0

// UserData is an opaque guest value. The host never dereferences it, only
// forwards it on every invocation of its associated handler.
type UserData uint32

// Slot is one optional handler registration for a single event kind.
type Slot struct {
	Func     GuestFunc
	UserData UserData
}

// Present reports whether a handler was registered in this slot.
func (s Slot) Present() bool {
	return s.Func != NoFunc
}

// Invoker calls guest handler code with an event object. The engine supplies
// one; tests supply fakes. The event is valid only for the span of the call.
type Invoker interface {
	InvokeHandler(ctx context.Context, fn GuestFunc, event any, userData UserData) (content.Directive, error)
}

// Typed handler closures produced by adaptation. A nil closure means no
// handler was registered for that event kind and the engine skips it.
type (
	DoctypeFunc func(ctx context.Context, doctype *content.Doctype) (content.Directive, error)
	CommentFunc func(ctx context.Context, comment *content.Comment) (content.Directive, error)
	TextFunc    func(ctx context.Context, chunk *content.TextChunk) (content.Directive, error)
	ElementFunc func(ctx context.Context, element *content.Element) (content.Directive, error)
)

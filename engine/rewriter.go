package engine

import (
	"context"

	"github.com/wippyai/html-rewriter/content"
	"github.com/wippyai/html-rewriter/handlers"
)

// Rewriter dispatches rewriting events through a finalized handler
// collection. It finalizes the builder exactly once, at construction; the
// builder may be mutated or freed afterwards without affecting the rewriter.
//
// Dispatch order is registration order. For comments and text, document-scope
// handlers fire before element-scope handlers of currently open matched
// elements. A Stop directive halts the rewrite; subsequent events are
// dropped.
type Rewriter struct {
	safe    handlers.SafeHandlers
	scopes  []scopeFrame
	stopped bool
}

// scopeFrame holds the element-scoped handlers that apply while one element
// is open. One frame is pushed per StartElement, matched or not.
type scopeFrame struct {
	comments []handlers.CommentFunc
	text     []handlers.TextFunc
}

// NewRewriter adapts the builder's registrations through inv and returns a
// rewriter ready to receive events.
func NewRewriter(b *handlers.Builder, inv handlers.Invoker) *Rewriter {
	return &Rewriter{safe: b.SafeHandlers(inv)}
}

// Handlers returns the finalized handler collection.
func (r *Rewriter) Handlers() handlers.SafeHandlers {
	return r.safe
}

// Stopped reports whether a handler has halted the rewrite.
func (r *Rewriter) Stopped() bool {
	return r.stopped
}

// OnDoctype dispatches a doctype event to document-scope handlers.
func (r *Rewriter) OnDoctype(ctx context.Context, doctype *content.Doctype) error {
	if r.stopped {
		return nil
	}
	for _, set := range r.safe.Document {
		if set.Doctype == nil {
			continue
		}
		if halt, err := r.apply(set.Doctype(ctx, doctype)); halt || err != nil {
			return err
		}
	}
	return nil
}

// OnComment dispatches a comment event to document-scope handlers, then to
// element-scope handlers of open matched elements.
func (r *Rewriter) OnComment(ctx context.Context, comment *content.Comment) error {
	if r.stopped {
		return nil
	}
	for _, set := range r.safe.Document {
		if set.Comments == nil {
			continue
		}
		if halt, err := r.apply(set.Comments(ctx, comment)); halt || err != nil {
			return err
		}
	}
	for _, frame := range r.scopes {
		for _, fn := range frame.comments {
			if halt, err := r.apply(fn(ctx, comment)); halt || err != nil {
				return err
			}
		}
	}
	return nil
}

// OnText dispatches a text chunk event to document-scope handlers, then to
// element-scope handlers of open matched elements.
func (r *Rewriter) OnText(ctx context.Context, chunk *content.TextChunk) error {
	if r.stopped {
		return nil
	}
	for _, set := range r.safe.Document {
		if set.Text == nil {
			continue
		}
		if halt, err := r.apply(set.Text(ctx, chunk)); halt || err != nil {
			return err
		}
	}
	for _, frame := range r.scopes {
		for _, fn := range frame.text {
			if halt, err := r.apply(fn(ctx, chunk)); halt || err != nil {
				return err
			}
		}
	}
	return nil
}

// StartElement dispatches an element event to every entry whose selector
// matches, in registration order, and opens a scope for their comment and
// text handlers. Every StartElement must be paired with an EndElement.
func (r *Rewriter) StartElement(ctx context.Context, element *content.Element) error {
	frame := scopeFrame{}
	defer func() {
		r.scopes = append(r.scopes, frame)
	}()

	if r.stopped {
		return nil
	}

	for _, entry := range r.safe.Element {
		if !entry.Selector.Matches(element.Node()) {
			continue
		}
		if entry.Handlers.Comments != nil {
			frame.comments = append(frame.comments, entry.Handlers.Comments)
		}
		if entry.Handlers.Text != nil {
			frame.text = append(frame.text, entry.Handlers.Text)
		}
		if entry.Handlers.Element == nil {
			continue
		}
		if halt, err := r.apply(entry.Handlers.Element(ctx, element)); halt || err != nil {
			return err
		}
	}
	return nil
}

// EndElement closes the scope opened by the matching StartElement.
func (r *Rewriter) EndElement() {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// apply folds a handler result into rewriter state. It returns true when
// dispatch of the current event must halt.
func (r *Rewriter) apply(d content.Directive, err error) (bool, error) {
	if err != nil {
		return true, err
	}
	if d == content.Stop {
		r.stopped = true
		return true, nil
	}
	return false, nil
}

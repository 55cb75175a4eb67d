package engine

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/html-rewriter/content"
	"github.com/wippyai/html-rewriter/errors"
	"github.com/wippyai/html-rewriter/handle"
	"github.com/wippyai/html-rewriter/handlers"
)

// Trampoline export names, one per event kind.
const (
	InvokeDoctypeExport = "html_rewriter_invoke_doctype_handler"
	InvokeCommentExport = "html_rewriter_invoke_comment_handler"
	InvokeTextExport    = "html_rewriter_invoke_text_handler"
	InvokeElementExport = "html_rewriter_invoke_element_handler"
)

// Event handle type IDs.
const (
	TypeDoctype uint32 = iota + 1
	TypeComment
	TypeText
	TypeElement
)

// callFunc invokes a guest export by name. Split out so tests can stand in
// for a real module.
type callFunc func(ctx context.Context, export string, params ...uint64) ([]uint64, error)

// GuestInvoker implements handlers.Invoker against a guest module's exported
// trampolines. Event objects are registered in a handle table for exactly the
// span of one trampoline call.
type GuestInvoker struct {
	call   callFunc
	events *handle.Table
}

// NewGuestInvoker creates an invoker bound to a guest module.
func NewGuestInvoker(mod api.Module) *GuestInvoker {
	return newGuestInvoker(func(ctx context.Context, export string, params ...uint64) ([]uint64, error) {
		fn := mod.ExportedFunction(export)
		if fn == nil {
			return nil, errors.New(errors.PhaseDispatch, errors.KindNotFound).
				Detail("guest does not export %q", export).
				Build()
		}
		return fn.Call(ctx, params...)
	})
}

func newGuestInvoker(call callFunc) *GuestInvoker {
	return &GuestInvoker{
		call:   call,
		events: handle.NewTable(),
	}
}

// InvokeHandler calls guest handler fn with the given event object, passing
// userData through unexamined, and returns the guest's control directive.
func (g *GuestInvoker) InvokeHandler(ctx context.Context, fn handlers.GuestFunc, event any, userData handlers.UserData) (content.Directive, error) {
	var export string
	var typeID uint32

	switch event.(type) {
	case *content.Doctype:
		export, typeID = InvokeDoctypeExport, TypeDoctype
	case *content.Comment:
		export, typeID = InvokeCommentExport, TypeComment
	case *content.TextChunk:
		export, typeID = InvokeTextExport, TypeText
	case *content.Element:
		export, typeID = InvokeElementExport, TypeElement
	default:
		return content.Continue, errors.InvalidInput(errors.PhaseDispatch,
			fmt.Sprintf("unsupported event type %T", event))
	}

	// The event is reachable by the guest only while the trampoline runs.
	h := g.events.Insert(typeID, event)
	defer g.events.Remove(h)

	results, err := g.call(ctx, export, uint64(fn), uint64(h), uint64(userData))
	if err != nil {
		if _, ok := err.(*errors.Error); ok {
			return content.Continue, err
		}
		return content.Continue, errors.Trap(err, export)
	}
	if len(results) != 1 {
		return content.Continue, errors.InvalidInput(errors.PhaseDispatch,
			fmt.Sprintf("%s returned %d values, want 1", export, len(results)))
	}

	d := content.Directive(api.DecodeI32(results[0]))
	if !d.Valid() {
		return content.Continue, errors.InvalidDirective(int32(d))
	}

	Logger().Debug("guest handler invoked",
		zap.String("trampoline", export),
		zap.Uint32("fn", uint32(fn)),
		zap.String("directive", d.String()))
	return d, nil
}

// Event resolves a live event handle. Host functions that expose event
// accessors to the guest resolve their first argument through this.
func (g *GuestInvoker) Event(h handle.Handle) (any, bool) {
	return g.events.Get(h)
}

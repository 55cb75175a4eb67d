package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/wippyai/html-rewriter/content"
	"github.com/wippyai/html-rewriter/handlers"
)

// scriptedInvoker records which guest functions fire and scripts their
// directives.
type scriptedInvoker struct {
	fired      []handlers.GuestFunc
	directives map[handlers.GuestFunc]content.Directive
	errs       map[handlers.GuestFunc]error
}

func newScriptedInvoker() *scriptedInvoker {
	return &scriptedInvoker{
		directives: make(map[handlers.GuestFunc]content.Directive),
		errs:       make(map[handlers.GuestFunc]error),
	}
}

func (s *scriptedInvoker) InvokeHandler(_ context.Context, fn handlers.GuestFunc, _ any, _ handlers.UserData) (content.Directive, error) {
	s.fired = append(s.fired, fn)
	return s.directives[fn], s.errs[fn]
}

func slot(fn uint32) handlers.Slot {
	return handlers.Slot{Func: handlers.GuestFunc(fn), UserData: handlers.UserData(fn * 10)}
}

func TestRewriter_DocumentDispatchOrder(t *testing.T) {
	b := handlers.NewBuilder()
	b.AddDocumentHandlers(slot(1), handlers.Slot{}, handlers.Slot{})
	b.AddDocumentHandlers(slot(2), handlers.Slot{}, handlers.Slot{})
	b.AddDocumentHandlers(slot(3), handlers.Slot{}, handlers.Slot{})

	inv := newScriptedInvoker()
	rw := NewRewriter(b, inv)

	if err := rw.OnDoctype(context.Background(), content.NewDoctype("html", "", "")); err != nil {
		t.Fatal(err)
	}

	want := []handlers.GuestFunc{1, 2, 3}
	if len(inv.fired) != len(want) {
		t.Fatalf("fired %v, want %v", inv.fired, want)
	}
	for i, fn := range want {
		if inv.fired[i] != fn {
			t.Errorf("fired[%d] = %d, want %d", i, inv.fired[i], fn)
		}
	}
}

func TestRewriter_ElementMatchOrder(t *testing.T) {
	b := handlers.NewBuilder()
	for i, sel := range []string{"a", "div", "a"} {
		if err := b.AddElementHandlers([]byte(sel), slot(uint32(i+1)), handlers.Slot{}, handlers.Slot{}); err != nil {
			t.Fatal(err)
		}
	}

	inv := newScriptedInvoker()
	rw := NewRewriter(b, inv)

	// An <a> element fires the first and third entries, in registration order.
	if err := rw.StartElement(context.Background(), content.NewElementWithTag("a")); err != nil {
		t.Fatal(err)
	}
	rw.EndElement()

	want := []handlers.GuestFunc{1, 3}
	if len(inv.fired) != len(want) {
		t.Fatalf("fired %v, want %v", inv.fired, want)
	}
	for i, fn := range want {
		if inv.fired[i] != fn {
			t.Errorf("fired[%d] = %d, want %d", i, inv.fired[i], fn)
		}
	}

	// A <span> matches nothing.
	inv.fired = nil
	if err := rw.StartElement(context.Background(), content.NewElementWithTag("span")); err != nil {
		t.Fatal(err)
	}
	rw.EndElement()
	if len(inv.fired) != 0 {
		t.Errorf("fired %v for non-matching element", inv.fired)
	}
}

func TestRewriter_ElementScopedTextAndComments(t *testing.T) {
	b := handlers.NewBuilder()
	b.AddDocumentHandlers(handlers.Slot{}, handlers.Slot{}, slot(1)) // document text
	if err := b.AddElementHandlers([]byte("p"), handlers.Slot{}, slot(2), slot(3)); err != nil {
		t.Fatal(err)
	}

	inv := newScriptedInvoker()
	rw := NewRewriter(b, inv)
	ctx := context.Background()

	// Outside any <p>: only the document text handler fires.
	if err := rw.OnText(ctx, content.NewTextChunk("outside", true)); err != nil {
		t.Fatal(err)
	}
	if len(inv.fired) != 1 || inv.fired[0] != 1 {
		t.Fatalf("fired %v outside element scope, want [1]", inv.fired)
	}

	// Inside an open <p>: document handler first, then element-scoped.
	inv.fired = nil
	if err := rw.StartElement(ctx, content.NewElementWithTag("p")); err != nil {
		t.Fatal(err)
	}
	if err := rw.OnText(ctx, content.NewTextChunk("inside", true)); err != nil {
		t.Fatal(err)
	}
	if err := rw.OnComment(ctx, content.NewComment("note")); err != nil {
		t.Fatal(err)
	}
	rw.EndElement()

	want := []handlers.GuestFunc{1, 3, 2} // doc text, element text, element comment
	if len(inv.fired) != len(want) {
		t.Fatalf("fired %v, want %v", inv.fired, want)
	}
	for i, fn := range want {
		if inv.fired[i] != fn {
			t.Errorf("fired[%d] = %d, want %d", i, inv.fired[i], fn)
		}
	}

	// Scope closed: element-scoped handlers no longer fire.
	inv.fired = nil
	if err := rw.OnText(ctx, content.NewTextChunk("after", true)); err != nil {
		t.Fatal(err)
	}
	if len(inv.fired) != 1 || inv.fired[0] != 1 {
		t.Fatalf("fired %v after scope closed, want [1]", inv.fired)
	}
}

func TestRewriter_StopHaltsDispatch(t *testing.T) {
	b := handlers.NewBuilder()
	b.AddDocumentHandlers(handlers.Slot{}, slot(1), handlers.Slot{})
	b.AddDocumentHandlers(handlers.Slot{}, slot(2), handlers.Slot{})

	inv := newScriptedInvoker()
	inv.directives[1] = content.Stop
	rw := NewRewriter(b, inv)
	ctx := context.Background()

	if err := rw.OnComment(ctx, content.NewComment("x")); err != nil {
		t.Fatal(err)
	}
	if !rw.Stopped() {
		t.Fatal("rewriter must be stopped after a Stop directive")
	}
	if len(inv.fired) != 1 {
		t.Fatalf("fired %v, the second handler must not run", inv.fired)
	}

	// Later events are dropped entirely.
	if err := rw.OnComment(ctx, content.NewComment("y")); err != nil {
		t.Fatal(err)
	}
	if err := rw.OnDoctype(ctx, content.NewDoctype("html", "", "")); err != nil {
		t.Fatal(err)
	}
	if len(inv.fired) != 1 {
		t.Fatalf("fired %v after stop, want no further calls", inv.fired)
	}
}

func TestRewriter_HandlerErrorPropagates(t *testing.T) {
	b := handlers.NewBuilder()
	b.AddDocumentHandlers(slot(1), handlers.Slot{}, handlers.Slot{})

	inv := newScriptedInvoker()
	inv.errs[1] = fmt.Errorf("guest trap")
	rw := NewRewriter(b, inv)

	err := rw.OnDoctype(context.Background(), content.NewDoctype("html", "", ""))
	if err == nil {
		t.Fatal("expected handler error to propagate")
	}
}

func TestRewriter_NestedScopes(t *testing.T) {
	b := handlers.NewBuilder()
	if err := b.AddElementHandlers([]byte("div"), handlers.Slot{}, handlers.Slot{}, slot(1)); err != nil {
		t.Fatal(err)
	}
	if err := b.AddElementHandlers([]byte("p"), handlers.Slot{}, handlers.Slot{}, slot(2)); err != nil {
		t.Fatal(err)
	}

	inv := newScriptedInvoker()
	rw := NewRewriter(b, inv)
	ctx := context.Background()

	// <div><p>text</p></div>: both scopes open when the text arrives.
	if err := rw.StartElement(ctx, content.NewElementWithTag("div")); err != nil {
		t.Fatal(err)
	}
	if err := rw.StartElement(ctx, content.NewElementWithTag("p")); err != nil {
		t.Fatal(err)
	}
	if err := rw.OnText(ctx, content.NewTextChunk("text", true)); err != nil {
		t.Fatal(err)
	}

	want := []handlers.GuestFunc{1, 2} // outer scope first
	if len(inv.fired) != len(want) {
		t.Fatalf("fired %v, want %v", inv.fired, want)
	}

	rw.EndElement() // </p>
	inv.fired = nil
	if err := rw.OnText(ctx, content.NewTextChunk("tail", true)); err != nil {
		t.Fatal(err)
	}
	if len(inv.fired) != 1 || inv.fired[0] != 1 {
		t.Fatalf("fired %v inside div only, want [1]", inv.fired)
	}
	rw.EndElement() // </div>
}

func TestRewriter_BuilderIndependence(t *testing.T) {
	b := handlers.NewBuilder()
	b.AddDocumentHandlers(slot(1), handlers.Slot{}, handlers.Slot{})

	inv := newScriptedInvoker()
	rw := NewRewriter(b, inv)

	// Registrations after construction do not reach the rewriter.
	b.AddDocumentHandlers(slot(9), handlers.Slot{}, handlers.Slot{})
	if len(rw.Handlers().Document) != 1 {
		t.Fatalf("collection holds %d document sets, want the construction snapshot of 1", len(rw.Handlers().Document))
	}

	if err := rw.OnDoctype(context.Background(), content.NewDoctype("html", "", "")); err != nil {
		t.Fatal(err)
	}
	if len(inv.fired) != 1 || inv.fired[0] != 1 {
		t.Fatalf("fired %v, want only the pre-construction registration", inv.fired)
	}
}

package boundary

import (
	"testing"

	"github.com/wippyai/html-rewriter/errors"
)

// fakeMemory is a flat guest memory image for tests.
type fakeMemory struct {
	data []byte
}

func (m fakeMemory) Read(offset uint32, length uint32) ([]byte, error) {
	end := int(offset) + int(length)
	if end > len(m.data) {
		return nil, errors.OutOfBounds(errors.PhaseBoundary, offset, length)
	}
	out := make([]byte, length)
	copy(out, m.data[offset:end])
	return out, nil
}

func memWith(selector string) (fakeMemory, uint32, uint32) {
	// Place the selector away from offset 0 so tests exercise real offsets.
	data := append(make([]byte, 16), []byte(selector)...)
	return fakeMemory{data: data}, 16, uint32(len(selector))
}

func TestService_BuilderLifecycle(t *testing.T) {
	s := NewService(nil)

	h := s.BuilderNew()
	if h == 0 {
		t.Fatal("BuilderNew returned the invalid handle")
	}
	if s.Live() != 1 {
		t.Fatalf("Live() = %d, want 1", s.Live())
	}

	if _, ok := s.Builder(h); !ok {
		t.Fatal("Builder lookup failed for live handle")
	}

	s.BuilderFree(h)
	if s.Live() != 0 {
		t.Fatalf("Live() = %d after free, want 0", s.Live())
	}
	if _, ok := s.Builder(h); ok {
		t.Fatal("Builder lookup succeeded for freed handle")
	}

	// Freeing again is a no-op
	s.BuilderFree(h)
	s.BuilderFree(0)
}

func TestService_AddDocumentHandlers(t *testing.T) {
	s := NewService(nil)
	h := s.BuilderNew()

	s.AddDocumentHandlers(h, 1, 10, 0, 0, 2, 20)
	s.AddDocumentHandlers(h, 0, 0, 3, 30, 0, 0)

	b, _ := s.Builder(h)
	if b.DocumentCount() != 2 {
		t.Fatalf("DocumentCount() = %d, want 2", b.DocumentCount())
	}

	// Unknown handle is ignored
	s.AddDocumentHandlers(999, 1, 1, 1, 1, 1, 1)
	if b.DocumentCount() != 2 {
		t.Fatal("registration against unknown handle must not touch live builders")
	}
}

func TestService_AddElementHandlers(t *testing.T) {
	s := NewService(nil)
	h := s.BuilderNew()
	mem, ptr, length := memWith("div.note")

	status := s.AddElementHandlers(h, mem, ptr, length, 1, 10, 0, 0, 0, 0)
	if status != StatusOK {
		t.Fatalf("status = %d, want %d", status, StatusOK)
	}

	b, _ := s.Builder(h)
	if b.ElementCount() != 1 {
		t.Fatalf("ElementCount() = %d, want 1", b.ElementCount())
	}
	if b.Selectors()[0].String() != "div.note" {
		t.Errorf("selector = %q", b.Selectors()[0].String())
	}
}

func TestService_AddElementHandlers_MalformedSelector(t *testing.T) {
	s := NewService(nil)
	h := s.BuilderNew()
	mem, ptr, length := memWith("[")

	status := s.AddElementHandlers(h, mem, ptr, length, 1, 10, 0, 0, 0, 0)
	if status != StatusError {
		t.Fatalf("status = %d, want %d", status, StatusError)
	}

	// Failure leaves the builder unchanged
	b, _ := s.Builder(h)
	if b.ElementCount() != 0 {
		t.Fatalf("ElementCount() = %d after rejected registration, want 0", b.ElementCount())
	}
}

func TestService_AddElementHandlers_BadBuffer(t *testing.T) {
	s := NewService(nil)
	h := s.BuilderNew()
	mem := fakeMemory{data: make([]byte, 8)}

	// Buffer extends past the end of guest memory
	status := s.AddElementHandlers(h, mem, 4, 100, 1, 0, 0, 0, 0, 0)
	if status != StatusError {
		t.Fatalf("status = %d, want %d", status, StatusError)
	}

	b, _ := s.Builder(h)
	if b.ElementCount() != 0 {
		t.Fatal("out-of-bounds selector buffer must not register anything")
	}
}

func TestService_AddElementHandlers_UnknownBuilder(t *testing.T) {
	s := NewService(nil)
	mem, ptr, length := memWith("p")

	if status := s.AddElementHandlers(42, mem, ptr, length, 1, 0, 0, 0, 0, 0); status != StatusError {
		t.Fatalf("status = %d, want %d", status, StatusError)
	}
}

func TestService_HandleTyping(t *testing.T) {
	s := NewService(nil)
	h := s.BuilderNew()

	// A stale handle recycled into a new builder still resolves as a builder,
	// but the old handle value no longer reaches the old builder.
	b1, _ := s.Builder(h)
	s.BuilderFree(h)
	h2 := s.BuilderNew()
	b2, _ := s.Builder(h2)
	if b1 == b2 {
		t.Fatal("recycled handle must map to a fresh builder")
	}
}

package boundary

import (
	"go.uber.org/zap"

	htmlrewriter "github.com/wippyai/html-rewriter"
	"github.com/wippyai/html-rewriter/handle"
	"github.com/wippyai/html-rewriter/handlers"
)

// Status codes returned across the boundary.
const (
	StatusOK    int32 = 0
	StatusError int32 = 1
)

// TypeBuilder is the handle type ID for registration builders.
const TypeBuilder uint32 = 1

// Service owns the builder handle table and implements the four boundary
// operations. One Service serves one guest instance; operations on a single
// builder are expected to arrive from one thread of control.
type Service struct {
	table *handle.Table
	log   *zap.Logger
}

// NewService creates a boundary service. A nil logger disables logging.
func NewService(log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		table: handle.NewTable(),
		log:   log,
	}
}

// BuilderNew allocates an empty registration builder and returns its handle.
func (s *Service) BuilderNew() handle.Handle {
	h := s.table.Insert(TypeBuilder, handlers.NewBuilder())
	s.log.Debug("builder created", zap.Uint32("handle", uint32(h)))
	return h
}

// Builder resolves a builder handle. The engine's construction step uses this
// to finalize a guest-populated builder.
func (s *Service) Builder(h handle.Handle) (*handlers.Builder, bool) {
	v, ok := s.table.GetTyped(h, TypeBuilder)
	if !ok {
		return nil, false
	}
	return v.(*handlers.Builder), true
}

// AddDocumentHandlers appends one document-scoped registration. Unknown
// handles are ignored; the operation has no failure signal.
func (s *Service) AddDocumentHandlers(h handle.Handle,
	doctypeFn, doctypeData,
	commentsFn, commentsData,
	textFn, textData uint32,
) {
	b, ok := s.Builder(h)
	if !ok {
		s.log.Debug("add document handlers on unknown builder", zap.Uint32("handle", uint32(h)))
		return
	}

	b.AddDocumentHandlers(
		handlers.Slot{Func: handlers.GuestFunc(doctypeFn), UserData: handlers.UserData(doctypeData)},
		handlers.Slot{Func: handlers.GuestFunc(commentsFn), UserData: handlers.UserData(commentsData)},
		handlers.Slot{Func: handlers.GuestFunc(textFn), UserData: handlers.UserData(textData)},
	)
	s.log.Debug("document handlers registered",
		zap.Uint32("handle", uint32(h)),
		zap.Int("total", b.DocumentCount()))
}

// AddElementHandlers reads a selector buffer out of guest memory, parses it,
// and appends one element-scoped registration. It returns StatusOK on
// success; on any failure the builder is left unchanged and StatusError is
// returned.
func (s *Service) AddElementHandlers(h handle.Handle, mem htmlrewriter.Memory,
	selectorPtr, selectorLen uint32,
	elementFn, elementData,
	commentsFn, commentsData,
	textFn, textData uint32,
) int32 {
	b, ok := s.Builder(h)
	if !ok {
		s.log.Debug("add element handlers on unknown builder", zap.Uint32("handle", uint32(h)))
		return StatusError
	}

	raw, err := mem.Read(selectorPtr, selectorLen)
	if err != nil {
		s.log.Debug("selector buffer read failed",
			zap.Uint32("handle", uint32(h)),
			zap.Error(err))
		return StatusError
	}

	err = b.AddElementHandlers(raw,
		handlers.Slot{Func: handlers.GuestFunc(elementFn), UserData: handlers.UserData(elementData)},
		handlers.Slot{Func: handlers.GuestFunc(commentsFn), UserData: handlers.UserData(commentsData)},
		handlers.Slot{Func: handlers.GuestFunc(textFn), UserData: handlers.UserData(textData)},
	)
	if err != nil {
		s.log.Debug("element handler registration rejected",
			zap.Uint32("handle", uint32(h)),
			zap.Error(err))
		return StatusError
	}

	s.log.Debug("element handlers registered",
		zap.Uint32("handle", uint32(h)),
		zap.Int("total", b.ElementCount()))
	return StatusOK
}

// BuilderFree releases a builder. Freeing an unknown or already-freed handle
// is a no-op.
func (s *Service) BuilderFree(h handle.Handle) {
	if _, ok := s.table.Remove(h); ok {
		s.log.Debug("builder freed", zap.Uint32("handle", uint32(h)))
	}
}

// Live returns the number of live builder handles.
func (s *Service) Live() int {
	return s.table.Len()
}

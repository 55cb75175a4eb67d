package boundary

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/html-rewriter/errors"
	"github.com/wippyai/html-rewriter/handle"
)

// ModuleName is the import module name guests link against.
const ModuleName = "html_rewriter"

// Exported function names.
const (
	FnBuilderNew                = "rewriter_builder_new"
	FnAddDocumentContentHandler = "rewriter_builder_add_document_content_handlers"
	FnAddElementContentHandler  = "rewriter_builder_add_element_content_handlers"
	FnBuilderFree               = "rewriter_builder_free"
)

var (
	i32 = api.ValueTypeI32

	sigBuilderNew  = funcSig{results: []api.ValueType{i32}}
	sigAddDocument = funcSig{params: []api.ValueType{i32, i32, i32, i32, i32, i32, i32}}
	sigAddElement  = funcSig{
		params:  []api.ValueType{i32, i32, i32, i32, i32, i32, i32, i32, i32},
		results: []api.ValueType{i32},
	}
	sigBuilderFree = funcSig{params: []api.ValueType{i32}}
)

type funcSig struct {
	params  []api.ValueType
	results []api.ValueType
}

// Instantiate exports the boundary operations as the "html_rewriter" host
// module in rt. Guests instantiated afterwards in the same runtime can import
// them.
func (s *Service) Instantiate(ctx context.Context, rt wazero.Runtime) (api.Module, error) {
	b := rt.NewHostModuleBuilder(ModuleName)

	export := func(name string, fn api.GoModuleFunc, sig funcSig) {
		b.NewFunctionBuilder().
			WithGoModuleFunction(fn, sig.params, sig.results).
			Export(name)
	}

	export(FnBuilderNew, s.builderNew, sigBuilderNew)
	export(FnAddDocumentContentHandler, s.addDocumentContentHandlers, sigAddDocument)
	export(FnAddElementContentHandler, s.addElementContentHandlers, sigAddElement)
	export(FnBuilderFree, s.builderFree, sigBuilderFree)

	return b.Instantiate(ctx)
}

func (s *Service) builderNew(_ context.Context, _ api.Module, stack []uint64) {
	stack[0] = uint64(s.BuilderNew())
}

func (s *Service) addDocumentContentHandlers(_ context.Context, _ api.Module, stack []uint64) {
	s.AddDocumentHandlers(
		handle.Handle(api.DecodeU32(stack[0])),
		api.DecodeU32(stack[1]), api.DecodeU32(stack[2]),
		api.DecodeU32(stack[3]), api.DecodeU32(stack[4]),
		api.DecodeU32(stack[5]), api.DecodeU32(stack[6]),
	)
}

func (s *Service) addElementContentHandlers(_ context.Context, mod api.Module, stack []uint64) {
	status := s.AddElementHandlers(
		handle.Handle(api.DecodeU32(stack[0])),
		guestMemory{mem: mod.Memory()},
		api.DecodeU32(stack[1]), api.DecodeU32(stack[2]),
		api.DecodeU32(stack[3]), api.DecodeU32(stack[4]),
		api.DecodeU32(stack[5]), api.DecodeU32(stack[6]),
		api.DecodeU32(stack[7]), api.DecodeU32(stack[8]),
	)
	stack[0] = api.EncodeI32(status)
}

func (s *Service) builderFree(_ context.Context, _ api.Module, stack []uint64) {
	s.BuilderFree(handle.Handle(api.DecodeU32(stack[0])))
}

// guestMemory adapts wazero linear memory to the Memory interface. Reads are
// copied out so the bytes survive guest memory growth.
type guestMemory struct {
	mem api.Memory
}

func (g guestMemory) Read(offset uint32, length uint32) ([]byte, error) {
	if g.mem == nil {
		return nil, errors.InvalidInput(errors.PhaseBoundary, "guest module has no linear memory")
	}
	view, ok := g.mem.Read(offset, length)
	if !ok {
		return nil, errors.OutOfBounds(errors.PhaseBoundary, offset, length)
	}
	buf := make([]byte, len(view))
	copy(buf, view)
	return buf, nil
}

// Package htmlrewriter provides the guest-facing registration layer for a
// streaming HTML rewriting engine running WebAssembly guests.
//
// Guest code registers interest in rewriting events (doctype declarations,
// comments, text chunks, elements matched by a CSS selector) by calling host
// functions with guest function-table indices and opaque user-data pointers.
// The host accumulates registrations in a builder, validates selectors at
// registration time, and adapts every registration into a plain Go closure
// the streaming engine can invoke without touching raw guest values again.
//
// # Architecture Overview
//
//	htmlrewriter/    Root package with the guest Memory interface
//	├── errors/      Structured error types (phase + kind)
//	├── selector/    CSS selector decoding and parsing
//	├── content/     Event object types: Doctype, Comment, TextChunk, Element
//	├── handlers/    Registration builder and the handler adaptation layer
//	├── boundary/    Guest-facing ABI: handle table and host module export
//	└── engine/      Guest invoker, rewriter construction and event dispatch
//
// # Quick Start
//
// Host side, with a builder populated through the boundary by a guest:
//
//	b := handlers.NewBuilder()
//	// ... guest calls rewriter_builder_add_* through the boundary ...
//
//	inv := engine.NewGuestInvoker(guestModule)
//	rw := engine.NewRewriter(b, inv)
//
//	rw.OnDoctype(ctx, doctype)
//	rw.StartElement(ctx, element)
//	rw.OnText(ctx, chunk)
//	rw.EndElement()
//
// The builder may be freed as soon as the rewriter is constructed; adapted
// handlers carry their own copies of every guest value they need.
package htmlrewriter

// Package handlers accumulates guest handler registrations and adapts them
// into closures the streaming engine can invoke directly.
//
// A guest registers a handler as a pair of raw values: a function-table index
// identifying guest code, and an opaque user-data word passed back on every
// invocation. Neither is interpreted by the host. The Builder collects these
// pairs per event kind, in registration order, validating selectors on
// element-scoped registrations as they arrive.
//
// SafeHandlers is the finalized form. Each closure it holds captures the
// function index and user-data value it needs at adaptation time, so the
// collection stays valid after the builder is mutated or freed.
package handlers

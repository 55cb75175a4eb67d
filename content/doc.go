// Package content defines the event objects handed to rewriting handlers.
//
// A Doctype, Comment, TextChunk or Element is owned by the engine and valid
// only for the duration of one handler invocation; handlers must not retain
// references to it past their return. Handlers signal control flow back to
// the engine with a Directive.
package content

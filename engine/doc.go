// Package engine consumes finalized handler collections and dispatches
// rewriting events through them.
//
// The engine does not tokenize HTML; a tokenizer (or test driver) feeds it
// events. Two types matter:
//
//	GuestInvoker - calls guest handler code through exported trampolines,
//	               passing each event object as a short-lived handle
//	Rewriter     - finalizes a registration builder once at construction,
//	               then dispatches events in registration order
//
// # Guest Trampolines
//
// A guest that registers handlers must export one trampoline per event kind:
//
//	html_rewriter_invoke_doctype_handler(fn: i32, event: i32, user_data: i32) -> i32
//	html_rewriter_invoke_comment_handler(fn: i32, event: i32, user_data: i32) -> i32
//	html_rewriter_invoke_text_handler(fn: i32, event: i32, user_data: i32) -> i32
//	html_rewriter_invoke_element_handler(fn: i32, event: i32, user_data: i32) -> i32
//
// Each trampoline performs a call_indirect through the guest function table
// with the event handle and user data, and returns the handler's control
// directive (0 = continue, 1 = stop). The event handle is live only for the
// span of the call.
package engine

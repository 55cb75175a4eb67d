// Package boundary exposes the registration builder to WebAssembly guests.
//
// Guests see builders only as opaque handles. The host module exports four
// functions under the "html_rewriter" module name:
//
//	rewriter_builder_new() -> i32
//	rewriter_builder_add_document_content_handlers(builder,
//		doctype_fn, doctype_user_data,
//		comments_fn, comments_user_data,
//		text_fn, text_user_data)
//	rewriter_builder_add_element_content_handlers(builder,
//		selector_ptr, selector_len,
//		element_fn, element_user_data,
//		comments_fn, comments_user_data,
//		text_fn, text_user_data) -> i32
//	rewriter_builder_free(builder)
//
// Handler arguments are guest function-table indices (0 = no handler) paired
// with opaque user-data words. Selector buffers are read out of guest linear
// memory and validated synchronously; a failed registration returns a nonzero
// status and leaves the builder exactly as it was.
//
// Error signaling across the boundary is a bare status code. Structured
// errors stay host-side, in the debug log.
package boundary

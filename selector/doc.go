// Package selector parses CSS selector expressions supplied by guests.
//
// Guests hand selectors across the boundary as raw byte buffers. ParseBytes
// validates the buffer is UTF-8 text, then parses it under the CSS selector
// grammar. Both failure modes reject the buffer synchronously; a Selector is
// only ever constructed from text that parsed cleanly, so match evaluation
// never revalidates.
package selector

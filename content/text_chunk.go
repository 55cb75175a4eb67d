package content

// TextChunk is one fragment of a text node as it streams through the engine.
// A single text node may arrive as several chunks; LastInTextNode marks the
// final one.
type TextChunk struct {
	text           string
	lastInTextNode bool
	replacement    string
	replaced       bool
	removed        bool
}

// NewTextChunk creates a text chunk event.
func NewTextChunk(text string, lastInTextNode bool) *TextChunk {
	return &TextChunk{text: text, lastInTextNode: lastInTextNode}
}

// Text returns the chunk's text content.
func (t *TextChunk) Text() string {
	return t.text
}

// LastInTextNode reports whether this is the final chunk of its text node.
func (t *TextChunk) LastInTextNode() bool {
	return t.lastInTextNode
}

// Replace substitutes the chunk with the given content in the output.
func (t *TextChunk) Replace(content string) {
	t.replacement = content
	t.replaced = true
	t.removed = false
}

// Remove drops the chunk from the output.
func (t *TextChunk) Remove() {
	t.removed = true
	t.replaced = false
}

// Removed reports whether the chunk has been removed.
func (t *TextChunk) Removed() bool {
	return t.removed
}

// Replacement returns the substituted content, if Replace was called.
func (t *TextChunk) Replacement() (string, bool) {
	return t.replacement, t.replaced
}

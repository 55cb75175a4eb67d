package content

import (
	"strings"

	"github.com/wippyai/html-rewriter/errors"
)

// Comment is an HTML comment event.
type Comment struct {
	text    string
	removed bool
}

// NewComment creates a comment event with the given text.
func NewComment(text string) *Comment {
	return &Comment{text: text}
}

// Text returns the comment text.
func (c *Comment) Text() string {
	return c.text
}

// SetText replaces the comment text. Text that would terminate the comment
// prematurely ("-->") is rejected.
func (c *Comment) SetText(text string) error {
	if strings.Contains(text, "-->") {
		return errors.InvalidInput(errors.PhaseDispatch, `comment text cannot contain "-->"`)
	}
	c.text = text
	return nil
}

// Remove marks the comment for removal from the output.
func (c *Comment) Remove() {
	c.removed = true
}

// Removed reports whether the comment has been removed.
func (c *Comment) Removed() bool {
	return c.removed
}

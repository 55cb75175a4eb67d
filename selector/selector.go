package selector

import (
	"unicode/utf8"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/wippyai/html-rewriter/errors"
)

// Selector is an immutable parsed CSS selector expression.
type Selector struct {
	text  string
	group cascadia.SelectorGroup
}

// Parse parses selector text. The returned Selector is immutable.
func Parse(text string) (*Selector, error) {
	group, err := cascadia.ParseGroup(text)
	if err != nil {
		return nil, errors.MalformedSelector(text, err)
	}
	return &Selector{text: text, group: group}, nil
}

// ParseBytes decodes a guest-supplied buffer as UTF-8 and parses it.
func ParseBytes(raw []byte) (*Selector, error) {
	if !utf8.Valid(raw) {
		return nil, errors.InvalidUTF8(errors.PhaseParse, raw)
	}
	return Parse(string(raw))
}

// Matches reports whether the selector matches the given element node.
func (s *Selector) Matches(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	return s.group.Match(n)
}

// String returns the selector source text.
func (s *Selector) String() string {
	return s.text
}

// Package content parses the plan markup produced by the plan-generation backend
// and exposes a read-only traversal API over it.
//
// The backend emits loosely structured HTML: workout cards, a nutrition table and
// mindset cards are only distinguishable by their inline styling. Nodes are
// classified into a small tag vocabulary (see Tag) either from an explicit
// data-plan-tag attribute or, for legacy markup, from those style signatures.
package content

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Document is a parsed plan content tree. It is never mutated after Parse.
type Document struct {
	root *html.Node
}

// Parse sanitizes and parses plan markup read from r.
func Parse(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("content: reading markup: %w", err)
	}
	return parse(Sanitize(raw))
}

// ParseString is a convenience wrapper around Parse for in-memory markup.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

func parse(markup []byte) (*Document, error) {
	root, err := html.Parse(bytes.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("content: parsing markup: %w", err)
	}
	return &Document{root: root}, nil
}

// Root returns the document root node.
func (d *Document) Root() *Node {
	if d == nil || d.root == nil {
		return nil
	}
	return &Node{n: d.root}
}

// Text returns the whole document's text content.
func (d *Document) Text() string {
	return d.Root().Text()
}

package content

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is a read-only view of an element (or the document root) in the tree.
type Node struct {
	n *html.Node
}

// Element returns the lower-case element name, or "" for non-element nodes.
func (n *Node) Element() string {
	if n == nil || n.n.Type != html.ElementNode {
		return ""
	}
	return n.n.Data
}

// Attr returns the value of the named attribute or "".
func (n *Node) Attr(key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Style returns the parsed inline style declarations of n.
func (n *Node) Style() Style {
	return ParseStyle(n.Attr("style"))
}

// Tag returns the vocabulary tag n is classified as.
func (n *Node) Tag() Tag {
	return Classify(n)
}

// Text returns the rendered text of the subtree: whitespace runs collapse to a
// single space, <br> becomes a newline, and the result is trimmed.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	collectText(n.n, &b)
	lines := strings.Split(b.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.Join(strings.Fields(l), " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func collectText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(strings.ReplaceAll(n.Data, "\n", " "))
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Br:
			b.WriteByte('\n')
			return
		case atom.Script, atom.Style:
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// Children returns the direct element children of n matching m, in document order.
func (n *Node) Children(m Matcher) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		cn := &Node{n: c}
		if m == nil || m.Match(cn) {
			out = append(out, cn)
		}
	}
	return out
}

// FindAll returns every descendant of n (excluding n itself) matching m, in
// document order.
func (n *Node) FindAll(m Matcher) []*Node {
	var out []*Node
	n.walk(func(d *Node) bool {
		if m.Match(d) {
			out = append(out, d)
		}
		return true
	})
	return out
}

// First returns the first descendant of n matching m, or nil.
func (n *Node) First(m Matcher) *Node {
	var found *Node
	n.walk(func(d *Node) bool {
		if m.Match(d) {
			found = d
			return false
		}
		return true
	})
	return found
}

// walk visits element descendants depth-first until fn returns false.
func (n *Node) walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	var rec func(*html.Node) bool
	rec = func(p *html.Node) bool {
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				if !fn(&Node{n: c}) {
					return false
				}
			}
			if !rec(c) {
				return false
			}
		}
		return true
	}
	rec(n.n)
}

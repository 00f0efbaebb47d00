package content

// Matcher selects nodes during traversal.
type Matcher interface {
	Match(n *Node) bool
}

// MatchFunc adapts a function to a Matcher.
type MatchFunc func(n *Node) bool

// Match calls f(n).
func (f MatchFunc) Match(n *Node) bool { return f(n) }

// Element matches elements with any of the given names.
func Element(names ...string) Matcher {
	return MatchFunc(func(n *Node) bool {
		el := n.Element()
		for _, name := range names {
			if el == name {
				return true
			}
		}
		return false
	})
}

// Declares matches nodes whose inline style declares prop with a value
// starting with valuePrefix.
func Declares(prop, valuePrefix string) Matcher {
	return MatchFunc(func(n *Node) bool {
		return n.Style().Has(prop, valuePrefix)
	})
}

// Tagged matches nodes classified as t.
func Tagged(t Tag) Matcher {
	return MatchFunc(func(n *Node) bool {
		return Classify(n) == t
	})
}

// All matches nodes accepted by every matcher in ms.
func All(ms ...Matcher) Matcher {
	return MatchFunc(func(n *Node) bool {
		for _, m := range ms {
			if !m.Match(n) {
				return false
			}
		}
		return true
	})
}

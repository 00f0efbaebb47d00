package content

import "strings"

// Style is a parsed inline style attribute: property -> normalized value.
// Properties are lower-cased; values are lower-cased with whitespace collapsed.
type Style map[string]string

// ParseStyle parses a CSS declaration list such as "padding:18px; color: #fff".
func ParseStyle(attr string) Style {
	st := Style{}
	for _, decl := range strings.Split(attr, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		if prop == "" {
			continue
		}
		st[prop] = normalizeValue(val)
	}
	return st
}

func normalizeValue(v string) string {
	return strings.ToLower(strings.Join(strings.Fields(v), " "))
}

// Has reports whether the style declares prop with a value starting with
// valuePrefix. An empty prefix only checks that prop is declared.
func (s Style) Has(prop, valuePrefix string) bool {
	v, ok := s[strings.ToLower(prop)]
	if !ok {
		return false
	}
	return strings.HasPrefix(v, normalizeValue(valuePrefix))
}

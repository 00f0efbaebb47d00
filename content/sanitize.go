package content

import "github.com/microcosm-cc/bluemonday"

// policy keeps the markup the extractor relies on (inline styles, data-plan-tag,
// tables, emphasis) and drops scripts, handlers and embedded objects.
var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("style").Globally()
	p.AllowDataAttributes()
	p.AllowElements("div", "span", "small", "section", "article")
	return p
}

// Sanitize strips active content from upstream markup while preserving the
// structure used for extraction.
func Sanitize(markup []byte) []byte {
	return policy.SanitizeBytes(markup)
}

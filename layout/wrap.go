package layout

import (
	"strings"
	"unicode/utf8"
)

// WrapText breaks text into lines no wider than maxWidth, as measured by
// width. Newlines force a break; words wider than a line are split by rune.
func WrapText(text string, maxWidth float64, width func(string) float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := ""
		for _, w := range words {
			for width(w) > maxWidth && utf8.RuneCountInString(w) > 1 {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				head, tail := splitToFit(w, maxWidth, width)
				lines = append(lines, head)
				w = tail
			}
			if line == "" {
				line = w
				continue
			}
			if candidate := line + " " + w; width(candidate) <= maxWidth {
				line = candidate
			} else {
				lines = append(lines, line)
				line = w
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// splitToFit returns the longest rune prefix of w fitting maxWidth (at least
// one rune) and the remainder.
func splitToFit(w string, maxWidth float64, width func(string) float64) (string, string) {
	end := 0
	for end < len(w) {
		_, size := utf8.DecodeRuneInString(w[end:])
		if end > 0 && width(w[:end+size]) > maxWidth {
			break
		}
		end += size
	}
	return w[:end], w[end:]
}

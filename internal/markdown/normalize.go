package markdown

import (
	"regexp"
	"strings"
)

var (
	hspaceRE = regexp.MustCompile("[ \t　]+")
	blanksRE = regexp.MustCompile(`\n{3,}`)
)

// Normalize collapses runs of horizontal whitespace to a single space,
// trims each line, reduces blank-line runs to a single paragraph break and
// trims the document boundaries. Idempotent.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSpace(hspaceRE.ReplaceAllString(ln, " "))
	}
	text = strings.Join(lines, "\n")
	text = blanksRE.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

package markdown

import (
	"regexp"
	"strings"
)

var annotationRE = regexp.MustCompile(`^(注意|注記|備考|補足|警告|メモ|Note|NOTE|Warning|WARNING|Caution|Remark)[\s　]*[:：][\s　]*(.*)$`)

// wrappedPairs are the delimiter pairs that mark a whole line as quoted or
// parenthetical material.
var wrappedPairs = [][2]string{
	{"（", "）"},
	{"(", ")"},
	{"「", "」"},
	{"『", "』"},
	{"“", "”"},
	{`"`, `"`},
}

// detectQuotes turns annotation-marker lines into labeled blockquotes and
// fully wrapped parenthetical lines into plain blockquotes. It runs after
// the list and table passes so their lines are never reclassified.
func detectQuotes(text string) string {
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if ln == "" || strings.HasPrefix(ln, "#") || strings.HasPrefix(ln, "- ") ||
			strings.HasPrefix(ln, "> ") || strings.HasPrefix(ln, "|") || listItemRE.MatchString(ln) {
			continue
		}
		if m := annotationRE.FindStringSubmatch(ln); m != nil {
			lines[i] = "> **" + m[1] + ":** " + m[2]
			continue
		}
		if isWrapped(ln) {
			lines[i] = "> " + ln
		}
	}
	return strings.Join(lines, "\n")
}

func isWrapped(ln string) bool {
	for _, pair := range wrappedPairs {
		open, closing := pair[0], pair[1]
		if len(ln) > len(open)+len(closing) &&
			strings.HasPrefix(ln, open) && strings.HasSuffix(ln, closing) &&
			!strings.Contains(ln[len(open):len(ln)-len(closing)], closing) {
			return true
		}
	}
	return false
}

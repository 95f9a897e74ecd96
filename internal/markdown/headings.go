package markdown

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Heading patterns in specificity order. Explicit chapter/section markers
// outrank bare numeric prefixes, which outrank the short-line signal; the
// first matching pattern decides the level and later ones never re-tag.
var (
	chapterRE    = regexp.MustCompile(`^第[0-9０-９]+章`)
	sectionRE    = regexp.MustCompile(`^第[0-9０-９]+[節項]`)
	numDottedRE  = regexp.MustCompile(`^\d+\.\d+[.\d]*[\s　]*\S`)
	numPlainRE   = regexp.MustCompile(`^[0-9０-９]+[.．][\s　]*\S`)
	letterDotRE  = regexp.MustCompile(`^[A-Z]\.\s+\S`)
	allCapsRE    = regexp.MustCompile(`^[A-Z0-9][A-Z0-9 :&\-]{2,}$`)
	numPrefixRE  = regexp.MustCompile(`^(第[0-9０-９]+[章節項]|[0-9０-９]+([.．][0-9０-９]+)*[.．]?|[A-Z]\.)[\s　]*`)
	sentencePunc = "。．！？!?"
)

// detectHeadings rewrites heading-shaped lines into Markdown headings.
// A line qualifies only when it is short, carries no sentence-terminal
// punctuation after its numbering prefix, and matches one of the patterns.
func detectHeadings(text string, maxLen int) string {
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		if utf8.RuneCountInString(ln) > maxLen {
			continue
		}
		rest := numPrefixRE.ReplaceAllString(ln, "")
		if strings.ContainsAny(rest, sentencePunc) || strings.Contains(rest, ". ") || strings.HasSuffix(rest, ".") {
			continue
		}
		switch {
		case chapterRE.MatchString(ln):
			lines[i] = "## " + ln
		case sectionRE.MatchString(ln):
			lines[i] = "### " + ln
		case numDottedRE.MatchString(ln):
			lines[i] = "#### " + ln
		case numPlainRE.MatchString(ln):
			lines[i] = "### " + ln
		case letterDotRE.MatchString(ln):
			lines[i] = "#### " + ln
		case allCapsRE.MatchString(ln):
			lines[i] = "#### " + ln
		}
	}
	return strings.Join(lines, "\n")
}

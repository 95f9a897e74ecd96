package markdown

import (
	"regexp"
	"strings"
)

// defaultKeywords is the salience vocabulary bolded by the refiner, in
// both the source language and English.
var defaultKeywords = []string{
	"必須", "重要", "警告", "禁止", "推奨", "厳守",
	"required", "important", "warning", "prohibited", "recommended", "mandatory",
}

var fileTokenRE = regexp.MustCompile("`?[A-Za-z0-9_\\-./]+\\.(?:pdf|docx?|xlsx?|pptx?|md|txt|csv|json|ya?ml|toml|ini|conf|log|go|py|sh|rb|js|ts|html?|xml|png|jpe?g|gif|zip|tar|gz)\\b`?")

// boldMatcher wraps whole-token keyword occurrences in bold markers.
type boldMatcher struct {
	re *regexp.Regexp
}

// buildBoldMatchers compiles the keyword vocabulary into two matchers:
// ASCII keywords get word-boundary anchors, CJK keywords cannot (RE2 word
// boundaries are ASCII-only) and match as plain substrings.
func buildBoldMatchers(keywords []string) (ascii, cjk *boldMatcher) {
	var asciiWords, cjkWords []string
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if kw[0] < 0x80 {
			asciiWords = append(asciiWords, regexp.QuoteMeta(kw))
		} else {
			cjkWords = append(cjkWords, regexp.QuoteMeta(kw))
		}
	}
	if len(asciiWords) > 0 {
		ascii = &boldMatcher{re: regexp.MustCompile(`(\*\*)?(?i:\b(` + strings.Join(asciiWords, "|") + `)\b)(\*\*)?`)}
	}
	if len(cjkWords) > 0 {
		cjk = &boldMatcher{re: regexp.MustCompile(`(\*\*)?(` + strings.Join(cjkWords, "|") + `)(\*\*)?`)}
	}
	return ascii, cjk
}

// apply bolds matches that are not already bold.
func (m *boldMatcher) apply(s string) string {
	if m == nil {
		return s
	}
	return m.re.ReplaceAllStringFunc(s, func(match string) string {
		if strings.HasPrefix(match, "**") || strings.HasSuffix(match, "**") {
			return match
		}
		return "**" + match + "**"
	})
}

// refine enforces the block-spacing invariants, applies inline emphasis
// and code spans, and collapses leftover blank-line runs.
func (c *Converter) refine(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		ln := lines[i]
		if strings.HasPrefix(ln, "#") {
			// Exactly one blank line before and after a heading.
			for len(out) > 0 && out[len(out)-1] == "" {
				out = out[:len(out)-1]
			}
			if len(out) > 0 {
				out = append(out, "")
			}
			out = append(out, ln)
			j := i + 1
			for j < len(lines) && lines[j] == "" {
				j++
			}
			if j < len(lines) {
				out = append(out, "")
			}
			i = j - 1
			continue
		}
		// One blank line between a list run and trailing paragraph text.
		if isListItem(ln) && i+1 < len(lines) && lines[i+1] != "" &&
			!isListItem(lines[i+1]) && !strings.HasPrefix(lines[i+1], "#") {
			out = append(out, ln, "")
			continue
		}
		out = append(out, ln)
	}

	body := strings.Join(out, "\n")

	emphasized := make([]string, 0, len(out))
	for _, ln := range strings.Split(body, "\n") {
		if !strings.HasPrefix(ln, "#") {
			ln = c.asciiBold.apply(ln)
			ln = c.cjkBold.apply(ln)
			ln = wrapFileTokens(ln)
		}
		emphasized = append(emphasized, ln)
	}
	body = strings.Join(emphasized, "\n")

	return strings.TrimSpace(blanksRE.ReplaceAllString(body, "\n\n"))
}

func isListItem(ln string) bool {
	return strings.HasPrefix(ln, "- ") || listItemRE.MatchString(ln)
}

// wrapFileTokens puts filename-shaped tokens in inline code spans, leaving
// alone tokens that are already code or part of a link target.
func wrapFileTokens(ln string) string {
	locs := fileTokenRE.FindAllStringIndex(ln, -1)
	if locs == nil {
		return ln
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		m := ln[start:end]
		if strings.HasPrefix(m, "`") || strings.HasSuffix(m, "`") {
			continue
		}
		if start >= 1 && (ln[start-1] == '/' || ln[start-1] == ':' || ln[start-1] == '(') {
			continue
		}
		b.WriteString(ln[last:start])
		b.WriteString("`")
		b.WriteString(m)
		b.WriteString("`")
		last = end
	}
	b.WriteString(ln[last:])
	return b.String()
}

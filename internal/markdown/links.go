package markdown

import (
	"regexp"
	"strings"
)

var (
	urlRE   = regexp.MustCompile(`https?://[^\s<>"）」]+`)
	emailRE = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// Trailing punctuation is stripped from a match before wrapping, so a
	// URL at the end of a parenthetical or sentence keeps its closer.
	urlTrailing = ")],.;:!?'\"」）。、"
)

// linkify wraps URL- and email-shaped substrings in inline Markdown links.
// Re-running it on its own output is a no-op: a span already inside a
// generated link is never wrapped twice.
func linkify(text string) string {
	text = wrapMatches(text, urlRE, "", func(m string) (string, string) {
		return m, m
	})
	// An email inside an already-wrapped URL (user@host in an authority
	// part) is preceded by "/" or ":" and must stay untouched.
	text = wrapMatches(text, emailRE, "/:", func(m string) (string, string) {
		return m, "mailto:" + m
	})
	return text
}

// wrapMatches rewrites each match as [label](target), skipping matches
// that already sit inside a link or follow a byte in skipPrev.
func wrapMatches(s string, re *regexp.Regexp, skipPrev string, link func(m string) (label, target string)) string {
	locs := re.FindAllStringIndex(s, -1)
	if locs == nil {
		return s
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		m := strings.TrimRight(s[start:end], urlTrailing)
		if m == "" || insideLink(s, start) {
			continue
		}
		if start >= 1 && strings.IndexByte(skipPrev, s[start-1]) >= 0 {
			continue
		}
		label, target := link(m)
		b.WriteString(s[last:start])
		b.WriteString("[")
		b.WriteString(label)
		b.WriteString("](")
		b.WriteString(target)
		b.WriteString(")")
		last = start + len(m)
	}
	b.WriteString(s[last:])
	return b.String()
}

// insideLink reports whether the match starting at i is part of an
// existing Markdown link or mailto target.
func insideLink(s string, i int) bool {
	if i >= 1 && s[i-1] == '[' {
		return true
	}
	if i >= 2 && s[i-2:i] == "](" {
		return true
	}
	if i >= 7 && s[i-7:i] == "mailto:" {
		return true
	}
	return false
}

package markdown

import (
	"regexp"
	"strings"
)

// The table detector is a two-state machine with a reversible buffer:
// consecutive key/value lines are accumulated speculatively and only
// emitted as a table once the run reaches the configured minimum. Shorter
// runs flush back verbatim, since two stray "key: value" lines are common
// in ordinary prose.

var listItemRE = regexp.MustCompile(`^\d+\. `)

// splitKV splits a residual paragraph line on its first key/value
// separator (half- or full-width colon). The value may be empty.
func splitKV(ln string) (key, value string, ok bool) {
	if ln == "" || strings.HasPrefix(ln, "#") || strings.HasPrefix(ln, "- ") ||
		strings.HasPrefix(ln, "> ") || strings.HasPrefix(ln, "|") || listItemRE.MatchString(ln) {
		return "", "", false
	}
	idx := strings.IndexAny(ln, ":：")
	if idx <= 0 {
		return "", "", false
	}
	key = strings.TrimSpace(ln[:idx])
	value = ln[idx:]
	_, sepLen := firstRune(value)
	value = strings.TrimSpace(value[sepLen:])
	if key == "" || strings.HasPrefix(value, "//") {
		return "", "", false
	}
	return key, value, true
}

// detectTables rewrites runs of minRows or more key/value lines into a
// two-column Markdown table with a generic header.
func detectTables(text string, minRows int) string {
	lines := strings.Split(text, "\n")

	var out []string
	var rows [][2]string
	var raw []string

	flush := func() {
		if len(rows) >= minRows {
			out = append(out, "", "| Key | Value |", "| --- | --- |")
			for _, r := range rows {
				out = append(out, "| "+r[0]+" | "+r[1]+" |")
			}
			out = append(out, "")
		} else {
			out = append(out, raw...)
		}
		rows, raw = nil, nil
	}

	for _, ln := range lines {
		if k, v, ok := splitKV(ln); ok {
			rows = append(rows, [2]string{k, v})
			raw = append(raw, ln)
			continue
		}
		flush()
		out = append(out, ln)
	}
	flush()

	return strings.Join(out, "\n")
}

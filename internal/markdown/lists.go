package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// circledDigits maps the enclosed-number glyphs to their ordinal value.
var circledDigits = map[rune]int{
	'①': 1, '②': 2, '③': 3, '④': 4, '⑤': 5,
	'⑥': 6, '⑦': 7, '⑧': 8, '⑨': 9, '⑩': 10,
}

var (
	bulletGlyphRE  = regexp.MustCompile(`^[•·▪‣◦○●＊*][\s　]*`)
	dashBulletRE   = regexp.MustCompile(`^[-–—][\s　]+`)
	numberedItemRE = regexp.MustCompile(`^([0-9０-９]+)[.．)）、][\s　]*`)
	letterItemRE   = regexp.MustCompile(`^([A-Za-z])([.)）])[\s　]+`)
)

// detectLists normalizes heterogeneous bullet and enumeration glyphs into
// canonical Markdown markers. It only touches residual paragraph lines:
// lines already tagged as headings are left alone.
func detectLists(text string) string {
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		if m := bulletGlyphRE.FindString(ln); m != "" {
			lines[i] = "- " + ln[len(m):]
			continue
		}
		if m := dashBulletRE.FindString(ln); m != "" {
			lines[i] = "- " + ln[len(m):]
			continue
		}
		if r, size := firstRune(ln); size > 0 {
			if n, ok := circledDigits[r]; ok {
				lines[i] = fmt.Sprintf("%d. %s", n, strings.TrimLeft(ln[size:], " 　"))
				continue
			}
		}
		if m := numberedItemRE.FindStringSubmatch(ln); m != nil {
			lines[i] = fmt.Sprintf("%s. %s", toASCIIDigits(m[1]), ln[len(m[0]):])
			continue
		}
		if m := letterItemRE.FindStringSubmatch(ln); m != nil {
			lines[i] = fmt.Sprintf("- **%s)** %s", m[1], ln[len(m[0]):])
		}
	}
	return strings.Join(lines, "\n")
}

func firstRune(s string) (rune, int) {
	for _, r := range s {
		return r, len(string(r))
	}
	return 0, 0
}

// toASCIIDigits folds full-width digits to their ASCII equivalents.
func toASCIIDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '０' && r <= '９' {
			return '0' + (r - '０')
		}
		return r
	}, s)
}

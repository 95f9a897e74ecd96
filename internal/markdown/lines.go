package markdown

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Fragment is one positioned run of text from a page, as produced by the
// extractor. Coordinates follow PDF conventions: the origin is at the
// bottom of the page, so content earlier in reading order has a larger Y.
type Fragment struct {
	Text   string
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// ErrInvalidFragment reports a fragment that violates the assembler's
// preconditions (currently: a negative glyph height).
var ErrInvalidFragment = errors.New("invalid fragment")

// assembleLines groups a page's fragments into reading-order lines. A
// fragment starts a new line when its vertical distance from the previous
// fragment exceeds half its own glyph height; otherwise its text joins the
// current line as-is, since fragments carry their own intra-line spacing.
func assembleLines(frags []Fragment) ([]string, error) {
	for _, f := range frags {
		if f.Height < 0 {
			return nil, fmt.Errorf("%w: negative height %g", ErrInvalidFragment, f.Height)
		}
	}
	if len(frags) == 0 {
		return nil, nil
	}

	sorted := make([]Fragment, len(frags))
	copy(sorted, frags)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Y > sorted[j].Y })

	var lines []string
	var current strings.Builder
	lastY := sorted[0].Y

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			lines = append(lines, s)
		}
		current.Reset()
	}

	for _, f := range sorted {
		if math.Abs(f.Y-lastY) > f.Height*0.5 {
			flush()
		}
		current.WriteString(f.Text)
		lastY = f.Y
	}
	flush()

	return lines, nil
}

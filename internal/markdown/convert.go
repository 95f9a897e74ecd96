package markdown

import (
	"strings"
)

// Options holds the tuned heuristic parameters. The thresholds are policy
// choices, not derived constants; hosts may override them per deployment.
type Options struct {
	HeadingMaxLen int      // Longest line (in runes) still considered a heading candidate.
	TableMinRows  int      // Minimum consecutive key/value lines emitted as a table.
	Keywords      []string // Salience vocabulary bolded by the refiner.
}

// DefaultOptions returns the tuning used when the host supplies nothing.
func DefaultOptions() Options {
	return Options{
		HeadingMaxLen: 60,
		TableMinRows:  3,
		Keywords:      defaultKeywords,
	}
}

// Converter turns extracted document text into structured Markdown. It is
// stateless apart from its options and safe for concurrent use.
type Converter struct {
	opts      Options
	asciiBold *boldMatcher
	cjkBold   *boldMatcher
}

// New creates a Converter. Zero-valued option fields fall back to defaults.
func New(opts Options) *Converter {
	def := DefaultOptions()
	if opts.HeadingMaxLen <= 0 {
		opts.HeadingMaxLen = def.HeadingMaxLen
	}
	if opts.TableMinRows <= 0 {
		opts.TableMinRows = def.TableMinRows
	}
	if len(opts.Keywords) == 0 {
		opts.Keywords = def.Keywords
	}
	ascii, cjk := buildBoldMatchers(opts.Keywords)
	return &Converter{opts: opts, asciiBold: ascii, cjkBold: cjk}
}

// Convert runs the full pipeline on flat extracted text and returns the
// final Markdown document. It never fails: degenerate input produces a
// minimal document with just the title header.
func (c *Converter) Convert(text, title string) string {
	return assemble(title, c.runPasses(text))
}

// ConvertPages runs the pipeline on positioned fragments, one slice per
// page. It fails only on precondition violations in the fragment data.
func (c *Converter) ConvertPages(pages [][]Fragment, title string) (string, error) {
	var pageTexts []string
	for _, frags := range pages {
		lines, err := assembleLines(frags)
		if err != nil {
			return "", err
		}
		if len(lines) == 0 {
			continue
		}
		pageTexts = append(pageTexts, strings.Join(lines, "\n"))
	}
	return c.Convert(strings.Join(pageTexts, "\n\n"), title), nil
}

// runPasses applies the classification passes in their fixed precedence
// order. Each pass is a pure string transform; no pass reorders content.
func (c *Converter) runPasses(text string) string {
	text = Normalize(text)
	text = detectHeadings(text, c.opts.HeadingMaxLen)
	text = detectLists(text)
	text = detectTables(text, c.opts.TableMinRows)
	text = detectQuotes(text)
	text = linkify(text)
	text = c.refine(text)
	return text
}

const provenance = "<!-- Generated by pdfmd -->"

// assemble prepends the title header, provenance line and rule separator.
// This is the single exit point of the pipeline.
func assemble(title, body string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Document"
	}
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(provenance)
	b.WriteString("\n\n---\n")
	if body != "" {
		b.WriteString("\n")
		b.WriteString(body)
		b.WriteString("\n")
	}
	return b.String()
}

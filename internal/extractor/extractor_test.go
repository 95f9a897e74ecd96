package extractor

import (
	"fmt"
	"strings"
	"testing"
)

func TestForFile(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"report.pdf", "*extractor.PDFExtractor"},
		{"notes.DOCX", "*extractor.DOCXExtractor"},
		{"page.html", "*extractor.HTMLExtractor"},
		{"page.htm", "*extractor.HTMLExtractor"},
		{"data.csv", "*extractor.CSVExtractor"},
		{"readme.txt", "*extractor.TextExtractor"},
		{"doc.md", "*extractor.TextExtractor"},
		{"doc.markdown", "*extractor.TextExtractor"},
	}
	for _, tc := range cases {
		ext, err := ForFile(tc.filename)
		if err != nil {
			t.Errorf("ForFile(%q): unexpected error: %v", tc.filename, err)
			continue
		}
		if got := fmt.Sprintf("%T", ext); got != tc.want {
			t.Errorf("ForFile(%q): expected %s, got %s", tc.filename, tc.want, got)
		}
	}
}

func TestForFile_Unsupported(t *testing.T) {
	for _, filename := range []string{"image.png", "archive.zip", "noextension"} {
		if _, err := ForFile(filename); err == nil {
			t.Errorf("ForFile(%q): expected error", filename)
		}
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("a.pdf") || !IsSupportedExtension("b.CSV") {
		t.Error("expected supported extensions to be accepted")
	}
	if IsSupportedExtension("c.exe") {
		t.Error("expected unsupported extension to be rejected")
	}
}

func TestBaseTitle(t *testing.T) {
	if got := baseTitle("quarterly report.pdf"); got != "quarterly report" {
		t.Errorf("expected %q, got %q", "quarterly report", got)
	}
	if got := baseTitle("no_extension"); got != "no_extension" {
		t.Errorf("expected %q, got %q", "no_extension", got)
	}
}

func TestTextExtractor(t *testing.T) {
	p := &TextExtractor{}
	src, err := p.Extract(strings.NewReader("line one\nline two\n"), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.Positioned() {
		t.Error("text source must not be positioned")
	}
	if src.Title != "notes" {
		t.Errorf("expected title %q, got %q", "notes", src.Title)
	}
	if src.Text != "line one\nline two\n" {
		t.Errorf("unexpected text: %q", src.Text)
	}
}

func TestCSVExtractor(t *testing.T) {
	p := &CSVExtractor{}
	in := "Name,Age,City\nAlice,30,Paris\nBob,25,Lyon\n"
	src, err := p.Extract(strings.NewReader(in), "people.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Name: Alice\nAge: 30\nCity: Paris\n\nName: Bob\nAge: 25\nCity: Lyon"
	if src.Text != want {
		t.Errorf("expected %q, got %q", want, src.Text)
	}
}

func TestCSVExtractor_ExtraFields(t *testing.T) {
	p := &CSVExtractor{}
	src, err := p.Extract(strings.NewReader("A,B\n1,2,3\n"), "wide.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(src.Text, "Field 3: 3") {
		t.Errorf("expected synthetic header for extra field, got %q", src.Text)
	}
}

func TestCSVExtractor_HeaderOnly(t *testing.T) {
	p := &CSVExtractor{}
	src, err := p.Extract(strings.NewReader("Name,Age\n"), "empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.Text != "" {
		t.Errorf("expected empty text, got %q", src.Text)
	}
}

func TestHTMLExtractor(t *testing.T) {
	p := &HTMLExtractor{}
	in := `<html><head><title>Guide</title><style>p{color:red}</style></head>` +
		`<body><h1>Intro</h1><p>First paragraph.</p><script>alert(1)</script>` +
		`<ul><li>item one</li><li>item two</li></ul></body></html>`
	src, err := p.Extract(strings.NewReader(in), "guide.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.Title != "Guide" {
		t.Errorf("expected title from <title>, got %q", src.Title)
	}
	for _, want := range []string{"Intro\n", "First paragraph.\n", "item one\n", "item two\n"} {
		if !strings.Contains(src.Text, want) {
			t.Errorf("expected %q in text:\n%s", want, src.Text)
		}
	}
	for _, banned := range []string{"alert", "color:red"} {
		if strings.Contains(src.Text, banned) {
			t.Errorf("expected %q stripped, got:\n%s", banned, src.Text)
		}
	}
}

func TestHTMLExtractor_NoTitleFallsBackToFilename(t *testing.T) {
	p := &HTMLExtractor{}
	src, err := p.Extract(strings.NewReader("<p>hello</p>"), "fragment.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.Title != "fragment" {
		t.Errorf("expected fallback title, got %q", src.Title)
	}
}

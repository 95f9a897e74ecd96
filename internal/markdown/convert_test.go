package markdown

import (
	"errors"
	"strings"
	"testing"
)

func TestConvert_EndToEnd(t *testing.T) {
	c := New(DefaultOptions())
	got := c.Convert("1. Overview\nName：Alice\nAge：30\nCity：Paris\n", "doc.pdf")

	if !strings.HasPrefix(got, "# doc.pdf\n") {
		t.Errorf("expected title header, got:\n%s", got)
	}
	for _, want := range []string{
		provenance,
		"---",
		"### 1. Overview",
		"| Key | Value |",
		"| --- | --- |",
		"| Name | Alice |",
		"| Age | 30 |",
		"| City | Paris |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected document to contain %q, got:\n%s", want, got)
		}
	}
}

func TestConvert_EmptyInputYieldsMinimalDocument(t *testing.T) {
	c := New(DefaultOptions())
	got := c.Convert("", "empty.pdf")
	want := "# empty.pdf\n\n" + provenance + "\n\n---\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestConvert_EmptyTitleFallsBack(t *testing.T) {
	c := New(DefaultOptions())
	got := c.Convert("hello", "")
	if !strings.HasPrefix(got, "# Document\n") {
		t.Errorf("expected fallback title, got:\n%s", got)
	}
}

func TestConvert_NeverReordersContent(t *testing.T) {
	c := New(DefaultOptions())
	in := "第1章 概要\nひとつめの段落です。\n• 項目A\n• 項目B\nふたつめの段落です。"
	got := c.Convert(in, "order.pdf")

	order := []string{"第1章 概要", "ひとつめの段落です。", "項目A", "項目B", "ふたつめの段落です。"}
	last := -1
	for _, s := range order {
		idx := strings.Index(got, s)
		if idx < 0 {
			t.Fatalf("expected %q in output:\n%s", s, got)
		}
		if idx < last {
			t.Errorf("content reordered: %q appears before earlier content", s)
		}
		last = idx
	}
}

func TestConvertPages_AssemblesFragments(t *testing.T) {
	c := New(DefaultOptions())
	pages := [][]Fragment{
		{
			{Text: "第1章 概要", Y: 700, Height: 12},
			{Text: "本文の1行目", Y: 650, Height: 10},
		},
		{
			{Text: "2ページ目の本文", Y: 700, Height: 10},
		},
	}
	got, err := c.ConvertPages(pages, "paged.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"## 第1章 概要", "本文の1行目", "2ページ目の本文"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestConvertPages_EmptyPagesOmitted(t *testing.T) {
	c := New(DefaultOptions())
	got, err := c.ConvertPages([][]Fragment{{}, nil}, "blank.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := c.Convert("", "blank.pdf")
	if got != want {
		t.Errorf("expected minimal document %q, got %q", want, got)
	}
}

func TestConvertPages_InvalidFragmentRejected(t *testing.T) {
	c := New(DefaultOptions())
	pages := [][]Fragment{{{Text: "x", Y: 10, Height: -3}}}
	_, err := c.ConvertPages(pages, "bad.pdf")
	if !errors.Is(err, ErrInvalidFragment) {
		t.Fatalf("expected ErrInvalidFragment, got %v", err)
	}
}

func TestNew_ZeroOptionsFallBackToDefaults(t *testing.T) {
	c := New(Options{})
	def := DefaultOptions()
	if c.opts.HeadingMaxLen != def.HeadingMaxLen {
		t.Errorf("expected HeadingMaxLen %d, got %d", def.HeadingMaxLen, c.opts.HeadingMaxLen)
	}
	if c.opts.TableMinRows != def.TableMinRows {
		t.Errorf("expected TableMinRows %d, got %d", def.TableMinRows, c.opts.TableMinRows)
	}
	if len(c.opts.Keywords) == 0 {
		t.Error("expected default keywords")
	}
}

func TestConvert_TableMinRowsConfigurable(t *testing.T) {
	c := New(Options{TableMinRows: 2})
	got := c.Convert("Name: Alice\nAge: 30", "two.pdf")
	if !strings.Contains(got, "| Name | Alice |") {
		t.Errorf("expected 2-row table with lowered threshold, got:\n%s", got)
	}
}

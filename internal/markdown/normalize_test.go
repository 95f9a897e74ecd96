package markdown

import "testing"

func TestNormalize_CollapsesHorizontalWhitespace(t *testing.T) {
	got := Normalize("foo   bar\tbaz")
	want := "foo bar baz"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNormalize_CollapsesBlankLineRuns(t *testing.T) {
	got := Normalize("para one\n\n\n\n\npara two")
	want := "para one\n\npara two"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNormalize_TrimsBoundaries(t *testing.T) {
	got := Normalize("\n\n  hello  \n\n")
	want := "hello"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNormalize_FullWidthSpace(t *testing.T) {
	got := Normalize("項目　　値")
	want := "項目 値"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNormalize_CRLF(t *testing.T) {
	got := Normalize("a\r\nb\rc")
	want := "a\nb\nc"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"foo   bar\n\n\n\nbaz  qux\n",
		"第1章　はじめに\n\n本文です。\n",
		"",
		"single line",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

package markdown

import "testing"

func TestDetectQuotes_AnnotationMarkers(t *testing.T) {
	cases := map[string]string{
		"注意：火気厳禁":             "> **注意:** 火気厳禁",
		"備考: 詳細は別紙参照":         "> **備考:** 詳細は別紙参照",
		"Note: see appendix B": "> **Note:** see appendix B",
		"Warning: hot surface": "> **Warning:** hot surface",
	}
	for in, want := range cases {
		got := detectQuotes(in)
		if got != want {
			t.Errorf("%q: expected %q, got %q", in, want, got)
		}
	}
}

func TestDetectQuotes_WrappedLines(t *testing.T) {
	cases := map[string]string{
		"（参考資料一覧）":         "> （参考資料一覧）",
		"(internal use only)": "> (internal use only)",
		"「引用された文」":         "> 「引用された文」",
	}
	for in, want := range cases {
		got := detectQuotes(in)
		if got != want {
			t.Errorf("%q: expected %q, got %q", in, want, got)
		}
	}
}

func TestDetectQuotes_PartialWrapUntouched(t *testing.T) {
	inputs := []string{
		"(a) and (b) are both valid",
		"see the note (below) for details",
	}
	for _, in := range inputs {
		got := detectQuotes(in)
		if got != in {
			t.Errorf("expected %q unchanged, got %q", in, got)
		}
	}
}

func TestDetectQuotes_SkipsClassifiedLines(t *testing.T) {
	inputs := []string{
		"- (parenthetical list item)",
		"1. (numbered parenthetical)",
		"### 注意: heading-like",
		"| 注意 | quoted |",
	}
	for _, in := range inputs {
		got := detectQuotes(in)
		if got != in {
			t.Errorf("expected %q unchanged, got %q", in, got)
		}
	}
}

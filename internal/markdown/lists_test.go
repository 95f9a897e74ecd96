package markdown

import "testing"

func TestDetectLists_BulletGlyphsNormalize(t *testing.T) {
	inputs := []string{"• first", "· first", "▪ first", "- first"}
	for _, in := range inputs {
		got := detectLists(in)
		if got != "- first" {
			t.Errorf("%q: expected %q, got %q", in, "- first", got)
		}
	}
}

func TestDetectLists_CircledDigits(t *testing.T) {
	got := detectLists("③ 三番目の項目")
	want := "3. 三番目の項目"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	got = detectLists("⑩最後")
	want = "10. 最後"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDetectLists_NumberedMarkers(t *testing.T) {
	// Full-width digits and enclosing punctuation fold to "<n>. ".
	cases := map[string]string{
		"２）二番目":           "2. 二番目",
		"3、三番目":           "3. 三番目",
		"4) fourth item.": "4. fourth item.",
	}
	for in, want := range cases {
		got := detectLists(in)
		if got != want {
			t.Errorf("%q: expected %q, got %q", in, want, got)
		}
	}
}

func TestDetectLists_LetteredMarkers(t *testing.T) {
	got := detectLists("a) first choice")
	want := "- **a)** first choice"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDetectLists_SkipsHeadings(t *testing.T) {
	in := "### 1. Overview"
	got := detectLists(in)
	if got != in {
		t.Errorf("expected %q unchanged, got %q", in, got)
	}
}

func TestDetectLists_PlainProseUntouched(t *testing.T) {
	in := "This paragraph mentions 3 items but is not a list."
	got := detectLists(in)
	if got != in {
		t.Errorf("expected %q unchanged, got %q", in, got)
	}
}

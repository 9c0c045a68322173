package tldr

import (
	"reflect"
	"strings"
	"testing"

	"pkt.systems/tldr/internal/palette"
)

func joinSegments(segs []Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(seg.Text)
	}
	return b.String()
}

func TestSplitSymmetricAlternates(t *testing.T) {
	src := "aa `bb` cc `dd` ee"
	segs := Split(InlineCode, src)
	want := []Segment{
		{Text: "aa "},
		{Text: "bb", Highlighted: true},
		{Text: " cc "},
		{Text: "dd", Highlighted: true},
		{Text: " ee"},
	}
	if !reflect.DeepEqual(segs, want) {
		t.Fatalf("unexpected segments: %#v", segs)
	}
	texts := make([]string, 0, len(segs))
	for _, seg := range segs {
		texts = append(texts, seg.Text)
	}
	if got := strings.Join(texts, "`"); got != src {
		t.Fatalf("segments do not rebuild input: %q", got)
	}
}

func TestSplitSymmetricUnbalanced(t *testing.T) {
	segs := Split(InlineCode, "a `b` c `d")
	want := []Segment{
		{Text: "a "},
		{Text: "b", Highlighted: true},
		{Text: " c "},
		{Text: "d", Highlighted: true},
	}
	if !reflect.DeepEqual(segs, want) {
		t.Fatalf("unexpected segments: %#v", segs)
	}
}

func TestSplitURL(t *testing.T) {
	src := "More info: <https://example.com>."
	segs := Split(URLBracket, src)
	want := []Segment{
		{Text: "More info: <"},
		{Text: "https://example.com", Highlighted: true},
		{Text: ">."},
	}
	if !reflect.DeepEqual(segs, want) {
		t.Fatalf("unexpected segments: %#v", segs)
	}
	if got := joinSegments(segs); got != src {
		t.Fatalf("segments do not rebuild input: %q", got)
	}
}

func TestSplitURLIgnoresBareBrackets(t *testing.T) {
	src := "Compare a <b> with <https://a.example> and <http://b.example"
	segs := Split(URLBracket, src)
	want := []Segment{
		{Text: "Compare a <b> with <"},
		{Text: "https://a.example", Highlighted: true},
		{Text: "> and <http://b.example"},
	}
	if !reflect.DeepEqual(segs, want) {
		t.Fatalf("unexpected segments: %#v", segs)
	}
	if got := joinSegments(segs); got != src {
		t.Fatalf("segments do not rebuild input: %q", got)
	}
}

func TestSplitPlaceholders(t *testing.T) {
	segs := Split(Placeholder, "aa bb {{cc}} {{dd}} ee")
	want := []Segment{
		{Text: "aa bb "},
		{Text: "cc", Highlighted: true},
		{Text: " "},
		{Text: "dd", Highlighted: true},
		{Text: " ee"},
	}
	if !reflect.DeepEqual(segs, want) {
		t.Fatalf("unexpected segments: %#v", segs)
	}
}

func TestSplitPlaceholderThreeClosingBraces(t *testing.T) {
	segs := Split(Placeholder, "echo {{a}}}")
	var highlighted []string
	for _, seg := range segs {
		if seg.Highlighted {
			highlighted = append(highlighted, seg.Text)
		}
	}
	if !reflect.DeepEqual(highlighted, []string{"a}"}) {
		t.Fatalf("expected the last two braces to close the placeholder, got %#v", segs)
	}
	if got := joinSegments(segs); got != "echo a}" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestSplitPlaceholderWithoutClose(t *testing.T) {
	segs := Split(Placeholder, "cmd {{a}} {{b")
	want := []Segment{
		{Text: "cmd "},
		{Text: "a", Highlighted: true},
		{Text: " {{b"},
	}
	if !reflect.DeepEqual(segs, want) {
		t.Fatalf("unexpected segments: %#v", segs)
	}
}

func TestSplitWithoutStart(t *testing.T) {
	for _, d := range []Delimiter{InlineCode, URLBracket, Placeholder} {
		segs := Split(d, "nothing to see")
		if len(segs) != 1 || segs[0].Highlighted || segs[0].Text != "nothing to see" {
			t.Fatalf("unexpected segments for %q: %#v", d.Start, segs)
		}
	}
}

func TestHighlightPaintsSegments(t *testing.T) {
	normal := Style{Prefix: "<n>"}
	hl := Style{Prefix: "<h>"}
	got := Highlight(InlineCode, "a `b` c", normal, hl)
	want := "<n>a " + palette.Reset + "<h>b" + palette.Reset + "<n> c" + palette.Reset
	if got != want {
		t.Fatalf("Highlight=%q want %q", got, want)
	}
	if got := Highlight(Placeholder, "plain", normal, hl); got != "<n>plain"+palette.Reset {
		t.Fatalf("unexpected plain highlight %q", got)
	}
	if got := Highlight(InlineCode, "`x`", Style{}, Style{}); got != "x" {
		t.Fatalf("empty styles should only drop delimiters, got %q", got)
	}
}

func TestClosingIndex(t *testing.T) {
	cases := map[string]int{
		"a}}":        1,
		"a}}}":       2,
		"a}}}}":      1,
		"a}} b }} c": 1,
		"none":       -1,
	}
	for in, want := range cases {
		if got := closingIndex(in, "}}"); got != want {
			t.Fatalf("closingIndex(%q)=%d want %d", in, got, want)
		}
	}
}

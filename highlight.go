package tldr

import "strings"

// SpanKind selects how a Delimiter pairs its opening and closing tokens.
type SpanKind uint8

const (
	// SpanSymmetric alternates normal and highlighted text on every token.
	SpanSymmetric SpanKind = iota
	// SpanURL closes on the first End after Start. Start is a one-byte
	// bracket followed by the scheme prefix used for matching; the scheme is
	// part of the highlighted URL, the bracket is not.
	SpanURL
	// SpanPlaceholder closes on the right-aligned End inside a span, so a run
	// of three closing braces leaves the first one inside the placeholder.
	SpanPlaceholder
)

// Delimiter is a start/end token pair together with its pairing rule.
type Delimiter struct {
	Kind  SpanKind
	Start string
	End   string
}

var (
	// InlineCode matches `code` spans.
	InlineCode = Delimiter{Kind: SpanSymmetric, Start: "`", End: "`"}
	// URLBracket matches <http...> auto-links.
	URLBracket = Delimiter{Kind: SpanURL, Start: "<http", End: ">"}
	// Placeholder matches {{placeholder}} spans in examples.
	Placeholder = Delimiter{Kind: SpanPlaceholder, Start: "{{", End: "}}"}
)

// Segment is a piece of highlighted input.
type Segment struct {
	Text        string
	Highlighted bool
}

// Split cuts s into normal and highlighted segments according to d.
// Unbalanced delimiters never fail: a symmetric run with an odd number of
// tokens styles its tail by parity, and an asymmetric opener without a
// closing token is kept verbatim as normal text.
func Split(d Delimiter, s string) []Segment {
	parts := strings.Split(s, d.Start)
	if len(parts) == 1 {
		return []Segment{{Text: s}}
	}
	segs := make([]Segment, 0, len(parts)+2)
	if d.Kind == SpanSymmetric {
		for i, part := range parts {
			segs = append(segs, Segment{Text: part, Highlighted: i%2 == 1})
		}
		return segs
	}

	segs = append(segs, Segment{Text: parts[0]})
	for _, part := range parts[1:] {
		var idx int
		if d.Kind == SpanURL {
			idx = strings.Index(part, d.End)
		} else {
			idx = closingIndex(part, d.End)
		}
		if idx < 0 {
			segs = appendNormal(segs, d.Start+part)
			continue
		}
		switch d.Kind {
		case SpanURL:
			segs = appendNormal(segs, d.Start[:1])
			segs = append(segs, Segment{Text: d.Start[1:] + part[:idx], Highlighted: true})
			segs = append(segs, Segment{Text: part[idx:]})
		default:
			segs = append(segs, Segment{Text: part[:idx], Highlighted: true})
			segs = append(segs, Segment{Text: part[idx+len(d.End):]})
		}
	}
	return segs
}

// Highlight styles the spans of s delimited by d with hl and everything else
// with normal.
func Highlight(d Delimiter, s string, normal, hl Style) string {
	return paintSegments(Split(d, s), normal, hl, false)
}

func paintSegments(segs []Segment, normal, hl Style, osc8 bool) string {
	var b strings.Builder
	for _, seg := range segs {
		if !seg.Highlighted {
			b.WriteString(normal.Paint(seg.Text))
			continue
		}
		if osc8 && seg.Text != "" {
			b.WriteString(osc8Start)
			b.WriteString(seg.Text)
			b.WriteString("\x1b\\")
			b.WriteString(hl.Paint(seg.Text))
			b.WriteString(osc8End)
			continue
		}
		b.WriteString(hl.Paint(seg.Text))
	}
	return b.String()
}

func appendNormal(segs []Segment, text string) []Segment {
	if n := len(segs); n > 0 && !segs[n-1].Highlighted {
		segs[n-1].Text += text
		return segs
	}
	return append(segs, Segment{Text: text})
}

// closingIndex scans s from the right for non-overlapping matches of end and
// returns the leftmost one found that way, or -1.
func closingIndex(s, end string) int {
	idx := -1
	for rest := s; ; {
		i := strings.LastIndex(rest, end)
		if i < 0 {
			return idx
		}
		idx = i
		rest = rest[:i]
	}
}

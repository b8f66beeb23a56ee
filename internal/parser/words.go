package parser

import (
	"strings"
	"unicode/utf8"
)

// delimiter is one nestable emphasis marker: the same token opens and
// closes the span.
type delimiter struct {
	token string
	wrap  func([]Span) Span
}

// delimiters, in match priority order. Two-character tokens come
// first so "**" is never read as two italic markers.
var delimiters = []delimiter{
	{"**", func(c []Span) Span { return Bold{Children: c} }},
	{"__", func(c []Span) Span { return Underline{Children: c} }},
	{"~~", func(c []Span) Span { return Strikethrough{Children: c} }},
	{"*", func(c []Span) Span { return Italic{Children: c} }},
	{"_", func(c []Span) Span { return Italic{Children: c} }},
}

// words converts one line of raw text into an ordered span sequence.
// It is total: any input, including the empty string, succeeds. An
// opener with no matching closer before end of line degrades to
// literal text.
func words(text string) []Span {
	var spans []Span
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			spans = append(spans, Plain{Text: plain.String()})
			plain.Reset()
		}
	}

	for len(text) > 0 {
		if d, ok := matchOpener(text); ok {
			after := text[len(d.token):]
			i := strings.Index(after, d.token)
			if i < 0 {
				// Unclosed opener: the whole token stays literal so
				// it is never split across two plain spans.
				plain.WriteString(d.token)
				text = after
				continue
			}
			flush()
			spans = append(spans, d.wrap(words(after[:i])))
			text = after[i+len(d.token):]
			continue
		}
		r, size := utf8.DecodeRuneInString(text)
		plain.WriteRune(r)
		text = text[size:]
	}
	flush()
	return spans
}

// matchOpener returns the highest-priority delimiter whose token
// starts text. Longest match wins; a matched-but-unclosed token does
// not fall back to a shorter delimiter at the same position.
func matchOpener(text string) (delimiter, bool) {
	for _, d := range delimiters {
		if _, ok := consume(text, d.token); ok {
			return d, true
		}
	}
	return delimiter{}, false
}

// Package render converts parsed document trees to HTML.
//
// Rendering is a pure recursive walk: the same tree always produces
// byte-identical output. Plain text is emitted verbatim; HTML special
// characters are not escaped, matching the dialect's contract that
// the caller owns output sanitization.
package render

import (
	"fmt"
	"strings"

	"github.com/jmhart/mdlite/internal/parser"
)

// Node renders one block construct. A node variant with no rendering
// rule means the AST and renderer have drifted; that is a programming
// defect, not bad input, and panics.
func Node(n parser.Node) string {
	switch node := n.(type) {
	case *parser.Heading:
		return fmt.Sprintf("<h%d>%s</h%d>", node.Level, Spans(node.Content), node.Level)
	case *parser.Sentence:
		return Spans(node.Content)
	case *parser.Table:
		return table(node)
	default:
		panic(fmt.Sprintf("render: no rule for node type %T", n))
	}
}

// Document renders each node in order, one per line. Tables already
// end in a newline; everything else gets one appended.
func Document(nodes []parser.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		html := Node(n)
		b.WriteString(html)
		if !strings.HasSuffix(html, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Spans renders an inline span sequence in order.
func Spans(spans []parser.Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(span(s))
	}
	return b.String()
}

func span(s parser.Span) string {
	switch sp := s.(type) {
	case parser.Plain:
		return sp.Text
	case parser.Italic:
		return "<i>" + Spans(sp.Children) + "</i>"
	case parser.Bold:
		return "<b>" + Spans(sp.Children) + "</b>"
	case parser.Strikethrough:
		return "<s>" + Spans(sp.Children) + "</s>"
	case parser.Underline:
		return "<u>" + Spans(sp.Children) + "</u>"
	default:
		panic(fmt.Sprintf("render: no rule for span type %T", s))
	}
}

func table(t *parser.Table) string {
	var b strings.Builder
	b.WriteString("<table>\n<tr>")
	for _, cell := range t.Header {
		b.WriteString("<th>")
		b.WriteString(Spans(cell))
		b.WriteString("</th>")
	}
	b.WriteString("</tr>\n")
	for _, row := range t.Rows {
		b.WriteString("<tr>")
		for i, cell := range row {
			fmt.Fprintf(&b, `<td align=%q>%s</td>`, t.Aligns[i].String(), Spans(cell))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")
	return b.String()
}

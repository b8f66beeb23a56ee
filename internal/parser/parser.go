// Package parser turns a restricted Markdown dialect into an AST.
//
// The grammar covers ATX headings, plain sentences, pipe-delimited
// tables with alignment markers, and four nestable inline emphasis
// pairs. Every grammar rule is a pure function over its input text
// returning the parsed value, the unconsumed remainder, and a match
// flag; nothing here performs I/O or keeps state between calls, so
// independent documents can be parsed concurrently without
// synchronization.
package parser

// parseFunc attempts one block construct at the start of text.
type parseFunc func(text string) (Node, string, bool)

// Parse segments a document into block constructs. Parsers are tried
// in fixed priority order; the first match contributes a node and the
// loop continues from its remainder. The loop stops as soon as no
// parser matches; any text left at that point is dropped silently.
func Parse(text string) []Node {
	parsers := []parseFunc{table, heading, sentence}
	var nodes []Node
	for {
		matched := false
		for _, p := range parsers {
			node, rest, ok := p(text)
			if !ok {
				continue
			}
			nodes = append(nodes, node)
			text = rest
			matched = true
			break
		}
		if !matched {
			return nodes
		}
	}
}

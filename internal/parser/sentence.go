package parser

// sentence consumes exactly one line and wraps its inline content.
// It fails only on empty remaining input.
func sentence(text string) (Node, string, bool) {
	if text == "" {
		return nil, "", false
	}
	line, rest := splitLine(text)
	return &Sentence{Content: words(line)}, rest, true
}

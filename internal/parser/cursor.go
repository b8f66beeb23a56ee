package parser

import "strings"

// consume matches pattern at the start of text and returns the suffix
// after it. Inputs are never mutated; failure consumes nothing.
func consume(text, pattern string) (string, bool) {
	if !strings.HasPrefix(text, pattern) {
		return "", false
	}
	return text[len(pattern):], true
}

// space requires exactly one literal space at the start of text, then
// strips any further run of leading whitespace.
func space(text string) (string, bool) {
	rest, ok := consume(text, " ")
	if !ok {
		return "", false
	}
	return strings.TrimLeft(rest, " \t"), true
}

// splitLine returns everything up to the first newline and the text
// after it. Without a newline the whole input is the line.
func splitLine(text string) (line, rest string) {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i], text[i+1:]
	}
	return text, ""
}

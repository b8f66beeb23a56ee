package parser

// heading recognizes an ATX-style heading: a run of '#' characters,
// a mandatory space, then inline content to end of line. The heading
// level is the number of '#' characters.
func heading(text string) (Node, string, bool) {
	level := 0
	for {
		rest, ok := consume(text, "#")
		if !ok {
			break
		}
		level++
		text = rest
	}
	if level == 0 {
		return nil, "", false
	}
	text, ok := space(text)
	if !ok {
		return nil, "", false
	}
	line, rest := splitLine(text)
	return &Heading{Level: level, Content: words(line)}, rest, true
}

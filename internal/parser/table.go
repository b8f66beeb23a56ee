package parser

import "strings"

// parseRow consumes one pipe-delimited line. The candidate line is
// everything up to the first newline, with trailing whitespace
// trimmed; it must start and end with '|'. The interior is split on
// '|', each cell trimmed and handed to decode. Any cell decode
// failure fails the row.
func parseRow[T any](text string, decode func(string) (T, bool)) (cells []T, rest string, ok bool) {
	line, rest := splitLine(text)
	line = strings.TrimRight(line, " \t")
	if len(line) < 2 || !strings.HasPrefix(line, "|") || !strings.HasSuffix(line, "|") {
		return nil, "", false
	}
	for _, raw := range strings.Split(line[1:len(line)-1], "|") {
		cell, decoded := decode(strings.TrimSpace(raw))
		if !decoded {
			return nil, "", false
		}
		cells = append(cells, cell)
	}
	return cells, rest, true
}

// wordsCell decodes a table cell through the inline grammar. Total,
// so rows of inline content never fail on cell contents.
func wordsCell(text string) ([]Span, bool) {
	return words(text), true
}

func header(text string) (Row, string, bool) {
	cells, rest, ok := parseRow(text, wordsCell)
	if !ok {
		return nil, "", false
	}
	return Row(cells), rest, true
}

// aligns parses the alignment row. Every cell must be a valid
// alignment token and the count must equal the header's column count;
// anything else means "not a table".
func aligns(text string, columns int) ([]Align, string, bool) {
	cells, rest, ok := parseRow(text, parseAlign)
	if !ok || len(cells) != columns {
		return nil, "", false
	}
	return cells, rest, true
}

// parseAlign decodes one trimmed alignment token: an optional leading
// and trailing ':' around a non-empty run of '-'. A bare hyphen run
// and a leading colon both mean left.
func parseAlign(text string) (Align, bool) {
	left := strings.HasPrefix(text, ":")
	right := strings.HasSuffix(text, ":")
	core := text
	if left {
		core = core[1:]
	}
	if right {
		if core == "" {
			return 0, false
		}
		core = core[:len(core)-1]
	}
	if core == "" || strings.Trim(core, "-") != "" {
		return 0, false
	}
	switch {
	case left && right:
		return AlignCenter, true
	case right:
		return AlignRight, true
	default:
		return AlignLeft, true
	}
}

// rows collects body rows until a row fails to parse or its cell
// count differs from the header's. The breaking row is not consumed;
// it stays in rest for the document loop to reprocess. A table needs
// at least one body row.
func rows(text string, columns int) ([]Row, string, bool) {
	var out []Row
	for {
		cells, rest, ok := parseRow(text, wordsCell)
		if !ok || len(cells) != columns {
			break
		}
		out = append(out, Row(cells))
		text = rest
	}
	if len(out) == 0 {
		return nil, "", false
	}
	return out, text, true
}

// table parses a full table: header, alignment row, body rows. Any
// stage failing fails the whole attempt with nothing consumed.
func table(text string) (Node, string, bool) {
	head, rest, ok := header(text)
	if !ok {
		return nil, "", false
	}
	al, rest, ok := aligns(rest, len(head))
	if !ok {
		return nil, "", false
	}
	body, rest, ok := rows(rest, len(head))
	if !ok {
		return nil, "", false
	}
	return &Table{Header: head, Aligns: al, Rows: body}, rest, true
}

package parser

// Node is one top-level block construct of a parsed document.
type Node interface {
	node()
}

// Heading is an ATX-style heading: a run of '#' followed by inline content.
type Heading struct {
	Level   int
	Content []Span
}

// Sentence is a single line of inline content with no block-level wrapper.
type Sentence struct {
	Content []Span
}

// Table is a pipe-delimited table: one header row, one alignment per
// column, and at least one body row. Every row has exactly len(Aligns)
// cells.
type Table struct {
	Header Row
	Aligns []Align
	Rows   []Row
}

// List is declared for forward compatibility. No grammar rule produces
// it and the renderer rejects it.
type List struct {
	Items []ListItem
}

type ListItem struct {
	Content []Span
	Sub     []ListItem
}

func (*Heading) node()  {}
func (*Sentence) node() {}
func (*Table) node()    {}
func (*List) node()     {}

// Span is one unit of inline-formatted text. Emphasis variants own
// their child sequence exclusively; the structure is a tree.
type Span interface {
	span()
}

// Plain is a literal run of text containing no recognized delimiter.
type Plain struct {
	Text string
}

type Italic struct {
	Children []Span
}

type Bold struct {
	Children []Span
}

type Strikethrough struct {
	Children []Span
}

type Underline struct {
	Children []Span
}

func (Plain) span()         {}
func (Italic) span()        {}
func (Bold) span()          {}
func (Strikethrough) span() {}
func (Underline) span()     {}

// Row is one decoded table line: ordered cells, each a span sequence.
type Row [][]Span

// Align is a column's text alignment, taken from the table's second line.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

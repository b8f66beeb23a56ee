package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SingleSentence(t *testing.T) {
	nodes := Parse("Hello **World!**")
	require.Len(t, nodes, 1)
	assert.Equal(t, &Sentence{Content: []Span{
		Plain{Text: "Hello "},
		Bold{Children: []Span{Plain{Text: "World!"}}},
	}}, nodes[0])
}

func TestParse_NestedEmphasisSentence(t *testing.T) {
	nodes := Parse("__**Hello World!**__")
	require.Len(t, nodes, 1)
	assert.Equal(t, &Sentence{Content: []Span{
		Underline{Children: []Span{
			Bold{Children: []Span{Plain{Text: "Hello World!"}}},
		}},
	}}, nodes[0])
}

func TestParse_Multiline(t *testing.T) {
	nodes := Parse("# Hello World!\nplain line\n**bold**")
	require.Len(t, nodes, 3)
	assert.Equal(t, &Heading{Level: 1, Content: []Span{Plain{Text: "Hello World!"}}}, nodes[0])
	assert.Equal(t, &Sentence{Content: []Span{Plain{Text: "plain line"}}}, nodes[1])
	assert.Equal(t, &Sentence{Content: []Span{
		Bold{Children: []Span{Plain{Text: "bold"}}},
	}}, nodes[2])
}

func TestParse_Table(t *testing.T) {
	nodes := Parse("| A | B | C | \n|-:|--|:-:|\n| a | b | c |\n| j | k | l |\n")
	require.Len(t, nodes, 1)

	tbl, ok := nodes[0].(*Table)
	require.True(t, ok)
	assert.Equal(t, plainRow("A", "B", "C"), tbl.Header)
	assert.Equal(t, []Align{AlignRight, AlignLeft, AlignCenter}, tbl.Aligns)
	assert.Equal(t, []Row{plainRow("a", "b", "c"), plainRow("j", "k", "l")}, tbl.Rows)
}

func TestParse_MismatchedRowBecomesSentence(t *testing.T) {
	nodes := Parse("| A | B | C |\n| - | - | - |\n| a | b | c |\n| j | k | l |\n| x | y |\n")
	require.Len(t, nodes, 2)

	tbl, ok := nodes[0].(*Table)
	require.True(t, ok)
	assert.Len(t, tbl.Rows, 2)

	st, ok := nodes[1].(*Sentence)
	require.True(t, ok)
	assert.Equal(t, []Span{Plain{Text: "| x | y |"}}, st.Content)
}

func TestParse_TableBetweenProse(t *testing.T) {
	nodes := Parse("# Prices\n| item | cost |\n| - | -: |\n| tea | 3 |\ndone")
	require.Len(t, nodes, 3)
	assert.IsType(t, &Heading{}, nodes[0])
	assert.IsType(t, &Table{}, nodes[1])
	assert.Equal(t, &Sentence{Content: []Span{Plain{Text: "done"}}}, nodes[2])
}

func TestParse_EmptyInput(t *testing.T) {
	assert.Empty(t, Parse(""))
}

func TestParse_HeadingWithoutSpaceIsSentence(t *testing.T) {
	nodes := Parse("#Hello")
	require.Len(t, nodes, 1)
	assert.Equal(t, &Sentence{Content: []Span{Plain{Text: "#Hello"}}}, nodes[0])
}

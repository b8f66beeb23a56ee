package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeading_LevelOne(t *testing.T) {
	node, rest, ok := heading("# Hello World!")
	require.True(t, ok)
	assert.Equal(t, "", rest)
	assert.Equal(t, &Heading{Level: 1, Content: []Span{Plain{Text: "Hello World!"}}}, node)
}

func TestHeading_DeeperLevels(t *testing.T) {
	node, _, ok := heading("### Section")
	require.True(t, ok)
	assert.Equal(t, 3, node.(*Heading).Level)
}

func TestHeading_RequiresSpaceAfterHashes(t *testing.T) {
	_, _, ok := heading("#Hello")
	assert.False(t, ok)
}

func TestHeading_RequiresHash(t *testing.T) {
	_, _, ok := heading("Hello")
	assert.False(t, ok)
}

func TestHeading_ExtraSpacesAreStripped(t *testing.T) {
	node, _, ok := heading("#   Hello")
	require.True(t, ok)
	assert.Equal(t, []Span{Plain{Text: "Hello"}}, node.(*Heading).Content)
}

func TestHeading_ConsumesOneLine(t *testing.T) {
	node, rest, ok := heading("# Title\nbody")
	require.True(t, ok)
	assert.Equal(t, "body", rest)
	assert.Equal(t, 1, node.(*Heading).Level)
}

func TestHeading_EmphasisInContent(t *testing.T) {
	node, _, ok := heading("## **Bold** title")
	require.True(t, ok)
	assert.Equal(t, []Span{
		Bold{Children: []Span{Plain{Text: "Bold"}}},
		Plain{Text: " title"},
	}, node.(*Heading).Content)
}

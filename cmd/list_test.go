package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_RequiresInit(t *testing.T) {
	inTempDir(t)
	var buf bytes.Buffer
	err := RunList(&buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mdlite init")
}

func TestList_EmptyDatabasePrintsNothing(t *testing.T) {
	inTempDir(t)
	runInit(t)

	var buf bytes.Buffer
	require.NoError(t, RunList(&buf))
	assert.Empty(t, buf.String())
}

func TestList_ShowsTrackedDocuments(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeDoc(t, "a.md", "first\n")
	writeDoc(t, "b.md", "second\n")
	runSync(t, ".")

	var buf bytes.Buffer
	require.NoError(t, RunList(&buf))
	out := buf.String()
	assert.Contains(t, out, "a.md")
	assert.Contains(t, out, "b.md")
}

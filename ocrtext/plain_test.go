package ocrtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPlain_OneLinePerInputLine(t *testing.T) {
	doc, err := extractPlain([]byte("alpha\nbeta\ngamma"))
	require.NoError(t, err)
	require.Len(t, doc.Lines, 3)
	assert.Equal(t, "line 0", doc.Lines[0].ID)
	assert.Equal(t, "beta", doc.Lines[1].Text)
}

func TestExtractBytes_FallsBackToPlainOnNonXML(t *testing.T) {
	doc, err := ExtractBytes([]byte("just some text\nmore text"), Options{})
	require.NoError(t, err)
	assert.Equal(t, "just some text\nmore text", doc.Text())
}

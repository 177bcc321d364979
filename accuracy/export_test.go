package accuracy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMatches_GroupsByGTLineInOrder(t *testing.T) {
	matches := []Match{
		{GT: Part{Text: "second", Line: 1, Start: 0}, OCR: Part{Text: "second", Line: 0, Start: 0}},
		{GT: Part{Text: "first", Line: 0, Start: 0}, OCR: Part{Text: "first", Line: 1, Start: 0}},
	}

	gtSegs, ocrSegs, ops := SplitMatches(matches, "\n")

	require.Len(t, gtSegs, 3) // "first", linesep, "second"
	assert.Equal(t, "first", gtSegs[0])
	assert.Equal(t, "\n", gtSegs[1])
	assert.Equal(t, "second", gtSegs[2])
	assert.Equal(t, "first", ocrSegs[0])
	assert.Len(t, ops, 3)
}

func TestSplitMatches_SameLineNoSeparator(t *testing.T) {
	matches := []Match{
		{GT: Part{Text: "hello ", Line: 0, Start: 0}, OCR: Part{Text: "hello ", Line: 0, Start: 0}},
		{GT: Part{Text: "world", Line: 0, Start: 6}, OCR: Part{Text: "world", Line: 0, Start: 6}},
	}

	gtSegs, _, _ := SplitMatches(matches, "\n")
	require.Len(t, gtSegs, 2)
	assert.Equal(t, "hello ", gtSegs[0])
	assert.Equal(t, "world", gtSegs[1])
}

func TestSplitMatches_Empty(t *testing.T) {
	gtSegs, ocrSegs, ops := SplitMatches(nil, "\n")
	assert.Empty(t, gtSegs)
	assert.Empty(t, ocrSegs)
	assert.Empty(t, ops)
}

package editops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flexacc/flexacc/editops"
)

func tally(edits []editops.Edit) (insert, delete_, replace int) {
	for _, e := range edits {
		switch e.Op {
		case editops.OpInsert:
			insert++
		case editops.OpDelete:
			delete_++
		case editops.OpReplace:
			replace++
		}
	}
	return
}

func TestCompute_Identical(t *testing.T) {
	edits := editops.Compute("hello", "hello")
	assert.Empty(t, edits)
}

func TestCompute_PureInsertion(t *testing.T) {
	edits := editops.Compute("", "abc")
	insert, del, rep := tally(edits)
	assert.Equal(t, 3, insert)
	assert.Equal(t, 0, del)
	assert.Equal(t, 0, rep)
}

func TestCompute_PureDeletion(t *testing.T) {
	edits := editops.Compute("abc", "")
	insert, del, rep := tally(edits)
	assert.Equal(t, 0, insert)
	assert.Equal(t, 3, del)
	assert.Equal(t, 0, rep)
}

func TestCompute_SingleReplace(t *testing.T) {
	edits := editops.Compute("cat", "cot")
	insert, del, rep := tally(edits)
	assert.Equal(t, 0, insert)
	assert.Equal(t, 0, del)
	assert.Equal(t, 1, rep)
}

func TestCompute_ReconcilesLengths(t *testing.T) {
	cases := []struct{ a, b string }{
		{"Hello World", "Hello Wrld"},
		{"kitten", "sitting"},
		{"", ""},
		{"a\nb", "a\nb"},
		{"café", "cafe"},
	}
	for _, c := range cases {
		edits := editops.Compute(c.a, c.b)
		insert, del, rep := tally(edits)
		aLen := len([]rune(c.a))
		bLen := len([]rune(c.b))
		match := aLen - del - rep
		assert.Equal(t, aLen, match+del+rep, "a reconciliation for %q/%q", c.a, c.b)
		assert.Equal(t, bLen, match+insert+rep, "b reconciliation for %q/%q", c.a, c.b)
	}
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "insert", editops.OpInsert.String())
	assert.Equal(t, "delete", editops.OpDelete.String())
	assert.Equal(t, "replace", editops.OpReplace.String())
}

package flexhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash_IsDeterministic(t *testing.T) {
	a := Hash([]byte("hello world"))
	b := Hash([]byte("hello world"))
	assert.Equal(t, a.Hex(), b.Hex())
}

func TestHash_DiffersOnDifferentInput(t *testing.T) {
	a := Hash([]byte("hello"))
	b := Hash([]byte("world"))
	assert.NotEqual(t, a.Hex(), b.Hex())
}

func TestDigest_StringHasAlgorithmPrefix(t *testing.T) {
	d := HashString("flexacc")
	assert.Contains(t, d.String(), "xxh3-128:")
}

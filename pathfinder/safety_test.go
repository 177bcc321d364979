package pathfinder

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePath_RejectsTraversal(t *testing.T) {
	assert.ErrorIs(t, ValidatePath("a/../../etc/passwd"), ErrPathTraversal)
	assert.NoError(t, ValidatePath("a/b/c"))
}

func TestValidatePathWithinRoot_RejectsEscape(t *testing.T) {
	root := filepath.Join("/tmp", "root")
	assert.NoError(t, ValidatePathWithinRoot(filepath.Join(root, "a", "b.txt"), root))
	assert.ErrorIs(t, ValidatePathWithinRoot(filepath.Join("/tmp", "other", "b.txt"), root), ErrEscapesRoot)
}

func TestContainsHiddenSegment(t *testing.T) {
	assert.True(t, ContainsHiddenSegment("a/.git/config"))
	assert.False(t, ContainsHiddenSegment("a/b/config"))
}

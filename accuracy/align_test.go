package accuracy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlign_EmptyLineReturnsNil(t *testing.T) {
	ResetCaches()
	assert.Nil(t, align(NewPart(0, ""), NewPart(0, "anything")))
	assert.Nil(t, align(NewPart(0, "anything"), NewPart(0, "")))
}

func TestAlign_IdenticalLines(t *testing.T) {
	ResetCaches()
	m := align(NewPart(0, "the quick brown fox"), NewPart(1, "the quick brown fox"))
	require.NotNil(t, m)
	assert.Equal(t, 0, m.Dist.Delete)
	assert.Equal(t, 0, m.Dist.Insert)
	assert.Equal(t, 0, m.Dist.Replace)
}

func TestAlign_OCRIsSubstringOfGT(t *testing.T) {
	ResetCaches()
	m := align(NewPart(0, "the quick brown fox jumps"), NewPart(0, "quick brown fox"))
	require.NotNil(t, m)
	assert.Equal(t, "quick brown fox", m.OCR.Text)
}

func TestAlign_IsMemoized(t *testing.T) {
	ResetCaches()
	gt := NewPart(0, "hello world")
	ocr := NewPart(0, "hllo wrld")

	first := align(gt, ocr)
	second := align(gt, ocr)
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
}

func TestAlign_PureDeletionFallback(t *testing.T) {
	ResetCaches()
	// No character in common: every sliding window is all replacements,
	// so the pure-deletion fallback against an empty OCR side should win.
	m := align(NewPart(0, "xyz"), NewPart(0, "qqqqqqqqqq"))
	require.NotNil(t, m)
	assert.Equal(t, "", m.OCR.Text)
	assert.Equal(t, 3, m.Dist.Delete)
}

func TestSlideOffsets_AlwaysAtLeastOne(t *testing.T) {
	assert.Equal(t, []int{0}, slideOffsets(-5))
	assert.Equal(t, []int{0}, slideOffsets(0))
	assert.Equal(t, []int{0, 1, 2}, slideOffsets(2))
}

func TestClampedSlide_ClampsPastEnd(t *testing.T) {
	line := NewPart(0, "abc")
	got := clampedSlide(line, 1, 100)
	assert.Equal(t, "bc", got.Text)
}

package accuracy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_Add(t *testing.T) {
	a := Distance{Insert: 1, Delete: 2, Replace: 3, Match: 4}
	b := Distance{Insert: 10, Delete: 20, Replace: 30, Match: 40}
	sum := a.Add(b)
	assert.Equal(t, Distance{Insert: 11, Delete: 22, Replace: 33, Match: 44}, sum)
}

func TestDistance_Invariants(t *testing.T) {
	cases := []struct {
		gt, ocr string
	}{
		{"hello", "hello"},
		{"hello", "helo"},
		{"hello", ""},
		{"", "hello"},
		{"kitten", "sitting"},
		{"café", "cafe"},
	}

	for _, tc := range cases {
		gt := NewPart(0, tc.gt)
		ocr := NewPart(0, tc.ocr)
		m := distance(gt, ocr)

		assert.Equal(t, gt.Length(), m.Dist.Match+m.Dist.Delete+m.Dist.Replace,
			"gt=%q ocr=%q", tc.gt, tc.ocr)
		assert.Equal(t, ocr.Length(), m.Dist.Match+m.Dist.Insert+m.Dist.Replace,
			"gt=%q ocr=%q", tc.gt, tc.ocr)
	}
}

func TestDistance_IdenticalIsPureMatch(t *testing.T) {
	m := distance(NewPart(0, "identical"), NewPart(0, "identical"))
	assert.Equal(t, Distance{Match: len("identical")}, m.Dist)
}

func TestDistance_IsMemoized(t *testing.T) {
	ResetCaches()
	gt := NewPart(0, "abc")
	ocr := NewPart(0, "abd")

	first := distance(gt, ocr)
	second := distance(gt, ocr)
	assert.Equal(t, first, second)
}

func TestScoreEditDistance(t *testing.T) {
	d := Distance{Insert: 1, Delete: 2, Replace: 3}
	assert.Equal(t, 1+2+2*3, scoreEditDistance(d))
}

package accuracy

import "math"

// penalty is the scalar cost of a candidate match, lower is better. It is
// parameterized by a Coefficients vector that pushes the search toward
// shorter edit scripts, similar lengths, well-centered alignments, and
// longer matched substrings respectively.
//
// See SPEC_FULL.md / spec.md §4.4 for the derivation; length_diff/2 below
// is real (float64) division, and the two implementations referenced
// there must agree on IEEE-754 double semantics to reproduce scores
// bit-exactly.
func penalty(
	gtLen, ocrLen, gtStart, ocrStart, gtMatchStart, ocrMatchStart int,
	dist Distance,
	coef Coefficients,
) float64 {
	editScore := scoreEditDistance(dist)
	lengthDiff := abs(gtLen - ocrLen)
	substringLen := min(gtLen, ocrLen)

	offset := 0.0
	if lengthDiff > 1 {
		subPos := max(gtMatchStart-gtStart, ocrMatchStart-ocrStart)
		half := float64(lengthDiff) / 2
		offset = half - math.Abs(float64(subPos)-half)
	}

	return float64(editScore)*float64(coef.EditDist) +
		float64(lengthDiff)*float64(coef.LengthDiff) +
		offset*float64(coef.Offset) -
		float64(substringLen)*float64(coef.Length)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

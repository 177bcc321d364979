package accuracy

import "math"

// alignKey is the memoization key for align: value equality on both
// Parts' (Line, Start, Text), same as distanceKey.
type alignKey struct {
	gt  Part
	ocr Part
}

// align locates a local alignment of two line fragments by sliding the
// shorter one inside the longer, then trying to extend the best candidate
// to absorb trailing deletions, then comparing against a pure-deletion
// fallback. Returns nil if either line is empty.
//
// This is the hottest path in the engine (the picker calls it once per
// (GT candidate, OCR candidate) pair on every outer iteration) and is
// memoized: align is referentially transparent in (gtLine, ocrLine).
func align(gtLine, ocrLine Part) *Match {
	key := alignKey{gt: gtLine, ocr: ocrLine}
	if m, ok := alignCache.get(key); ok {
		telemetryAlignCacheHit()
		return m
	}
	telemetryAlignCacheMiss()

	m := computeAlign(gtLine, ocrLine)
	alignCache.put(key, m)
	return m
}

type slideCandidate struct {
	offset int
	part   Part
}

// slideOffsets returns {0, ..., max(0, highBound)} clamped to always
// include at least one offset, mirroring range(0, max(1, highBound+1)).
func slideOffsets(highBound int) []int {
	n := highBound + 1
	if n < 1 {
		n = 1
	}
	offsets := make([]int, n)
	for i := range offsets {
		offsets[i] = i
	}
	return offsets
}

func computeAlign(gtLine, ocrLine Part) *Match {
	minLen := min(gtLine.Length(), ocrLine.Length())
	if minLen == 0 {
		return nil
	}
	delta := gtLine.Length() - ocrLine.Length()

	gtCandidates := make([]slideCandidate, 0, 2)
	for _, i := range slideOffsets(delta) {
		gtCandidates = append(gtCandidates, slideCandidate{i, gtLine.Substring(i, i+minLen)})
	}
	gtCandidates = append(gtCandidates, slideCandidate{0, gtLine})

	ocrCandidates := make([]slideCandidate, 0, 2)
	for _, j := range slideOffsets(-delta) {
		ocrCandidates = append(ocrCandidates, slideCandidate{j, ocrLine.Substring(j, j+minLen)})
	}
	ocrCandidates = append(ocrCandidates, slideCandidate{0, ocrLine})

	minEditScore := math.MaxInt
	var best *Match
	bestI, bestJ := 0, 0

	for _, gc := range gtCandidates {
		for _, oc := range ocrCandidates {
			m := distance(gc.part, oc.part)
			editScore := scoreEditDistance(m.Dist)
			if editScore < minEditScore && m.Dist.Replace < minLen {
				minEditScore = editScore
				mCopy := m
				best = &mCopy
				bestI, bestJ = gc.offset, oc.offset
			}
		}
	}

	if best != nil && (best.Dist.Delete > 0 || best.Dist.Replace > 0) {
		partLength := best.GT.Length()
		additional := best.Dist.Delete + best.Dist.Replace
		for k := partLength + 1; k <= partLength+additional; k++ {
			gtExt := clampedSlide(gtLine, bestI, bestI+k)
			ocrExt := clampedSlide(ocrLine, bestJ, bestJ+k)
			m := distance(gtExt, ocrExt)
			editScore := scoreEditDistance(m.Dist)
			if editScore < minEditScore && m.Dist.Replace < minLen {
				minEditScore = editScore
				mCopy := m
				best = &mCopy
			}
		}
	}

	// Pure-deletion fallback: is erasing the whole GT line against an
	// empty OCR side better than the best alignment found so far?
	del := distance(gtLine, Part{Text: "", Line: ocrLine.Line, Start: ocrLine.Start})
	if scoreEditDistance(del.Dist) < minEditScore {
		best = &del
	}

	return best
}

// clampedSlide returns line.Substring(relStart, relEnd) with relEnd
// clamped to the line's own length. The extension pass in computeAlign
// can propose an end offset past the end of the line (e.g. when the
// winning candidate was the full, unslid line); Python's forgiving slice
// semantics silently truncate in that case, and this reproduces the same
// behavior explicitly, since Part.Substring itself is a strict,
// unclamped primitive (see part.go).
func clampedSlide(line Part, relStart, relEnd int) Part {
	length := line.Length()
	if relStart > length {
		relStart = length
	}
	if relEnd > length {
		relEnd = length
	}
	return line.Substring(relStart, relEnd)
}

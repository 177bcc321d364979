package accuracy

import (
	"math"
	"sort"
	"strings"
)

// initializeLines splits text on "\n", drops empty lines, wraps each
// remaining line as a fresh Part(line=i, start=0), and sorts the result
// descending by length (longest first). Line indices are 0-based and
// refer to the position in the original, unfiltered split — so a dropped
// empty line still "uses up" its index, keeping line numbers stable for
// reporting.
func initializeLines(text string) []Part {
	rawLines := strings.Split(text, "\n")
	parts := make([]Part, 0, len(rawLines))
	for i, line := range rawLines {
		if len(line) == 0 {
			continue
		}
		parts = append(parts, NewPart(i, line))
	}
	sortDescByLength(parts)
	return parts
}

func sortDescByLength(parts []Part) {
	sort.SliceStable(parts, func(i, j int) bool {
		return parts[i].Length() > parts[j].Length()
	})
}

// removeOrSplit removes original from lines and, if match consumed only a
// proper sub-range of it, re-inserts the 0-2 remainder Parts and re-sorts
// descending by length. Returns the updated pool.
func removeOrSplit(original, match Part, lines []Part) []Part {
	idx := indexOfPart(lines, original)
	if idx < 0 {
		return lines
	}
	lines = append(lines[:idx], lines[idx+1:]...)
	if match.Length() < original.Length() {
		lines = append(lines, original.Split(match)...)
		sortDescByLength(lines)
	}
	return lines
}

func indexOfPart(lines []Part, p Part) int {
	for i, l := range lines {
		if l == p {
			return i
		}
	}
	return -1
}

// emptyAt returns an empty Part anchored at the given line/start, used to
// compute pure-deletion and pure-insertion Distances.
func emptyAt(line, start int) Part {
	return Part{Text: "", Line: line, Start: start}
}

// matchWithCoefficients runs the greedy line picker (steps 1-6 of the
// algorithm, see spec.md §4.5) to completion for one coefficient vector:
// ingest both texts into pools, repeatedly commit the best available
// match for the longest remaining GT line(s) until one pool empties, then
// fold whatever remains into pure-delete / pure-insert matches.
func matchWithCoefficients(gt, ocr string, coef Coefficients) []Match {
	gtLines := initializeLines(gt)
	ocrLines := initializeLines(ocr)

	var matches []Match
	for len(gtLines) != 0 && len(ocrLines) != 0 {
		var m *Match
		m, gtLines, ocrLines = matchLongestGTLines(gtLines, ocrLines, coef)
		if m != nil {
			matches = append(matches, *m)
		}
	}

	for _, line := range gtLines {
		matches = append(matches, distance(line, emptyAt(line.Line, line.Start)))
	}
	for _, line := range ocrLines {
		matches = append(matches, distance(emptyAt(line.Line, line.Start), line))
	}

	return matches
}

// matchLongestGTLines is a single outer step of the picker: find the best
// match among the "long GT set" (every GT line at least as long as the
// shorter of the longest GT line and the longest OCR line, see spec.md
// §4.6) against every OCR
// candidate, commit it, and shrink both pools. If no positive match can
// be found at all (never observed in practice, since align's
// pure-deletion fallback always yields a candidate — see spec.md §9),
// the longest GT fragment is dropped as a pure delete so the outer loop
// in matchWithCoefficients is always guaranteed to make progress.
func matchLongestGTLines(gtLines, ocrLines []Part, coef Coefficients) (*Match, []Part, []Part) {
	if len(ocrLines) == 0 {
		return nil, gtLines, ocrLines
	}

	lengthThreshold := min(gtLines[0].Length(), ocrLines[0].Length()) - 1

	bestScore := math.Inf(-1)
	var bestMatch *Match
	var bestGT, bestOCR Part

	for _, g := range gtLines {
		if g.Length() <= lengthThreshold {
			break
		}
		m, o := matchGTLine(g, ocrLines, coef)
		score := math.Inf(-1)
		if m != nil {
			score = CharacterAccuracy(m.Dist)
		}
		if score > bestScore {
			bestScore, bestMatch, bestGT, bestOCR = score, m, g, o
		}
		if bestScore >= 1 {
			break
		}
	}

	if bestMatch != nil {
		gtLines = removeOrSplit(bestGT, bestMatch.GT, gtLines)
		ocrLines = removeOrSplit(bestOCR, bestMatch.OCR, ocrLines)
		return bestMatch, gtLines, ocrLines
	}

	if len(gtLines) > 0 {
		longest := gtLines[0]
		del := distance(longest, emptyAt(longest.Line, longest.Start))
		return &del, gtLines[1:], ocrLines
	}
	return nil, gtLines, ocrLines
}

// matchGTLine aligns gtLine against every candidate in ocrLines and keeps
// the one minimizing the penalty function (spec.md §4.4).
func matchGTLine(gtLine Part, ocrLines []Part, coef Coefficients) (*Match, Part) {
	minPenalty := math.Inf(1)
	var best *Match
	var bestOCR Part

	gtLen := gtLine.Length()
	gtStart := gtLine.Start

	for _, o := range ocrLines {
		m := align(gtLine, o)
		if m == nil {
			continue
		}
		p := penalty(gtLen, o.Length(), gtStart, o.Start, m.GT.Start, m.OCR.Start, m.Dist, coef)
		if p < minPenalty {
			minPenalty, best, bestOCR = p, m, o
		}
	}
	return best, bestOCR
}

package accuracy

import (
	"sort"

	"github.com/flexacc/flexacc/editops"
)

// SplitMatches re-sorts matches into GT line order and renders them as two
// parallel segment lists plus the edit ops behind each segment, with
// linesep tokens interleaved wherever the GT line index changes. Useful
// for renderers (HTML/JSON diff views) that want the matches grouped back
// into something resembling the original lines, regardless of the order
// the picker committed them in.
func SplitMatches(matches []Match, linesep string) (gtSegments, ocrSegments []string, opsPerSegment [][]editops.Edit) {
	sorted := make([]Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sortKey(sorted[i]) < sortKey(sorted[j])
	})

	lastLine := -1
	for idx, m := range sorted {
		if idx > 0 && m.GT.Line != lastLine {
			gtSegments = append(gtSegments, linesep)
			ocrSegments = append(ocrSegments, linesep)
			opsPerSegment = append(opsPerSegment, nil)
		}
		gtSegments = append(gtSegments, m.GT.Text)
		ocrSegments = append(ocrSegments, m.OCR.Text)
		opsPerSegment = append(opsPerSegment, m.Ops)
		lastLine = m.GT.Line
	}

	return gtSegments, ocrSegments, opsPerSegment
}

// sortKey folds (line, start) into a single ascending sort key, matching
// the reference implementation's line + start/10000 ordering.
func sortKey(m Match) float64 {
	return float64(m.GT.Line) + float64(m.GT.Start)/10000.0
}

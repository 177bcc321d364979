package flexreport

import (
	"github.com/antzucaro/matchr"

	"github.com/flexacc/flexacc/accuracy"
)

// BuildDocument scores one GT/OCR pair and assembles its DocumentResult,
// including the aligned line-by-line view from accuracy.SplitMatches.
func BuildDocument(name, gt, ocr string) DocumentResult {
	score, matches := accuracy.FlexibleCharacterAccuracy(gt, ocr)
	gtSegments, ocrSegments, _ := accuracy.SplitMatches(matches, "")

	lines := make([]LineResult, 0, len(gtSegments))
	for i := range gtSegments {
		if gtSegments[i] == "" && ocrSegments[i] == "" {
			continue
		}
		lines = append(lines, LineResult{
			GTText:     gtSegments[i],
			OCRText:    ocrSegments[i],
			Similarity: matchr.JaroWinkler(gtSegments[i], ocrSegments[i], false),
		})
	}

	return DocumentResult{Name: name, Score: score, Lines: lines}
}

// BuildReport aggregates already-scored documents into a Report, with the
// overall score being their unweighted mean (an even simpler aggregate
// than the original's per-document weighting, adequate for flexacc's
// batch summary — per-document scores remain available for anyone who
// wants a different rollup).
func BuildReport(docs []DocumentResult) Report {
	var sum float64
	for _, d := range docs {
		sum += d.Score
	}
	overall := 0.0
	if len(docs) > 0 {
		overall = sum / float64(len(docs))
	}
	return Report{OverallScore: overall, Documents: docs}
}

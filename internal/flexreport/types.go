// Package flexreport renders accuracy.FlexibleCharacterAccuracy results as
// a terminal table or schema-validated JSON, grounded on ascii/ascii.go
// (box-drawing, go-runewidth alignment) for the table and
// github.com/santhosh-tekuri/jsonschema/v5 for the JSON form. The aligned
// GT/OCR view is built from accuracy.SplitMatches (§6 of the core spec's
// auxiliary export), the one consumer that exercises it.
package flexreport

// LineResult is one matched line pair in the aligned view, plus an
// informational Jaro-Winkler similarity hint that plays no role in the
// actual score.
type LineResult struct {
	GTText     string  `json:"gt_text"`
	OCRText    string  `json:"ocr_text"`
	Similarity float64 `json:"similarity_hint"`
}

// DocumentResult is one scored GT/OCR pair.
type DocumentResult struct {
	Name  string       `json:"name"`
	Score float64      `json:"score"`
	Lines []LineResult `json:"lines,omitempty"`
}

// Report is the full output of a score or batch run.
type Report struct {
	OverallScore float64          `json:"overall_score"`
	Documents    []DocumentResult `json:"documents"`
}

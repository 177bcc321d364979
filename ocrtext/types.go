// Package ocrtext extracts the ordered text lines the accuracy engine
// compares from ALTO XML, PAGE XML, and plain text documents, grounded on
// original_source's ocr_files.py and reading_order.py. The engine itself
// (package accuracy) never imports this package: Document is the external
// collaborator interface the core spec declares out of scope, joined by
// the caller into the newline-separated strings accuracy.FlexibleCharacterAccuracy
// takes.
package ocrtext

import "strings"

// Line is one unit of extracted text: ALTO and plain text extraction
// produce one Line per TextLine/input line; PAGE extraction produces one
// Line per region (or per line, depending on TextEquivLevel), in reading
// order.
type Line struct {
	// ID is the source element's identifier (TextLine/@ID, TextRegion/@id,
	// or "line N" for plain text), kept for diagnostics and report
	// rendering; it plays no role in scoring.
	ID   string
	Text string
}

// Document is an ordered sequence of extracted Lines.
type Document struct {
	Lines []Line
}

// Text joins the document's lines with "\n", the form accuracy.FlexibleCharacterAccuracy
// consumes.
func (d Document) Text() string {
	texts := make([]string, len(d.Lines))
	for i, l := range d.Lines {
		texts[i] = l.Text
	}
	return strings.Join(texts, "\n")
}

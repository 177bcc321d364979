package flexreport

import (
	"fmt"
	"strings"

	"github.com/flexacc/flexacc/ascii"
)

// RenderTable draws a terminal summary: overall score boxed with
// ascii.DrawBox, then one boxed row per document, then (for each matched
// line) the Jaro-Winkler similarity hint, sized so Unicode OCR text still
// lines up in a monospace terminal.
func RenderTable(r Report) string {
	var b strings.Builder

	rows := make([]string, 0, len(r.Documents)+1)
	header := fmt.Sprintf("flexible character accuracy: %.4f", r.OverallScore)
	rows = append(rows, header)
	for _, doc := range r.Documents {
		rows = append(rows, fmt.Sprintf("%s: %.4f", doc.Name, doc.Score))
	}
	width := ascii.MaxContentWidth(rows)

	b.WriteString(ascii.DrawBox(header, width))
	for i, doc := range r.Documents {
		b.WriteString(ascii.DrawBox(rows[i+1], width))
		for _, line := range doc.Lines {
			b.WriteString(fmt.Sprintf("  gt:  %s\n  ocr: %s  (similarity hint %.2f)\n",
				line.GTText, line.OCRText, line.Similarity))
		}
	}

	return b.String()
}

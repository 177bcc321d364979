package ocrtext

import (
	"bufio"
	"fmt"
	"strings"
)

// extractPlain produces one Line per input line, the fallback taken when
// neither PAGE nor ALTO root element is recognized, mirroring
// plain_extract's "line %d" identifiers.
func extractPlain(data []byte) (Document, error) {
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var doc Document
	n := 0
	for scanner.Scan() {
		doc.Lines = append(doc.Lines, Line{ID: fmt.Sprintf("line %d", n), Text: scanner.Text()})
		n++
	}
	if err := scanner.Err(); err != nil {
		return Document{}, fmt.Errorf("ocrtext: scan plain text: %w", err)
	}
	return doc, nil
}

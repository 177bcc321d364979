package ocrtext

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// extractALTO walks TextLine/String elements with a streaming decoder,
// mirroring alto_extract_lines's iterfind over "alto:TextLine" — but since
// encoding/xml tokens carry the element's local name separately from its
// namespace URI, matching by local name alone serves the same purpose as
// lxml's namespace-qualified XPath without needing to resolve the ALTO
// namespace URI up front.
func extractALTO(data []byte) (Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var doc Document
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Document{}, fmt.Errorf("ocrtext: decode ALTO: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "TextLine" {
			continue
		}
		line, err := decodeALTOTextLine(dec, start)
		if err != nil {
			return Document{}, fmt.Errorf("ocrtext: decode ALTO TextLine: %w", err)
		}
		doc.Lines = append(doc.Lines, line)
	}
	return doc, nil
}

func decodeALTOTextLine(dec *xml.Decoder, start xml.StartElement) (Line, error) {
	line := Line{ID: attr(start, "ID")}
	var words []string

	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return Line{}, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "String" {
				if content := attr(t, "CONTENT"); content != "" {
					words = append(words, content)
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	line.Text = strings.Join(words, " ")
	return line, nil
}

func attr(start xml.StartElement, local string) string {
	for _, a := range start.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

package ocrtext

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Extract reads path and dispatches to the PAGE, ALTO, or plain text
// extractor, mirroring ocr_files.py's extract(): try to parse XML, and if
// it parses, expect PcGts or alto as the root element name; anything that
// fails to parse as XML at all falls back to plain text. Go's
// encoding/xml reports malformed markup as a decode error rather than
// lxml's XMLSyntaxError, but the effect is the same — sniff first, then
// parse for real with whichever extractor matches.
func Extract(path string, opts Options) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("ocrtext: read %s: %w", path, err)
	}
	return ExtractBytes(data, opts)
}

// ExtractBytes is Extract without the filesystem read, useful for
// in-memory documents and tests.
func ExtractBytes(data []byte, opts Options) (Document, error) {
	root, ok := sniffRootElement(data)
	if !ok {
		return extractPlain(data)
	}

	switch root {
	case "PcGts":
		return extractPAGE(data, opts)
	case "alto":
		return extractALTO(data)
	default:
		return extractPlain(data)
	}
}

// sniffRootElement returns the local name of the document's root element,
// or ok=false if data doesn't parse as XML at all.
func sniffRootElement(data []byte) (name string, ok bool) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return "", false
		}
		if err != nil {
			return "", false
		}
		if start, isStart := tok.(xml.StartElement); isStart {
			return start.Name.Local, true
		}
	}
}

package ocrtext

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/flexacc/flexacc/ocrtext/readingorder"
)

// pcGtsDocument mirrors just enough of the PAGE content schema for
// extractPAGE: region text, region geometry, and the ReadingOrder group.
// Struct tags name only the local element name, which encoding/xml
// matches regardless of namespace prefix — the Go analogue of
// reading_order.py's namespace-qualified XPath lookups.
type pcGtsDocument struct {
	XMLName xml.Name `xml:"PcGts"`
	Page    pagePage `xml:"Page"`
}

type pagePage struct {
	ImageWidth   int              `xml:"imageWidth,attr"`
	ImageHeight  int              `xml:"imageHeight,attr"`
	ReadingOrder *readingOrderXML `xml:"ReadingOrder"`
	TextRegions  []textRegionXML  `xml:"TextRegion"`
}

type readingOrderXML struct {
	OrderedGroup *orderedGroupXML `xml:"OrderedGroup"`
}

type orderedGroupXML struct {
	RegionRefIndexed []regionRefIndexedXML `xml:"RegionRefIndexed"`
}

type regionRefIndexedXML struct {
	Index     int    `xml:"index,attr"`
	RegionRef string `xml:"regionRef,attr"`
}

type textRegionXML struct {
	ID        string        `xml:"id,attr"`
	Coords    coordsXML     `xml:"Coords"`
	TextLines []textLineXML `xml:"TextLine"`
	TextEquiv *textEquivXML `xml:"TextEquiv"`
}

type coordsXML struct {
	Points string `xml:"points,attr"`
}

type textLineXML struct {
	ID        string        `xml:"id,attr"`
	TextEquiv *textEquivXML `xml:"TextEquiv"`
}

type textEquivXML struct {
	Unicode string `xml:"Unicode"`
}

// extractPAGE extracts text regions in reading order, mirroring
// page_extract. The region ordering itself is delegated to
// ocrtext/readingorder so the three strategies live in one place.
func extractPAGE(data []byte, opts Options) (Document, error) {
	opts = opts.withDefaults()

	var doc pcGtsDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("ocrtext: decode PAGE: %w", err)
	}

	byID := make(map[string]textRegionXML, len(doc.Page.TextRegions))
	allIDs := make([]string, 0, len(doc.Page.TextRegions))
	for _, r := range doc.Page.TextRegions {
		byID[r.ID] = r
		allIDs = append(allIDs, r.ID)
	}

	explicit := explicitRegionRefs(doc.Page.ReadingOrder)
	grid, gridErr := gridRegions(doc.Page.TextRegions)
	if gridErr != nil && opts.ReadingOrderStrategy == readingorder.Grid {
		return Document{}, fmt.Errorf("ocrtext: grid reading order: %w", gridErr)
	}

	gridOpts := readingorder.GridOptions{
		ImageWidth:  doc.Page.ImageWidth,
		ImageHeight: doc.Page.ImageHeight,
		GridSize:    opts.GridSize,
		Direction:   opts.GridDirection,
	}
	order := readingorder.OrderIDs(opts.ReadingOrderStrategy, allIDs, explicit, grid, gridOpts)

	var out Document
	for _, id := range order {
		region, ok := byID[id]
		if !ok {
			continue
		}
		for _, line := range regionLines(region, opts.TextEquivLevel) {
			if strings.TrimSpace(line.Text) == "" {
				continue
			}
			out.Lines = append(out.Lines, line)
		}
	}
	return out, nil
}

func explicitRegionRefs(ro *readingOrderXML) []readingorder.RegionRef {
	if ro == nil || ro.OrderedGroup == nil {
		return nil
	}
	refs := make([]readingorder.RegionRef, 0, len(ro.OrderedGroup.RegionRefIndexed))
	for _, r := range ro.OrderedGroup.RegionRefIndexed {
		refs = append(refs, readingorder.RegionRef{ID: r.RegionRef, Index: r.Index})
	}
	return refs
}

func gridRegions(regions []textRegionXML) ([]readingorder.GridRegion, error) {
	grid := make([]readingorder.GridRegion, 0, len(regions))
	for _, r := range regions {
		if r.Coords.Points == "" {
			continue
		}
		x, y, err := extractTopLeft(r.Coords.Points)
		if err != nil {
			return nil, fmt.Errorf("region %s: %w", r.ID, err)
		}
		grid = append(grid, readingorder.GridRegion{ID: r.ID, TopLeftX: x, TopLeftY: y})
	}
	return grid, nil
}

// extractTopLeft parses a Coords/@points attribute ("x1,y1 x2,y2 ...")
// into the minimum x and minimum y of its polygon, per
// reading_order.py's extract_top_left.
func extractTopLeft(points string) (x, y int, err error) {
	fields := strings.Fields(points)
	if len(fields) == 0 {
		return 0, 0, fmt.Errorf("empty points attribute")
	}
	minX, minY := 0, 0
	for i, field := range fields {
		parts := strings.SplitN(field, ",", 2)
		if len(parts) != 2 {
			return 0, 0, fmt.Errorf("malformed point %q", field)
		}
		px, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, 0, fmt.Errorf("malformed point %q: %w", field, err)
		}
		py, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, fmt.Errorf("malformed point %q: %w", field, err)
		}
		if i == 0 || px < minX {
			minX = px
		}
		if i == 0 || py < minY {
			minY = py
		}
	}
	return minX, minY, nil
}

func regionLines(region textRegionXML, level TextEquivLevel) []Line {
	if level == LevelLine {
		lines := make([]Line, 0, len(region.TextLines))
		for _, l := range region.TextLines {
			lines = append(lines, Line{ID: l.ID, Text: textEquivUnicode(l.TextEquiv)})
		}
		return lines
	}

	if text := textEquivUnicode(region.TextEquiv); text != "" {
		return []Line{{ID: region.ID, Text: text}}
	}

	words := make([]string, 0, len(region.TextLines))
	for _, l := range region.TextLines {
		if u := textEquivUnicode(l.TextEquiv); u != "" {
			words = append(words, u)
		}
	}
	return []Line{{ID: region.ID, Text: strings.Join(words, " ")}}
}

func textEquivUnicode(te *textEquivXML) string {
	if te == nil {
		return ""
	}
	return te.Unicode
}

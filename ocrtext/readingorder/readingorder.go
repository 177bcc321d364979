// Package readingorder computes the sequence in which PAGE XML text
// regions should be read, independent of how those regions are parsed.
// Grounded on original_source's reading_order.py: three strategies
// (explicit ReadingOrder group, a coordinate grid bucketing, and the
// trivial document order) are offered, and the caller picks one.
//
// The accuracy engine is itself invariant to line order (that is the
// entire point of the matching algorithm), so the strategy chosen here
// only affects how a document reads in a rendered report, never scoring.
package readingorder

import "sort"

// Strategy names a region ordering algorithm.
type Strategy string

const (
	// Document preserves the order regions occur in the source XML.
	Document Strategy = "document"
	// Explicit follows a PAGE ReadingOrder/OrderedGroup element.
	Explicit Strategy = "reading_order"
	// Grid buckets regions onto a coordinate grid and reads bucket by bucket.
	Grid Strategy = "grid"
)

// RegionRef is one entry of a PAGE ReadingOrder/OrderedGroup.
type RegionRef struct {
	ID    string
	Index int
}

// GridRegion is a region's identity and the top-left corner of its
// bounding polygon, the only geometry the grid strategy needs.
type GridRegion struct {
	ID       string
	TopLeftX int
	TopLeftY int
}

// GridOptions parameterizes the Grid strategy.
type GridOptions struct {
	ImageWidth  int
	ImageHeight int
	GridSize    int    // defaults to 10 if <= 0
	Direction   string // "row" (default) or "col"
}

// OrderIDs reorders allIDs (already in document order) per strategy.
// Unknown region IDs referenced by explicit data that don't appear in
// allIDs are silently dropped (grid data is returned as given, without
// a check against allIDs), and any allIDs entry missing from
// explicit/grid data is omitted — mirroring the
// reference implementation's tolerance for partially-specified reading
// order data.
func OrderIDs(strategy Strategy, allIDs []string, explicit []RegionRef, grid []GridRegion, opts GridOptions) []string {
	switch strategy {
	case Explicit:
		if len(explicit) == 0 {
			return allIDs
		}
		return orderByExplicit(allIDs, explicit)
	case Grid:
		if len(grid) == 0 {
			return allIDs
		}
		return orderByGrid(grid, opts)
	default:
		return allIDs
	}
}

func orderByExplicit(allIDs []string, refs []RegionRef) []string {
	known := make(map[string]bool, len(allIDs))
	for _, id := range allIDs {
		known[id] = true
	}

	sorted := make([]RegionRef, len(refs))
	copy(sorted, refs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	ids := make([]string, 0, len(sorted))
	for _, r := range sorted {
		if known[r.ID] {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

func orderByGrid(regions []GridRegion, opts GridOptions) []string {
	gridSize := opts.GridSize
	if gridSize <= 0 {
		gridSize = 10
	}
	direction := opts.Direction
	if direction == "" {
		direction = "row"
	}

	sorted := make([]GridRegion, len(regions))
	copy(sorted, regions)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	buckets := make(map[int][]string)
	var keys []int
	for _, r := range sorted {
		gid := mapPointToGrid(opts.ImageWidth, opts.ImageHeight, r.TopLeftX, r.TopLeftY, direction, gridSize)
		if _, seen := buckets[gid]; !seen {
			keys = append(keys, gid)
		}
		buckets[gid] = append(buckets[gid], r.ID)
	}
	sort.Ints(keys)

	ids := make([]string, 0, len(regions))
	for _, k := range keys {
		ids = append(ids, buckets[k]...)
	}
	return ids
}

func mapPointToGrid(imgWidth, imgHeight, x, y int, direction string, gridSize int) int {
	x = clamp(x, 0, imgWidth)
	y = clamp(y, 0, imgHeight)

	var gridID int
	if direction == "col" {
		gridID = ceilDiv(imgHeight, gridSize)*max(0, ceilDiv(x, gridSize)-1) + ceilDiv(y, gridSize)
	} else {
		gridID = ceilDiv(imgWidth, gridSize)*max(0, ceilDiv(y, gridSize)-1) + ceilDiv(x, gridSize)
	}
	return max(1, gridID)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ceilDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}

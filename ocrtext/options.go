package ocrtext

import "github.com/flexacc/flexacc/ocrtext/readingorder"

// TextEquivLevel selects which PAGE element level extractPAGE reads text
// from, mirroring page_extract's textequiv_level keyword.
type TextEquivLevel string

const (
	// LevelRegion takes TextRegion/TextEquiv, falling back to the
	// concatenation of a region's TextLine/TextEquiv values when the
	// region itself carries none.
	LevelRegion TextEquivLevel = "region"
	// LevelLine emits one output Line per TextLine/TextEquiv instead of
	// one per region.
	LevelLine TextEquivLevel = "line"
)

// Options configures Extract and the PAGE extractor specifically.
type Options struct {
	// TextEquivLevel controls PAGE extraction granularity. Defaults to
	// LevelRegion.
	TextEquivLevel TextEquivLevel
	// ReadingOrderStrategy selects how PAGE regions are ordered before
	// their text is read. Defaults to readingorder.Explicit.
	ReadingOrderStrategy readingorder.Strategy
	// GridSize and GridDirection parameterize readingorder.Grid; ignored
	// for other strategies.
	GridSize      int
	GridDirection string
}

func (o Options) withDefaults() Options {
	if o.TextEquivLevel == "" {
		o.TextEquivLevel = LevelRegion
	}
	if o.ReadingOrderStrategy == "" {
		o.ReadingOrderStrategy = readingorder.Explicit
	}
	return o
}

package accuracy

import (
	"github.com/flexacc/flexacc/editops"
)

// Distance tallies the edit operations needed to transform a GT Part's
// text into an OCR Part's text.
//
// Invariant: for any Match(gt, ocr, d), d.Match+d.Delete+d.Replace ==
// gt.Length() and d.Match+d.Insert+d.Replace == ocr.Length().
type Distance struct {
	Insert  int
	Delete  int
	Replace int
	Match   int
}

// Add returns the element-wise sum of two Distances, used by the
// accuracy reducer to aggregate every Match in a run.
func (d Distance) Add(o Distance) Distance {
	return Distance{
		Insert:  d.Insert + o.Insert,
		Delete:  d.Delete + o.Delete,
		Replace: d.Replace + o.Replace,
		Match:   d.Match + o.Match,
	}
}

// Match pairs a GT Part with the OCR Part it was aligned against, the
// resulting edit tally, and the raw edit operations (preserved for
// downstream rendering; the scorer never inspects Ops directly).
//
// A Match may be degenerate: either Part's Text may be empty, representing
// a pure deletion (no OCR counterpart) or a pure insertion (no GT
// counterpart).
type Match struct {
	GT   Part
	OCR  Part
	Dist Distance
	Ops  []editops.Edit
}

// Coefficients parameterize the penalty function (see penalty.go). The
// sweep (see sweep.go) enumerates a fixed grid of these.
type Coefficients struct {
	EditDist   int
	LengthDiff int
	Offset     int
	Length     int
}

// distanceKey is the memoization key for Distance computation: value
// equality on both Parts' (Line, Start, Text).
type distanceKey struct {
	gt  Part
	ocr Part
}

// distance computes the editing distance between two Parts using the
// editops primitive, deriving the Match count as gt.Length() - delete -
// replace. The result is memoized (see cache.go): this function is pure
// in (gt, ocr) and sits on the hottest path in the engine.
func distance(gt, ocr Part) Match {
	key := distanceKey{gt: gt, ocr: ocr}
	if m, ok := distanceCache.get(key); ok {
		telemetryDistanceCacheHit()
		return m
	}
	telemetryDistanceCacheMiss()

	ops := editops.Compute(gt.Text, ocr.Text)

	var ins, del, rep int
	for _, op := range ops {
		switch op.Op {
		case editops.OpInsert:
			ins++
		case editops.OpDelete:
			del++
		case editops.OpReplace:
			rep++
		}
	}

	dist := Distance{
		Insert:  ins,
		Delete:  del,
		Replace: rep,
		Match:   gt.Length() - del - rep,
	}

	m := Match{GT: gt, OCR: ocr, Dist: dist, Ops: ops}
	distanceCache.put(key, m)
	return m
}

// scoreEditDistance is the scalar cost of a Distance used during
// alignment search and penalty calculation: deletes + inserts +
// 2*replacements.
func scoreEditDistance(d Distance) int {
	return d.Delete + d.Insert + 2*d.Replace
}

package accuracy

// ToEnd is passed as the rel_end argument to Part.Substring to mean
// "to the end of the part", mirroring the optional rel_end=None parameter
// of the reference implementation.
const ToEnd = -1

// Part is an immutable fragment of a source line: its text, the 0-based
// index of the line it was cut from, and the rune offset of Text[0] within
// that original line.
//
// A Part never crosses a line boundary. Two Parts are equal iff their
// (Line, Start, Text) triples are equal — this is also the cache key used
// by the memoized hot paths in align.go and distance.go.
type Part struct {
	Text  string
	Line  int
	Start int
}

// NewPart constructs a fresh, unsplit Part starting at offset 0 of line.
func NewPart(line int, text string) Part {
	return Part{Text: text, Line: line, Start: 0}
}

// Length returns the number of runes in the part's text.
func (p Part) Length() int {
	return len([]rune(p.Text))
}

// End returns the exclusive rune offset one past the part's last
// character within its source line.
func (p Part) End() int {
	return p.Start + p.Length()
}

// Substring returns the Part covering Text[relStart:relEnd], relative to
// this part, with Start adjusted accordingly and Line unchanged. Passing
// ToEnd for relEnd means "to the end of this part". Bounds are not
// clamped: callers must pass values within [0, p.Length()].
func (p Part) Substring(relStart, relEnd int) Part {
	runes := []rune(p.Text)
	end := relEnd
	if end == ToEnd {
		end = len(runes)
	}
	return Part{
		Text:  string(runes[relStart:end]),
		Line:  p.Line,
		Start: p.Start + relStart,
	}
}

// Split treats other as a contiguous sub-range of p (same Line,
// p.Start <= other.Start and other.End() <= p.End()) and returns the
// non-empty remainder(s): the prefix before other and the suffix after
// other. An other spanning the whole of p yields an empty slice.
func (p Part) Split(other Part) []Part {
	var rest []Part
	if p.Start < other.Start {
		rest = append(rest, p.Substring(0, other.Start-p.Start))
	}
	if other.End() < p.End() {
		rest = append(rest, p.Substring(other.End()-p.Start, ToEnd))
	}
	return rest
}

package accuracy

// aggregateDistance sums every Match's Distance counters, field by field.
func aggregateDistance(matches []Match) Distance {
	var agg Distance
	for _, m := range matches {
		agg = agg.Add(m.Dist)
	}
	return agg
}

// CharacterAccuracy is the character accuracy implied by a single
// aggregated Distance: 1 - errors/characters, where errors are
// replacements, deletes and inserts and characters are matches,
// replacements and deletes.
//
// Comparing two empty documents (no edits at all) is a perfect match
// (1.0). A document with OCR characters but no GT characters to compare
// against produces a negative score whose magnitude is the insertion
// count — this is deliberate (see spec.md §4.8, §7) and not an error.
func CharacterAccuracy(d Distance) float64 {
	errors := d.Replace + d.Delete + d.Insert
	chars := d.Match + d.Replace + d.Delete

	switch {
	case chars == 0 && errors == 0:
		return 1.0
	case chars == 0:
		return -float64(errors)
	default:
		return 1.0 - float64(errors)/float64(chars)
	}
}

// characterAccuracyForMatches is the whole-document character accuracy
// implied by a list of matches: aggregate their Distances, then reduce.
func characterAccuracyForMatches(matches []Match) float64 {
	return CharacterAccuracy(aggregateDistance(matches))
}

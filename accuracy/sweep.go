package accuracy

import "github.com/flexacc/flexacc/internal/flextelemetry"

// coefficientGrid is the fixed 4x8x4x6 = 768-point search space the engine
// sweeps to find the coefficient vector that produces the highest
// character accuracy for a given (gt, ocr) pair.
var coefficientGrid = buildCoefficientGrid()

func buildCoefficientGrid() []Coefficients {
	editDistValues := []int{15, 20, 25, 30}
	lengthDiffValues := []int{0, 3, 6, 9, 12, 15, 18, 21}
	offsetValues := []int{0, 1, 2, 3}
	lengthValues := []int{0, 1, 2, 3, 4, 5}

	grid := make([]Coefficients, 0, len(editDistValues)*len(lengthDiffValues)*len(offsetValues)*len(lengthValues))
	for _, ed := range editDistValues {
		for _, ld := range lengthDiffValues {
			for _, off := range offsetValues {
				for _, l := range lengthValues {
					grid = append(grid, Coefficients{
						EditDist:   ed,
						LengthDiff: ld,
						Offset:     off,
						Length:     l,
					})
				}
			}
		}
	}
	return grid
}

// FlexibleCharacterAccuracy is the top-level entry point: it sweeps the
// full coefficient grid, runs the greedy line picker for each point, and
// keeps the matches that produce the highest whole-document character
// accuracy. The sweep exits early the moment a perfect score (1.0) is
// found, since no later grid point can do better.
//
// An empty ground truth compared with an empty OCR text scores 1.0 with
// no matches (see CharacterAccuracy): the first grid point already
// scores 1.0, so the sweep stops there.
func FlexibleCharacterAccuracy(gt, ocr string) (float64, []Match) {
	bestScore := -1.0
	var bestMatches []Match

	for _, coef := range coefficientGrid {
		flextelemetry.EmitCounter(flextelemetry.SweepIterationsTotal, 1, nil)

		matches := matchWithCoefficients(gt, ocr, coef)
		score := characterAccuracyForMatches(matches)

		if bestMatches == nil || score > bestScore {
			bestScore = score
			bestMatches = matches
		}

		if bestScore >= 1.0 {
			flextelemetry.EmitCounter(flextelemetry.SweepEarlyExitTotal, 1, nil)
			break
		}
	}

	flextelemetry.EmitCounter(flextelemetry.DocumentsScoredTotal, 1, nil)
	flextelemetry.EmitCounter(flextelemetry.MatchesTotal, float64(len(bestMatches)), nil)

	return bestScore, bestMatches
}

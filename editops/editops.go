// Package editops provides the edit-operation primitive the accuracy engine
// consumes: given two strings, the minimal sequence of insert/delete/replace
// operations that transforms the first into the second.
//
// Compute is grounded on a character-level diff rather than a classical
// Levenshtein backtrace, lowered into the same (kind, i, j) shape a
// Levenshtein edit script would produce.
package editops

import (
	dmp "github.com/kenshaw/diffmatchpatch"
)

// Op identifies the kind of a single edit operation.
type Op int

const (
	// OpInsert means a character present in b is absent from a at this point.
	OpInsert Op = iota
	// OpDelete means a character present in a is absent from b at this point.
	OpDelete
	// OpReplace means a character in a is swapped for a different character in b.
	OpReplace
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Edit is a single edit operation. I and J are rune indices into a and b
// respectively, following the convention of classical Levenshtein edit
// scripts: applying the ops left-to-right against a reproduces b.
type Edit struct {
	Op Op
	I  int
	J  int
}

var config = dmp.NewDefaultConfig()

// Compute returns the edit operations that transform a into b.
//
// It runs a character-level diff (checklines=false, since the accuracy
// engine only ever calls this on single OCR/GT lines or short line
// fragments, never whole documents) and lowers the resulting equal/insert/
// delete runs into insert/delete/replace operations: an adjacent
// delete-run and insert-run are paired character-by-character into
// replace ops, with any length difference between the two runs left over
// as delete or insert ops.
func Compute(a, b string) []Edit {
	if a == b {
		return nil
	}

	diffs := config.Diff(a, b, false)

	var edits []Edit
	i, j := 0, 0
	for idx := 0; idx < len(diffs); idx++ {
		d := diffs[idx]
		runes := []rune(d.Text)

		switch d.Op {
		case dmp.OpEqual:
			i += len(runes)
			j += len(runes)

		case dmp.OpDelete:
			if idx+1 < len(diffs) && diffs[idx+1].Op == dmp.OpInsert {
				insRunes := []rune(diffs[idx+1].Text)
				edits = append(edits, pairReplace(i, j, runes, insRunes)...)
				i += len(runes)
				j += len(insRunes)
				idx++ // consume the paired insert run
			} else {
				for k := range runes {
					edits = append(edits, Edit{Op: OpDelete, I: i + k, J: j})
				}
				i += len(runes)
			}

		case dmp.OpInsert:
			for k := range runes {
				edits = append(edits, Edit{Op: OpInsert, I: i, J: j + k})
			}
			j += len(runes)
		}
	}
	return edits
}

// pairReplace lowers an adjacent delete-run/insert-run pair into replace
// ops for the overlapping length, plus delete or insert ops for whichever
// run is longer.
func pairReplace(i, j int, delRunes, insRunes []rune) []Edit {
	pair := min(len(delRunes), len(insRunes))

	edits := make([]Edit, 0, max(len(delRunes), len(insRunes)))
	for k := 0; k < pair; k++ {
		edits = append(edits, Edit{Op: OpReplace, I: i + k, J: j + k})
	}
	for k := pair; k < len(delRunes); k++ {
		edits = append(edits, Edit{Op: OpDelete, I: i + k, J: j})
	}
	for k := pair; k < len(insRunes); k++ {
		edits = append(edits, Edit{Op: OpInsert, I: i + len(delRunes), J: j + k})
	}
	return edits
}

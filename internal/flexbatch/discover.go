// Package flexbatch discovers ground-truth/OCR file pairs across two
// directory trees for the CLI's batch subcommand. Glob matching follows
// pathfinder/finder.go (doublestar-based discovery); path-traversal
// rejection reuses pathfinder.ValidatePathWithinRoot directly. The
// telemetry, schema validation, and crucible-backed query/result
// validation of the original finder are dropped — see DESIGN.md — since
// a batch run has one caller and no untrusted input boundary to validate
// against.
package flexbatch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/flexacc/flexacc/internal/flexerr"
	"github.com/flexacc/flexacc/pathfinder"
)

// Pair is a matched ground-truth/OCR file, keyed by identical relative path
// under their respective roots.
type Pair struct {
	RelPath string
	GTPath  string
	OCRPath string
}

const (
	defaultGlob = "**/*"
)

// DiscoverPairs walks gtDir and ocrDir, matching files against gtGlob and
// ocrGlob (defaulting to "**/*" when empty), and pairs files that share a
// relative path in both trees. Unmatched files on either side are
// reported via unmatchedGT/unmatchedOCR rather than silently dropped.
func DiscoverPairs(gtDir, ocrDir, gtGlob, ocrGlob string) (pairs []Pair, unmatchedGT, unmatchedOCR []string, err error) {
	if gtGlob == "" {
		gtGlob = defaultGlob
	}
	if ocrGlob == "" {
		ocrGlob = defaultGlob
	}

	gtFiles, err := discoverRelPaths(gtDir, gtGlob)
	if err != nil {
		return nil, nil, nil, flexerr.Wrap("flexacc.batch.discover_gt", err)
	}
	ocrFiles, err := discoverRelPaths(ocrDir, ocrGlob)
	if err != nil {
		return nil, nil, nil, flexerr.Wrap("flexacc.batch.discover_ocr", err)
	}

	ocrSet := make(map[string]bool, len(ocrFiles))
	for _, rel := range ocrFiles {
		ocrSet[rel] = true
	}

	gtSet := make(map[string]bool, len(gtFiles))
	for _, rel := range gtFiles {
		gtSet[rel] = true
		if ocrSet[rel] {
			pairs = append(pairs, Pair{
				RelPath: rel,
				GTPath:  filepath.Join(gtDir, rel),
				OCRPath: filepath.Join(ocrDir, rel),
			})
		} else {
			unmatchedGT = append(unmatchedGT, rel)
		}
	}
	for _, rel := range ocrFiles {
		if !gtSet[rel] {
			unmatchedOCR = append(unmatchedOCR, rel)
		}
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].RelPath < pairs[j].RelPath })
	sort.Strings(unmatchedGT)
	sort.Strings(unmatchedOCR)
	return pairs, unmatchedGT, unmatchedOCR, nil
}

// discoverRelPaths globs pattern under root and returns matches as paths
// relative to root, rejecting anything that would resolve outside root —
// the same escape check finder.go runs before trusting a glob match.
func discoverRelPaths(root, pattern string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %s: %w", root, err)
	}

	matches, err := doublestar.FilepathGlob(filepath.Join(absRoot, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %s under %s: %w", pattern, root, err)
	}

	rels := make([]string, 0, len(matches))
	for _, match := range matches {
		absMatch, err := filepath.Abs(match)
		if err != nil {
			continue
		}
		if err := pathfinder.ValidatePathWithinRoot(absMatch, absRoot); err != nil {
			continue
		}

		info, err := os.Lstat(absMatch)
		if err != nil || info.IsDir() {
			continue
		}

		rel, err := filepath.Rel(absRoot, absMatch)
		if err != nil {
			continue
		}
		rels = append(rels, filepath.ToSlash(rel))
	}
	return rels, nil
}

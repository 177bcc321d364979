// Package flexpack archives a batch run's reports into a single
// .tar.gz, grounded on fulpack/create.go's streaming tar/gzip writer and
// path-traversal-safe naming. fulpack's pluggable ArchiveFormat dispatch
// (ZIP, plain TAR, decompression-bomb-aware Extract/Verify/Scan) has no
// caller in flexacc, which only ever produces one format for one
// direction — see DESIGN.md.
package flexpack

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/flexacc/flexacc/internal/flexerr"
)

// ReportFile is one file to include in a bundle, named by the relative
// path it should occupy inside the archive.
type ReportFile struct {
	ArchiveName string
	SourcePath  string
}

// Bundle writes sources into a gzip-compressed tar archive at output,
// rejecting any ArchiveName that would escape the archive root.
func Bundle(reports []ReportFile, output string) error {
	outFile, err := os.Create(output) // #nosec G304 -- output is an explicit CLI flag, not untrusted input
	if err != nil {
		return flexerr.Wrap("flexacc.pack.create_archive", err)
	}
	defer outFile.Close()

	gw := gzip.NewWriter(outFile)
	defer gw.Close()

	tw := tar.NewWriter(gw)
	defer tw.Close()

	for _, report := range reports {
		if err := validateArchiveName(report.ArchiveName); err != nil {
			return flexerr.Wrap("flexacc.pack.unsafe_entry_name", err).WithContext(map[string]any{
				"archive_name": report.ArchiveName,
			})
		}
		if err := writeEntry(tw, report); err != nil {
			return flexerr.Wrap("flexacc.pack.write_entry", err).WithContext(map[string]any{
				"archive_name": report.ArchiveName,
				"source_path":  report.SourcePath,
			})
		}
	}
	return nil
}

func writeEntry(tw *tar.Writer, report ReportFile) error {
	info, err := os.Stat(report.SourcePath)
	if err != nil {
		return fmt.Errorf("stat %s: %w", report.SourcePath, err)
	}

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("build tar header for %s: %w", report.SourcePath, err)
	}
	header.Name = report.ArchiveName

	if err := tw.WriteHeader(header); err != nil {
		return fmt.Errorf("write tar header for %s: %w", report.ArchiveName, err)
	}

	f, err := os.Open(report.SourcePath) // #nosec G304 -- SourcePath is produced by flexbatch/flexreport, not user-controlled at this boundary
	if err != nil {
		return fmt.Errorf("open %s: %w", report.SourcePath, err)
	}
	defer f.Close()

	if _, err := io.Copy(tw, f); err != nil {
		return fmt.Errorf("copy %s into archive: %w", report.SourcePath, err)
	}
	return nil
}

// validateArchiveName rejects absolute paths and parent-directory
// traversal, the two cases fulpack's extraction path guards against; on
// the creation side it is the archive *names* we control that must stay
// well-formed, not extraction targets.
func validateArchiveName(name string) error {
	cleaned := filepath.ToSlash(filepath.Clean(name))
	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("archive entry name %q must be relative", name)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("archive entry name %q escapes the archive root", name)
	}
	return nil
}

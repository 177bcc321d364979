package flexpack

import (
	"archive/tar"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundle_WritesTarGzWithGivenNames(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "report.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"ok":true}`), 0o644))

	out := filepath.Join(dir, "bundle.tar.gz")
	err := Bundle([]ReportFile{{ArchiveName: "report.json", SourcePath: src}}, out)
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	gr, err := gzip.NewReader(f)
	require.NoError(t, err)
	tr := tar.NewReader(gr)

	hdr, err := tr.Next()
	require.NoError(t, err)
	assert.Equal(t, "report.json", hdr.Name)
}

func TestBundle_RejectsEscapingArchiveName(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "report.json")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))

	err := Bundle([]ReportFile{{ArchiveName: "../escape.json", SourcePath: src}}, filepath.Join(dir, "out.tar.gz"))
	assert.Error(t, err)
}

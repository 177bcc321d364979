package flexconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexacc/flexacc/internal/flexerr"
)

func TestDefaults_ValidateAgainstSchema(t *testing.T) {
	m, err := toMap(Defaults())
	require.NoError(t, err)
	assert.NoError(t, Validate(m))
}

func TestValidate_RejectsUnknownField(t *testing.T) {
	m, err := toMap(Defaults())
	require.NoError(t, err)
	m["not_a_real_field"] = true
	assert.Error(t, Validate(m))
}

func TestValidate_RejectsBadEnum(t *testing.T) {
	m, err := toMap(Defaults())
	require.NoError(t, err)
	m["report_format"] = "pdf"
	assert.Error(t, Validate(m))
}

func TestLoad_DefaultsOnlyWhenNoFileOrEnv(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults().CacheCapacity, cfg.CacheCapacity)
}

func TestLoad_ExplicitFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flexacc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache_capacity: 500\nreport_format: json\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.CacheCapacity)
	assert.Equal(t, "json", cfg.ReportFormat)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flexacc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache_capacity: 500\n"), 0o644))

	t.Setenv("FLEXACC_CACHE_CAPACITY", "999")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 999, cfg.CacheCapacity)
}

func TestLoad_InvalidFileReturnsEnvelope(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flexacc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("report_format: pdf\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
	var env *flexerr.Envelope
	assert.ErrorAs(t, err, &env)
}

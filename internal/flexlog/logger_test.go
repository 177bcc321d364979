package flexlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresService(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestNew_DefaultsLevelToInfo(t *testing.T) {
	l, err := New(Config{Service: "flexacc-test"})
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Equal(t, INFO.ToZapLevel(), l.atomicLevel.Level())
}

func TestNewCLI_Succeeds(t *testing.T) {
	l, err := NewCLI("flexacc")
	require.NoError(t, err)
	require.NotNil(t, l)
	l.Info("scoring started")
	l.WithComponent("sweep").Debug("grid point evaluated")
}

func TestSeverity_ToZapLevelKnownValues(t *testing.T) {
	assert.Equal(t, "debug", DEBUG.ToZapLevel().String())
	assert.Equal(t, "info", INFO.ToZapLevel().String())
	assert.Equal(t, "warn", WARN.ToZapLevel().String())
	assert.Equal(t, "error", ERROR.ToZapLevel().String())
	assert.Equal(t, "fatal", FATAL.ToZapLevel().String())
}

func TestLogger_WithFieldsDoesNotPanic(t *testing.T) {
	l, err := NewCLI("flexacc")
	require.NoError(t, err)
	derived := l.WithFields(map[string]any{"document": "sample.xml"})
	derived.Info("ingest complete")
}

func TestLogger_WithErrorDoesNotPanic(t *testing.T) {
	l, err := NewCLI("flexacc")
	require.NoError(t, err)
	l.WithError(assertError{"boom"}).Error("scoring failed")
}

type assertError struct{ msg string }

func (e assertError) Error() string { return e.msg }

package flextelemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_CounterAccumulates(t *testing.T) {
	r := NewRecorder()
	r.Counter("widgets_total", 1, nil)
	r.Counter("widgets_total", 2, nil)
	assert.Equal(t, 3.0, r.CounterValue("widgets_total"))
}

func TestRecorder_CounterValueDefaultsToZero(t *testing.T) {
	r := NewRecorder()
	assert.Equal(t, 0.0, r.CounterValue("never_emitted"))
}

func TestRecorder_HistogramCount(t *testing.T) {
	r := NewRecorder()
	r.Histogram("latency_ms", 5*time.Millisecond, nil)
	r.Histogram("latency_ms", 7*time.Millisecond, nil)
	assert.Equal(t, 2, r.HistogramCount("latency_ms"))
}

func TestRecorder_CounterNamesSorted(t *testing.T) {
	r := NewRecorder()
	r.Counter("zeta", 1, nil)
	r.Counter("alpha", 1, nil)
	assert.Equal(t, []string{"alpha", "zeta"}, r.CounterNames())
}

func TestSetEmitter_SwapsDefault(t *testing.T) {
	original, ok := DefaultRecorder()
	require.True(t, ok)
	defer SetEmitter(original)

	r := NewRecorder()
	SetEmitter(r)
	EmitCounter("flexacc_test_counter", 1, nil)

	assert.Equal(t, 1.0, r.CounterValue("flexacc_test_counter"))
}

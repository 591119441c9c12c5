package monitoring

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRender(t *testing.T) {
	m := NewMetrics()

	m.RecordRender("gotemplate", OutcomeSuccess, 5*time.Millisecond)
	m.RecordRender("gotemplate", OutcomeSuccess, time.Millisecond)
	m.RecordRender("gotemplate", OutcomeFailure, time.Millisecond)
	m.RecordRender("handlebars", OutcomeFault, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RendersTotal.WithLabelValues("gotemplate", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RendersTotal.WithLabelValues("gotemplate", OutcomeFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RendersTotal.WithLabelValues("handlebars", OutcomeFault)))

	snap := m.Snapshot()
	assert.Equal(t, int64(4), snap.Renders)
	assert.Equal(t, int64(1), snap.Failures)
	assert.Equal(t, int64(1), snap.Faults)
}

func TestRecordParse(t *testing.T) {
	m := NewMetrics()

	m.RecordParse("json")
	m.RecordParse("css")
	m.RecordParse("css")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ViewParses.WithLabelValues("json")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ViewParses.WithLabelValues("css")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ViewParses.WithLabelValues("xpath")))
	assert.Equal(t, int64(3), m.Snapshot().Parses)
}

func TestNilMetricsAreNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordRender("gotemplate", OutcomeSuccess, time.Millisecond)
		m.RecordParse("json")
	})
}

func TestIndependentRegistries(t *testing.T) {
	// Each Metrics owns its registry, so duplicates never collide
	assert.NotPanics(t, func() {
		NewMetrics()
		NewMetrics()
	})
}

func TestWriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.RecordRender("gotemplate", OutcomeSuccess, time.Millisecond)
	m.RecordParse("xpath")

	path := filepath.Join(t.TempDir(), "transform.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "transform_renders_total")
	assert.Contains(t, string(data), `view="xpath"`)
}

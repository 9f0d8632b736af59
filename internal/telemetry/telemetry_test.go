package telemetry_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqgraph/triegraph/internal/telemetry"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestNewRegistersAgainstInjectedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := telemetry.New(reg, "triegraph", "build")
	require.NotNil(t, m)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)
}

func TestObserveBuildRecordsOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := telemetry.New(reg, "triegraph", "build")

	m.ObserveBuild("nodebfs", nil, 10*time.Millisecond)
	assert.Equal(t, float64(1), counterValue(t, m.BuildsTotal.WithLabelValues("nodebfs", "ok")))

	m.ObserveBuild("nodebfs", errors.New("boom"), 5*time.Millisecond)
	assert.Equal(t, float64(1), counterValue(t, m.BuildsTotal.WithLabelValues("nodebfs", "error")))
}

func TestTwoRegistriesDoNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		telemetry.New(prometheus.NewRegistry(), "triegraph", "build")
		telemetry.New(prometheus.NewRegistry(), "triegraph", "build")
	})
}

func TestHandlerServesExpositionFormat(t *testing.T) {
	h := telemetry.Handler()
	require.NotNil(t, h)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

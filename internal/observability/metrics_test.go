package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHooksRecordOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	hooks := m.Hooks(nil)
	ctx := context.Background()

	hooks.OnEnd(ctx, "seo.audit", "req-1", 120*time.Millisecond, nil)
	hooks.OnEnd(ctx, "seo.audit", "req-2", 80*time.Millisecond, errors.New("boom"))
	hooks.OnEnd(ctx, "bi.dashboard", "req-3", 50*time.Millisecond, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.invocations.WithLabelValues("seo.audit", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.invocations.WithLabelValues("seo.audit", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.invocations.WithLabelValues("bi.dashboard", "ok")))

	count := testutil.CollectAndCount(m.duration, "hodos_action_duration_seconds")
	require.Equal(t, 2, count)
}

func TestNilTracerIsSafe(t *testing.T) {
	var tracer *Tracer
	tracer.end("seo.audit", "req-1", time.Second, nil)
	assert.NoError(t, tracer.Shutdown(context.Background()))
}

package hodos_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hodos "github.com/quez2777/hodos-360-website"
	"github.com/quez2777/hodos-360-website/pkg/action"
	"github.com/quez2777/hodos-360-website/pkg/crews"
	"github.com/quez2777/hodos-360-website/pkg/domain"
)

func newTestDemo(t *testing.T, opts ...hodos.Option) *hodos.Demo {
	t.Helper()
	demo, err := hodos.New(append([]hodos.Option{hodos.WithSleeper(action.NoSleep)}, opts...)...)
	require.NoError(t, err)
	return demo
}

func TestNewAssemblesEverything(t *testing.T) {
	demo := newTestDemo(t)

	assert.Equal(t, 15, demo.Registry().Len())
	assert.Len(t, demo.Catalog().Tabs, 6)
	assert.Len(t, demo.Actions(), 15)
}

func TestNewRejectsIncompleteCrews(t *testing.T) {
	set := crews.Default()
	delete(set, crews.Compliance)

	_, err := hodos.New(hodos.WithCrews(set))
	require.Error(t, err)
	assert.Contains(t, err.Error(), crews.Compliance)
}

func TestInvokeKeywordResearch(t *testing.T) {
	demo := newTestDemo(t)

	result, err := demo.Invoke(context.Background(), domain.Request{
		Action: "seo.keywords",
		Params: map[string]any{
			"practice_area": "Personal Injury",
			"location":      "New York, NY",
		},
	}, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Len(t, result[0].Table.Rows, 5)
	assert.Contains(t, result[0].Table.Rows[0][0], "personal injury")
}

func TestInvokeUnknownAction(t *testing.T) {
	demo := newTestDemo(t)

	_, err := demo.Invoke(context.Background(), domain.Request{Action: "nope"}, nil)
	assert.ErrorIs(t, err, domain.ErrActionNotFound)
}

func TestTimeoutCancelsSlowHandler(t *testing.T) {
	demo, err := hodos.New(hodos.WithTimeout(10 * time.Millisecond))
	require.NoError(t, err)

	start := time.Now()
	result, err := demo.Invoke(context.Background(), domain.Request{
		Action: "bi.dashboard",
		Params: map[string]any{"time_period": "Last 30 Days"},
	}, nil)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 500*time.Millisecond)

	// The dashboard has no text output, so the error lands in nothing
	// visible; the shape still matches the registered outputs.
	require.Len(t, result, 4)
	for _, out := range result {
		assert.Equal(t, domain.KindFigure, out.Kind)
		assert.Nil(t, out.Figure)
	}
}

func TestClockFlowsIntoDatedOutput(t *testing.T) {
	fixed := time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC)
	demo := newTestDemo(t, hodos.WithClock(func() time.Time { return fixed }))

	result, err := demo.Invoke(context.Background(), domain.Request{
		Action: "legal.research",
		Params: map[string]any{
			"research_query":        "statute of limitations",
			"research_jurisdiction": "California",
			"research_depth":        "Quick Answer",
			"include_citations":     true,
		},
	}, nil)
	require.NoError(t, err)
	assert.True(t, strings.Contains(result[0].Text, "July 4, 2024"))
}

func TestHooksObserveInvocations(t *testing.T) {
	var started, ended []string
	demo := newTestDemo(t, hodos.WithHooks(action.Hooks{
		OnStart: func(_ context.Context, name, _ string) { started = append(started, name) },
		OnEnd: func(_ context.Context, name, _ string, _ time.Duration, _ error) {
			ended = append(ended, name)
		},
	}))

	_, err := demo.Invoke(context.Background(), domain.Request{
		Action: "leads.intake",
		Params: map[string]any{"client_name": "Jane", "case_type": "Family Law", "urgency": "High"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"leads.intake"}, started)
	assert.Equal(t, []string{"leads.intake"}, ended)
}

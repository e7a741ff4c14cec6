package action_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quez2777/hodos-360-website/pkg/action"
	"github.com/quez2777/hodos-360-website/pkg/domain"
)

func nopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func textJSONSpec(name string) action.Spec {
	return action.Spec{
		Name:  name,
		Title: "Test Action",
		Group: "Testing",
		Outputs: []domain.OutputField{
			{Name: "report", Kind: domain.KindText},
			{Name: "details", Kind: domain.KindJSON},
		},
	}
}

func newRunner(t *testing.T, a action.Action, opts ...action.RunnerOption) *action.Runner {
	t.Helper()
	reg := action.NewRegistry()
	require.NoError(t, reg.Register(a))
	opts = append(opts, action.WithLogger(nopLogger()))
	return action.NewRunner(reg, opts...)
}

func TestRegistryRejectsDuplicate(t *testing.T) {
	reg := action.NewRegistry()
	a := action.Func{S: textJSONSpec("demo.echo"), Fn: nil}
	require.NoError(t, reg.Register(a))
	err := reg.Register(a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registered twice")
}

func TestRegistryRejectsSpecWithoutOutputs(t *testing.T) {
	reg := action.NewRegistry()
	err := reg.Register(action.Func{S: action.Spec{Name: "demo.bad", Group: "Testing"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declares no outputs")
}

func TestRunnerConvertsHandlerErrorToResult(t *testing.T) {
	a := action.Func{
		S: textJSONSpec("demo.fails"),
		Fn: func(context.Context, map[string]any, action.ProgressSink) (domain.Result, error) {
			return nil, fmt.Errorf("upstream unavailable")
		},
	}
	r := newRunner(t, a)

	result, err := r.Invoke(context.Background(), domain.Request{Action: "demo.fails"}, nil)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Error: upstream unavailable", result[0].Text)
	assert.Empty(t, result[1].JSON)
}

func TestRunnerReturnsBadRequestToCaller(t *testing.T) {
	a := action.Func{
		S: textJSONSpec("demo.picky"),
		Fn: func(context.Context, map[string]any, action.ProgressSink) (domain.Result, error) {
			return nil, action.BadRequestf("unknown platform %q", "MySpace")
		},
	}
	r := newRunner(t, a)

	result, err := r.Invoke(context.Background(), domain.Request{Action: "demo.picky"}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidParams)
	assert.Nil(t, result)
}

func TestRunnerUnknownAction(t *testing.T) {
	r := action.NewRunner(action.NewRegistry(), action.WithLogger(nopLogger()))
	_, err := r.Invoke(context.Background(), domain.Request{Action: "demo.missing"}, nil)
	assert.ErrorIs(t, err, domain.ErrActionNotFound)
}

func TestRunnerCatchesShapeDrift(t *testing.T) {
	a := action.Func{
		S: textJSONSpec("demo.drifts"),
		Fn: func(context.Context, map[string]any, action.ProgressSink) (domain.Result, error) {
			return domain.Result{domain.Text("only one output")}, nil
		},
	}
	r := newRunner(t, a)

	result, err := r.Invoke(context.Background(), domain.Request{Action: "demo.drifts"}, nil)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Contains(t, result[0].Text, "Error:")
	assert.Contains(t, result[0].Text, "shape")
}

func TestRunnerEnforcesTimeout(t *testing.T) {
	a := action.Func{
		S: textJSONSpec("demo.slow"),
		Fn: func(ctx context.Context, _ map[string]any, _ action.ProgressSink) (domain.Result, error) {
			if err := action.Sleep(ctx, time.Minute); err != nil {
				return nil, err
			}
			return domain.Result{domain.Text("done"), domain.JSON(nil)}, nil
		},
	}
	r := newRunner(t, a, action.WithTimeout(10*time.Millisecond))

	start := time.Now()
	result, err := r.Invoke(context.Background(), domain.Request{Action: "demo.slow"}, nil)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.Contains(t, result[0].Text, "Error:")
}

func TestRunnerHooksCarryRequestID(t *testing.T) {
	a := action.Func{
		S: textJSONSpec("demo.observed"),
		Fn: func(context.Context, map[string]any, action.ProgressSink) (domain.Result, error) {
			return domain.Result{domain.Text("ok"), domain.JSON(nil)}, nil
		},
	}
	var started, ended string
	hooks := action.Hooks{
		OnStart: func(_ context.Context, _, requestID string) { started = requestID },
		OnEnd:   func(_ context.Context, _, requestID string, _ time.Duration, _ error) { ended = requestID },
	}
	r := newRunner(t, a, action.WithHooks(hooks))

	ctx := action.WithRequestID(context.Background(), "req-42")
	_, err := r.Invoke(ctx, domain.Request{Action: "demo.observed"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "req-42", started)
	assert.Equal(t, "req-42", ended)
}

func TestDecodeParamsIsWeaklyTyped(t *testing.T) {
	var in struct {
		Count     int      `param:"count"`
		Budget    float64  `param:"budget"`
		Citations bool     `param:"include_citations"`
		Platforms []string `param:"platforms"`
	}
	params := map[string]any{
		"count":             "7",
		"budget":            float64(5000),
		"include_citations": "true",
		"platforms":         []any{"LinkedIn", "Facebook"},
	}
	require.NoError(t, action.DecodeParams(params, &in))
	assert.Equal(t, 7, in.Count)
	assert.Equal(t, 5000.0, in.Budget)
	assert.True(t, in.Citations)
	assert.Equal(t, []string{"LinkedIn", "Facebook"}, in.Platforms)
}

func TestDecodeParamsRejectsGarbage(t *testing.T) {
	var in struct {
		Count int `param:"count"`
	}
	err := action.DecodeParams(map[string]any{"count": "not a number"}, &in)
	assert.ErrorIs(t, err, domain.ErrInvalidParams)
}

func TestTranscriptSinkAccumulates(t *testing.T) {
	chanSink := action.NewChanSink()
	sink := action.NewTranscriptSink(chanSink)
	ctx := context.Background()

	sink.Progress(ctx, "step one")
	sink.Progress(ctx, "step two")

	assert.Equal(t, "step one", <-chanSink.C)
	assert.Equal(t, "step one\nstep two", <-chanSink.C)
	assert.Equal(t, []string{"step one", "step two"}, sink.Lines())
	assert.Equal(t, "step one\nstep two", sink.Transcript())
}

func TestErrorFallsBackToJSONOutput(t *testing.T) {
	a := action.Func{
		S: action.Spec{
			Name:  "demo.jsononly",
			Group: "Testing",
			Outputs: []domain.OutputField{
				{Name: "details", Kind: domain.KindJSON},
			},
		},
		Fn: func(context.Context, map[string]any, action.ProgressSink) (domain.Result, error) {
			return nil, errors.New("boom")
		},
	}
	r := newRunner(t, a)

	result, err := r.Invoke(context.Background(), domain.Request{Action: "demo.jsononly"}, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "boom", result[0].JSON["error"])
}

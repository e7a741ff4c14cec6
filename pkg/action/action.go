// Package action defines the contract between the interface composer and
// the handler layer: action specifications, the registry they live in, and
// the runner that invokes them under a single timeout and error policy.
package action

import (
	"context"
	"fmt"
	"time"

	"github.com/quez2777/hodos-360-website/pkg/domain"
)

// Spec declares an action's identity and its wire shape. Input and output
// fields are ordered; the composer cross-checks its control wiring against
// them at startup.
type Spec struct {
	Name        string               `json:"name"`
	Title       string               `json:"title"`
	Group       string               `json:"group"`
	Description string               `json:"description,omitempty"`
	Inputs      []domain.InputField  `json:"inputs"`
	Outputs     []domain.OutputField `json:"outputs"`
	// Streaming marks actions that emit progress events before the final
	// result (the audit-progress pattern).
	Streaming bool `json:"streaming,omitempty"`
}

// Validate checks the spec for configuration errors. Called by the registry
// at registration time so a bad declaration fails at startup, not at call
// time.
func (s Spec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("action has no name")
	}
	if s.Group == "" {
		return fmt.Errorf("action %q has no group", s.Name)
	}
	if len(s.Outputs) == 0 {
		return fmt.Errorf("action %q declares no outputs", s.Name)
	}
	for _, in := range s.Inputs {
		if err := in.Validate(); err != nil {
			return fmt.Errorf("action %q: %w", s.Name, err)
		}
	}
	for _, out := range s.Outputs {
		if err := out.Validate(); err != nil {
			return fmt.Errorf("action %q: %w", s.Name, err)
		}
	}
	return nil
}

// Action couples a spec with its handler. Handlers are pure functions of
// their declared inputs (plus simulated latency): they touch no shared
// mutable state, so concurrent invocations are fully independent.
type Action interface {
	Spec() Spec
	Invoke(ctx context.Context, params map[string]any, sink ProgressSink) (domain.Result, error)
}

// Func adapts a spec and a function into an Action.
type Func struct {
	S  Spec
	Fn func(ctx context.Context, params map[string]any, sink ProgressSink) (domain.Result, error)
}

func (f Func) Spec() Spec { return f.S }

func (f Func) Invoke(ctx context.Context, params map[string]any, sink ProgressSink) (domain.Result, error) {
	return f.Fn(ctx, params, sink)
}

// Sleeper simulates I/O-bound latency. The default implementation honors
// context cancellation at every suspend point; tests inject a no-op.
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the default Sleeper.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// NoSleep returns immediately unless the context is already cancelled.
func NoSleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// Event is one observable moment of an action invocation, delivered to
// lifecycle hooks and, for streaming invocations, to the caller's sink.
type Event struct {
	Timestamp time.Time     `json:"timestamp"`
	Action    string        `json:"action"`
	RequestID string        `json:"request_id,omitempty"`
	Progress  string        `json:"progress,omitempty"`
	Result    domain.Result `json:"result,omitempty"`
	Err       string        `json:"error,omitempty"`
}

// Hooks defines observability callbacks around handler invocations,
// following the lifecycle-hooks shape used across the codebase. Nil
// callbacks are skipped.
type Hooks struct {
	OnStart func(ctx context.Context, action, requestID string)
	OnEnd   func(ctx context.Context, action, requestID string, d time.Duration, err error)
}

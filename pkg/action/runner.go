package action

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/quez2777/hodos-360-website/pkg/domain"
)

// DefaultTimeout bounds a single handler invocation. The simulated crews
// never take more than a few seconds; a real crew call could hang, so the
// runner always enforces a deadline.
const DefaultTimeout = 30 * time.Second

// Runner invokes registered actions under one uniform policy:
//
//   - a per-invocation timeout (handlers suspend only at their simulated
//     delay points, which honor cancellation);
//   - catch-and-report failure semantics: any handler error is converted
//     into the registered output arity with the first text output replaced
//     by "Error: <message>" and every other output left at its empty
//     default;
//   - a post-invocation shape check: arity or kind drift between the result
//     and the registered outputs is an internal error, not a display value.
type Runner struct {
	registry *Registry
	timeout  time.Duration
	hooks    Hooks
	logger   *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithTimeout overrides the per-invocation deadline.
func WithTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithHooks registers observability callbacks.
func WithHooks(h Hooks) RunnerOption {
	return func(r *Runner) { r.hooks = h }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner creates a runner over the given registry.
func NewRunner(registry *Registry, opts ...RunnerOption) *Runner {
	r := &Runner{
		registry: registry,
		timeout:  DefaultTimeout,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Invoke runs the named action with the given parameters. The returned
// Result always matches the registered output shape; err is non-nil only
// for request-level failures (unknown action, undecodable parameters),
// never for handler failures, which the uniform policy converts into a
// display-safe error result.
func (r *Runner) Invoke(ctx context.Context, req domain.Request, sink ProgressSink) (domain.Result, error) {
	a, err := r.registry.Get(req.Action)
	if err != nil {
		return nil, err
	}
	spec := a.Spec()
	requestID := requestIDFrom(ctx)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if r.hooks.OnStart != nil {
		r.hooks.OnStart(ctx, spec.Name, requestID)
	}
	start := time.Now()

	if sink == nil {
		sink = DiscardSink{}
	}
	result, err := a.Invoke(ctx, req.Params, sink)
	elapsed := time.Since(start)

	if r.hooks.OnEnd != nil {
		r.hooks.OnEnd(ctx, spec.Name, requestID, elapsed, err)
	}

	if err != nil {
		// Parameter problems are the caller's to fix; everything else is
		// reported in-band per the uniform failure policy.
		if isBadRequest(err) {
			return nil, err
		}
		r.logger.Error("action failed", "action", spec.Name, "request_id", requestID, "err", err)
		return errorResult(spec, err), nil
	}

	if err := checkShape(spec, result); err != nil {
		r.logger.Error("action result shape mismatch", "action", spec.Name, "request_id", requestID, "err", err)
		return errorResult(spec, err), nil
	}

	r.logger.Info("action completed", "action", spec.Name, "request_id", requestID, "duration", elapsed)
	return result, nil
}

// errorResult builds the display-safe error tuple: "Error: <msg>" in the
// first text output, empty defaults elsewhere.
func errorResult(spec Spec, err error) domain.Result {
	result := make(domain.Result, len(spec.Outputs))
	reported := false
	for i, out := range spec.Outputs {
		if out.Kind == domain.KindText && !reported {
			result[i] = domain.Text(fmt.Sprintf("Error: %v", err))
			reported = true
			continue
		}
		result[i] = domain.Zero(out.Kind)
	}
	if !reported && len(result) > 0 {
		// No text output to carry the message; surface it in the first
		// structured output instead so it is never silently dropped.
		if spec.Outputs[0].Kind == domain.KindJSON {
			result[0] = domain.JSON(map[string]any{"error": err.Error()})
		}
	}
	return result
}

// checkShape verifies the result arity and per-position kinds.
func checkShape(spec Spec, result domain.Result) error {
	if len(result) != len(spec.Outputs) {
		return fmt.Errorf("%w: got %d outputs, registered %d", domain.ErrShapeMismatch, len(result), len(spec.Outputs))
	}
	for i, out := range spec.Outputs {
		if !result[i].Matches(out.Kind) {
			return fmt.Errorf("%w: output %q is %s, registered %s",
				domain.ErrShapeMismatch, out.Name, result[i].Kind, out.Kind)
		}
	}
	return nil
}

func isBadRequest(err error) bool {
	return errors.Is(err, domain.ErrInvalidParams)
}

type ctxKey int

const requestIDKey ctxKey = 0

// WithRequestID attaches a correlation ID to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// requestIDFrom returns the attached correlation ID, minting one if absent.
func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

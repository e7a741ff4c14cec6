package hodos

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/quez2777/hodos-360-website/internal/compose"
	"github.com/quez2777/hodos-360-website/internal/handlers"
	"github.com/quez2777/hodos-360-website/internal/templates"
	"github.com/quez2777/hodos-360-website/pkg/action"
	"github.com/quez2777/hodos-360-website/pkg/crews"
	"github.com/quez2777/hodos-360-website/pkg/domain"
)

// Demo is the assembled engine: crews, action registry, runner, and the
// composed page catalog. It is immutable after New and safe for concurrent
// use.
type Demo struct {
	crews       crews.Set
	sleeper     action.Sleeper
	hooks       action.Hooks
	timeout     time.Duration
	clock       func() time.Time
	logger      *slog.Logger
	templateDir string

	registry *action.Registry
	runner   *action.Runner
	catalog  *compose.Catalog
}

// Option configures the Demo engine.
type Option func(*Demo)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Demo) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithCrews injects the crew set. Tests substitute fakes.
func WithCrews(set crews.Set) Option {
	return func(d *Demo) { d.crews = set }
}

// WithSleeper overrides the simulated latency. Tests inject action.NoSleep.
func WithSleeper(s action.Sleeper) Option {
	return func(d *Demo) { d.sleeper = s }
}

// WithHooks registers lifecycle hooks around every invocation.
func WithHooks(h action.Hooks) Option {
	return func(d *Demo) { d.hooks = h }
}

// WithTimeout overrides the per-invocation deadline.
func WithTimeout(t time.Duration) Option {
	return func(d *Demo) { d.timeout = t }
}

// WithClock overrides the time source used by date-stamped handler output.
func WithClock(now func() time.Time) Option {
	return func(d *Demo) {
		if now != nil {
			d.clock = now
		}
	}
}

// WithTemplateDir loads communication and contract templates from a content
// directory instead of the compiled-in defaults.
func WithTemplateDir(dir string) Option {
	return func(d *Demo) { d.templateDir = dir }
}

// New assembles the engine and validates its configuration: all fourteen
// crews present, every action spec well formed, every communication template
// resolvable, and the page wiring consistent with the registry.
func New(opts ...Option) (*Demo, error) {
	d := &Demo{
		crews:   crews.Default(),
		timeout: action.DefaultTimeout,
		clock:   time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}

	if err := d.crews.Validate(); err != nil {
		return nil, err
	}

	lib, err := d.loadTemplates()
	if err != nil {
		return nil, err
	}
	for _, k := range handlers.AllCommKinds {
		if name := k.TemplateName(); !lib.Has(name) {
			return nil, fmt.Errorf("communication template %q is not registered", name)
		}
	}

	d.registry = action.NewRegistry()
	deps := handlers.Deps{
		Crews:     d.crews,
		Sleep:     d.sleeper,
		Templates: lib,
		Now:       d.clock,
	}
	for _, a := range handlers.All(deps) {
		if err := d.registry.Register(a); err != nil {
			return nil, err
		}
	}

	d.catalog, err = compose.Build(d.registry)
	if err != nil {
		return nil, err
	}

	d.runner = action.NewRunner(d.registry,
		action.WithTimeout(d.timeout),
		action.WithHooks(d.hooks),
		action.WithLogger(d.logger),
	)
	return d, nil
}

func (d *Demo) loadTemplates() (*templates.Library, error) {
	if d.templateDir != "" {
		return templates.LoadDir(d.templateDir)
	}
	return templates.NewDefault()
}

// Registry exposes the action registry.
func (d *Demo) Registry() *action.Registry { return d.registry }

// Catalog exposes the composed page description.
func (d *Demo) Catalog() *compose.Catalog { return d.catalog }

// Actions returns the registered action specs sorted by name.
func (d *Demo) Actions() []action.Spec { return d.registry.List() }

// Invoke runs one action under the uniform timeout and error policy. A nil
// sink discards progress.
func (d *Demo) Invoke(ctx context.Context, req domain.Request, sink action.ProgressSink) (domain.Result, error) {
	return d.runner.Invoke(ctx, req, sink)
}

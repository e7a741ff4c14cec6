package compose

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quez2777/hodos-360-website/internal/handlers"
	"github.com/quez2777/hodos-360-website/internal/templates"
	"github.com/quez2777/hodos-360-website/pkg/action"
	"github.com/quez2777/hodos-360-website/pkg/crews"
	"github.com/quez2777/hodos-360-website/pkg/domain"
)

func fullRegistry(t *testing.T) *action.Registry {
	t.Helper()
	lib, err := templates.NewDefault()
	require.NoError(t, err)
	reg := action.NewRegistry()
	deps := handlers.Deps{Crews: crews.Default(), Sleep: action.NoSleep, Templates: lib}
	for _, a := range handlers.All(deps) {
		require.NoError(t, reg.Register(a))
	}
	return reg
}

func TestBuildWiresEveryAction(t *testing.T) {
	reg := fullRegistry(t)
	catalog, err := Build(reg)
	require.NoError(t, err)

	require.Len(t, catalog.Tabs, 6)
	assert.Len(t, catalog.Actions(), reg.Len())

	for _, tab := range catalog.Tabs {
		for _, s := range tab.Sections {
			a, err := reg.Get(s.Action)
			require.NoError(t, err)
			spec := a.Spec()
			assert.Equal(t, spec.Title, s.Title)
			assert.Equal(t, spec.Streaming, s.Streaming)
			assert.Len(t, s.Inputs, len(spec.Inputs))
			assert.Len(t, s.Outputs, len(spec.Outputs))
		}
	}
}

func TestBuildControlIDsAreUnique(t *testing.T) {
	catalog, err := Build(fullRegistry(t))
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, tab := range catalog.Tabs {
		for _, s := range tab.Sections {
			for _, c := range s.Inputs {
				assert.False(t, seen[c.ID], "duplicate control %q", c.ID)
				seen[c.ID] = true
			}
			for _, c := range s.Outputs {
				assert.False(t, seen[c.ID], "duplicate control %q", c.ID)
				seen[c.ID] = true
			}
		}
	}
}

func TestBuildRejectsMissingAction(t *testing.T) {
	lib, err := templates.NewDefault()
	require.NoError(t, err)
	reg := action.NewRegistry()
	deps := handlers.Deps{Crews: crews.Default(), Sleep: action.NoSleep, Templates: lib}
	for _, a := range handlers.All(deps) {
		if a.Spec().Name == "seo.keywords" {
			continue
		}
		require.NoError(t, reg.Register(a))
	}

	_, err = Build(reg)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrActionNotFound)
}

func TestBuildRejectsUnwiredAction(t *testing.T) {
	reg := fullRegistry(t)
	extra := action.Func{
		S: action.Spec{
			Name:        "seo.extra",
			Title:       "Extra",
			Group:       "SEO & Marketing",
			Description: "not on the page",
			Outputs:     []domain.OutputField{domain.TextOut("out", "Out")},
		},
		Fn: func(context.Context, map[string]any, action.ProgressSink) (domain.Result, error) {
			return domain.Result{domain.Text("")}, nil
		},
	}
	require.NoError(t, reg.Register(extra))

	_, err := Build(reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not wired")
}

package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quez2777/hodos-360-website/internal/templates"
	"github.com/quez2777/hodos-360-website/pkg/action"
	"github.com/quez2777/hodos-360-website/pkg/crews"
	"github.com/quez2777/hodos-360-website/pkg/domain"
)

func nopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDeps(t *testing.T) Deps {
	t.Helper()
	lib, err := templates.NewDefault()
	require.NoError(t, err)
	return Deps{
		Crews:     crews.Default(),
		Sleep:     action.NoSleep,
		Templates: lib,
		Now:       func() time.Time { return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC) },
	}
}

func findAction(t *testing.T, name string) action.Action {
	t.Helper()
	for _, a := range All(testDeps(t)) {
		if a.Spec().Name == name {
			return a
		}
	}
	t.Fatalf("action %q not found", name)
	return nil
}

// defaultParams derives an invocation payload from the declared inputs, the
// way the page pre-fills its controls.
func defaultParams(spec action.Spec) map[string]any {
	params := make(map[string]any, len(spec.Inputs))
	for _, in := range spec.Inputs {
		switch in.Widget {
		case domain.WidgetTextbox, domain.WidgetTextarea:
			params[in.Name] = in.Placeholder
		case domain.WidgetDropdown:
			params[in.Name] = in.Choices[0]
		case domain.WidgetRadio, domain.WidgetCheckbox, domain.WidgetSlider:
			params[in.Name] = in.Default
		case domain.WidgetCheckboxGroup:
			if in.Default != nil {
				params[in.Name] = in.Default
			} else {
				params[in.Name] = in.Choices[:1]
			}
		case domain.WidgetFile:
			params[in.Name] = "document.pdf"
		case domain.WidgetDateRange:
			params[in.Name] = []string{"2024-01-01", "2024-03-15"}
		}
	}
	return params
}

func TestAllActionsValidAndDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range All(testDeps(t)) {
		spec := a.Spec()
		require.NoError(t, spec.Validate(), "spec %s", spec.Name)
		assert.False(t, seen[spec.Name], "duplicate action %s", spec.Name)
		seen[spec.Name] = true
	}
	assert.Len(t, seen, 15)
}

func TestAllActionsMatchRegisteredShape(t *testing.T) {
	for _, a := range All(testDeps(t)) {
		spec := a.Spec()
		t.Run(spec.Name, func(t *testing.T) {
			result, err := a.Invoke(context.Background(), defaultParams(spec), action.DiscardSink{})
			require.NoError(t, err)
			require.Len(t, result, len(spec.Outputs))
			for i, out := range spec.Outputs {
				assert.True(t, result[i].Matches(out.Kind),
					"output %q: got %s, registered %s", out.Name, result[i].Kind, out.Kind)
			}
		})
	}
}

func TestSEOAuditTranscriptGrows(t *testing.T) {
	a := findAction(t, "seo.audit")
	sink := action.NewChanSink()

	result, err := a.Invoke(context.Background(), map[string]any{
		"website_url": "https://www.lawfirm.com",
		"audit_type":  "Quick Audit",
	}, sink)
	require.NoError(t, err)
	sink.Close()

	var updates []string
	for u := range sink.C {
		updates = append(updates, u)
	}
	require.NotEmpty(t, updates)
	for i := 1; i < len(updates); i++ {
		assert.True(t, strings.HasPrefix(updates[i], updates[i-1]),
			"update %d does not extend update %d", i, i-1)
		assert.Greater(t, len(updates[i]), len(updates[i-1]))
	}
	last := updates[len(updates)-1]
	assert.True(t, strings.HasSuffix(last, "✅ Audit complete!"))
	assert.Equal(t, last, result[0].Text)
}

func TestSEOAuditInvalidURLBecomesErrorTuple(t *testing.T) {
	reg := action.NewRegistry()
	for _, a := range All(testDeps(t)) {
		require.NoError(t, reg.Register(a))
	}
	runner := action.NewRunner(reg, action.WithLogger(nopLogger()))

	result, err := runner.Invoke(context.Background(), domain.Request{
		Action: "seo.audit",
		Params: map[string]any{"website_url": "https://[bad", "audit_type": "Quick Audit"},
	}, nil)
	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.True(t, strings.HasPrefix(result[0].Text, "Error:"))
	assert.Empty(t, result[1].JSON)
	assert.Nil(t, result[2].Figure)
}

func TestSocialPostsKeySetMatchesPlatforms(t *testing.T) {
	a := findAction(t, "content.social")
	platforms := []string{"LinkedIn", "Twitter/X"}

	result, err := a.Invoke(context.Background(), map[string]any{
		"social_topic":     "New blog post about estate planning",
		"platforms":        platforms,
		"post_tone":        "Professional",
		"include_hashtags": false,
	}, action.DiscardSink{})
	require.NoError(t, err)

	posts := result[0].JSON
	require.Len(t, posts, len(platforms))
	for _, p := range platforms {
		entry, ok := posts[p].(map[string]any)
		require.True(t, ok, "missing platform %q", p)
		assert.Empty(t, entry["hashtags"])
	}
}

func TestSocialPostsRejectsUnknownPlatform(t *testing.T) {
	a := findAction(t, "content.social")
	_, err := a.Invoke(context.Background(), map[string]any{
		"social_topic": "topic",
		"platforms":    []string{"MySpace"},
	}, action.DiscardSink{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidParams))
}

func TestClientCommunicationRejectsUnknownType(t *testing.T) {
	a := findAction(t, "leads.communication")
	_, err := a.Invoke(context.Background(), map[string]any{
		"comm_type":      "Carrier Pigeon",
		"recipient_info": "John Doe, Car Accident Case",
	}, action.DiscardSink{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidParams))
}

func TestCommKindTemplatesRegistered(t *testing.T) {
	lib, err := templates.NewDefault()
	require.NoError(t, err)
	for _, k := range AllCommKinds {
		name := k.TemplateName()
		require.NotEmpty(t, name, "kind %s", k)
		assert.True(t, lib.Has(name), "template %q for kind %s", name, k)
	}
}

func TestClientCommunicationInterpolatesRecipient(t *testing.T) {
	a := findAction(t, "leads.communication")
	result, err := a.Invoke(context.Background(), map[string]any{
		"comm_type":       string(CommWelcomeEmail),
		"recipient_info":  "Jane Smith, Slip and Fall Case",
		"personalization": []string{"Include case details"},
	}, action.DiscardSink{})
	require.NoError(t, err)
	assert.Contains(t, result[0].Text, "Jane Smith")
	assert.Contains(t, result[0].Text, "Slip and Fall Case")
}

func TestContractContainsPartiesAndJurisdiction(t *testing.T) {
	a := findAction(t, "legal.contract")
	result, err := a.Invoke(context.Background(), map[string]any{
		"contract_type": "Retainer Agreement",
		"party1_name":   "Acme Legal LLP",
		"party2_name":   "Jordan Rivera",
		"jurisdiction":  "Nevada",
		"special_terms": "Fees capped at $10,000",
	}, action.DiscardSink{})
	require.NoError(t, err)

	contract := result[0].Text
	assert.Contains(t, contract, "RETAINER AGREEMENT")
	assert.Contains(t, contract, "Acme Legal LLP")
	assert.Contains(t, contract, "Jordan Rivera")
	assert.Contains(t, contract, "Nevada")
	assert.Contains(t, contract, "Fees capped at $10,000")
}

func TestLegalResearchCitationsToggle(t *testing.T) {
	a := findAction(t, "legal.research")
	params := defaultParams(a.Spec())

	params["include_citations"] = true
	result, err := a.Invoke(context.Background(), params, action.DiscardSink{})
	require.NoError(t, err)
	assert.NotEmpty(t, result[1].Table.Rows)

	params["include_citations"] = false
	result, err = a.Invoke(context.Background(), params, action.DiscardSink{})
	require.NoError(t, err)
	assert.Empty(t, result[1].Table.Rows)
}

func TestKeywordResearchInterpolatesInputs(t *testing.T) {
	a := findAction(t, "seo.keywords")
	result, err := a.Invoke(context.Background(), map[string]any{
		"practice_area": "Family Law",
		"location":      "Austin, TX",
	}, action.DiscardSink{})
	require.NoError(t, err)

	table := result[0].Table
	require.Len(t, table.Rows, 5)
	assert.Contains(t, table.Rows[0][0], "family law")
	assert.Contains(t, table.Rows[0][0], "Austin, TX")
}

func TestLeadGeneratorRespectsCount(t *testing.T) {
	a := findAction(t, "leads.generate")
	result, err := a.Invoke(context.Background(), map[string]any{
		"lead_criteria": []string{"Recent accidents", "Estate planning needs"},
		"lead_location": "Los Angeles, CA",
		"lead_count":    10,
		"lead_quality":  "High Value",
	}, action.DiscardSink{})
	require.NoError(t, err)

	assert.Len(t, result[0].Table.Rows, 10)
	require.Len(t, result[1].Figure.Traces, 1)
	assert.Len(t, result[1].Figure.Traces[0].X, 10)
}

func TestPredictionsHonorHorizon(t *testing.T) {
	a := findAction(t, "bi.predictions")
	const horizon = 6
	result, err := a.Invoke(context.Background(), map[string]any{
		"prediction_type":      "Revenue Forecast",
		"prediction_horizon":   horizon,
		"confidence_threshold": 0.8,
	}, action.DiscardSink{})
	require.NoError(t, err)

	fig := result[1].Figure
	require.Len(t, fig.Traces, 3)
	assert.Len(t, fig.Traces[1].Y, horizon)
	assert.Len(t, fig.Traces[2].Y, 2*horizon)
	assert.Equal(t, horizon, result[0].JSON["horizon_months"])
}

func TestCampaignBudgetAllocation(t *testing.T) {
	a := findAction(t, "campaign.orchestrate")
	const budget = 10000.0
	selected := []string{"SEO Optimization", "Video Production"}

	result, err := a.Invoke(context.Background(), map[string]any{
		"campaign_name":     "Q1 Growth Initiative",
		"campaign_goal":     "Generate More Leads",
		"campaign_services": selected,
		"campaign_duration": "1 Month",
		"campaign_budget":   budget,
	}, action.DiscardSink{})
	require.NoError(t, err)

	allocation, ok := result[1].JSON["budget_allocation"].(map[string]float64)
	require.True(t, ok)
	require.Len(t, allocation, len(campaignServices))

	var total float64
	chosen := map[string]bool{}
	for _, s := range selected {
		chosen[s] = true
	}
	for name, amount := range allocation {
		total += amount
		if !chosen[name] {
			assert.Zero(t, amount, "unselected service %q", name)
		} else {
			assert.Positive(t, amount, "selected service %q", name)
		}
	}
	assert.LessOrEqual(t, total, budget)
}

func TestDashboardFiguresPopulated(t *testing.T) {
	a := findAction(t, "bi.dashboard")
	result, err := a.Invoke(context.Background(), map[string]any{
		"time_period": "Last 30 Days",
	}, action.DiscardSink{})
	require.NoError(t, err)

	require.Len(t, result, 4)
	for i, out := range result {
		require.NotNil(t, out.Figure, "figure %d", i)
		assert.NotEmpty(t, out.Figure.Traces, "figure %d", i)
	}
	assert.Len(t, result[0].Figure.Traces[0].Y, 30)
}

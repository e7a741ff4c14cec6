// Package handlers implements the stub handler layer: one action per
// user-facing operation, each simulating crew latency and returning fixed
// or lightly-interpolated content plus optional chart descriptors. Handlers
// are stateless; concurrent invocations are fully independent.
package handlers

import (
	"context"
	"time"

	"github.com/quez2777/hodos-360-website/internal/templates"
	"github.com/quez2777/hodos-360-website/pkg/action"
	"github.com/quez2777/hodos-360-website/pkg/crews"
)

// Tab group names, matching the composer's tab declarations.
const (
	GroupSEO      = "SEO & Marketing"
	GroupContent  = "Content & Social"
	GroupLeads    = "Leads & Clients"
	GroupLegal    = "Legal & Contracts"
	GroupBI       = "Business Intelligence"
	GroupCampaign = "Orchestrated Campaigns"
)

// Brand palette used by the chart descriptors.
const (
	colorPrimary = "#10439F"
	colorViolet  = "#874CCC"
	colorGold    = "#FFB700"
	colorGreen   = "#4ade80"
)

// Deps carries everything a handler may need. Crews are injected but, per
// the demo contract, never invoked: the stubs stand in for their output.
type Deps struct {
	Crews     crews.Set
	Sleep     action.Sleeper
	Templates *templates.Library
	Now       func() time.Time
}

func (d Deps) sleep(ctx context.Context, dur time.Duration) error {
	if d.Sleep == nil {
		return action.Sleep(ctx, dur)
	}
	return d.Sleep(ctx, dur)
}

func (d Deps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// All returns every action of the demo, ready for registration.
func All(deps Deps) []action.Action {
	return []action.Action{
		deps.seoAudit(),
		deps.keywordResearch(),
		deps.blogGenerator(),
		deps.socialPosts(),
		deps.videoScript(),
		deps.leadGenerator(),
		deps.clientIntake(),
		deps.clientCommunication(),
		deps.contractGenerator(),
		deps.contractReview(),
		deps.legalResearch(),
		deps.dashboard(),
		deps.financialAnalysis(),
		deps.predictions(),
		deps.orchestratedCampaign(),
	}
}

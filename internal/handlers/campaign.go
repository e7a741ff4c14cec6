package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/quez2777/hodos-360-website/pkg/action"
	"github.com/quez2777/hodos-360-website/pkg/charts"
	"github.com/quez2777/hodos-360-website/pkg/domain"
)

// campaignServices maps each orchestratable service to its share of the
// campaign budget. Shares sum to 1.0; unselected services allocate zero.
var campaignServices = []struct {
	Name  string
	Share float64
}{
	{"SEO Optimization", 0.25},
	{"Content Creation", 0.20},
	{"Social Media", 0.15},
	{"Email Marketing", 0.10},
	{"Video Production", 0.20},
	{"Lead Generation", 0.10},
}

type campaignInput struct {
	Name     string   `param:"campaign_name"`
	Goal     string   `param:"campaign_goal"`
	Services []string `param:"campaign_services"`
	Duration string   `param:"campaign_duration"`
	Budget   float64  `param:"campaign_budget"`
}

func (d Deps) orchestratedCampaign() action.Action {
	names := make([]string, len(campaignServices))
	for i, s := range campaignServices {
		names[i] = s.Name
	}
	return action.Func{
		S: action.Spec{
			Name:        "campaign.orchestrate",
			Title:       "Launch Orchestrated Campaign",
			Group:       GroupCampaign,
			Description: "Plan a multi-service marketing campaign with budget allocation.",
			Inputs: []domain.InputField{
				domain.Textbox("campaign_name", "Campaign Name", "Q1 Growth Initiative"),
				domain.Dropdown("campaign_goal", "Primary Goal",
					"Increase Brand Awareness", "Generate More Leads", "Improve Client Retention", "Launch New Practice Area"),
				domain.CheckboxGroup("campaign_services", "Services to Orchestrate", names,
					"SEO Optimization", "Content Creation", "Social Media"),
				domain.Radio("campaign_duration", "Campaign Duration", "1 Month",
					"2 Weeks", "1 Month", "3 Months", "6 Months"),
				domain.Slider("campaign_budget", "Monthly Budget ($)", 1000, 50000, 500, 5000),
			},
			Outputs: []domain.OutputField{
				domain.TextOut("campaign_plan", "Campaign Execution Plan"),
				domain.JSONOut("campaign_details", "Campaign Details"),
				domain.FigureOut("campaign_performance", "Projected Performance"),
				domain.FigureOut("campaign_roi", "Projected ROI"),
			},
		},
		Fn: func(ctx context.Context, params map[string]any, _ action.ProgressSink) (domain.Result, error) {
			var in campaignInput
			if err := action.DecodeParams(params, &in); err != nil {
				return nil, err
			}
			if err := d.sleep(ctx, 4*time.Second); err != nil {
				return nil, err
			}

			selected := map[string]bool{}
			for _, s := range in.Services {
				selected[s] = true
			}
			allocation := map[string]float64{}
			for _, s := range campaignServices {
				if selected[s.Name] {
					allocation[s.Name] = s.Share * in.Budget
				} else {
					allocation[s.Name] = 0
				}
			}

			plan := fmt.Sprintf(`CAMPAIGN EXECUTION PLAN
======================
Campaign: %s
Goal: %s
Duration: %s
Budget: $%.0f/month
Services Activated: %d

PHASE 1: Foundation (Week 1)
- Baseline analytics and tracking setup
- Audience research and segmentation
- Creative brief distribution to all teams

PHASE 2: Launch (Week 2)
- Coordinated content rollout across channels
- Paid campaigns go live
- Daily performance monitoring begins

PHASE 3: Optimization (Weeks 3-4)
- A/B testing of top-performing assets
- Budget reallocation toward winners
- Weekly stakeholder reporting

PHASE 4: Scale (Ongoing)
- Double down on proven channels
- Expand audience targeting
- Monthly strategy review
`, in.Name, in.Goal, in.Duration, in.Budget, len(in.Services))

			details := map[string]any{
				"campaign_name":     in.Name,
				"goal":              in.Goal,
				"duration":          in.Duration,
				"monthly_budget":    in.Budget,
				"budget_allocation": allocation,
				"timeline": map[string]any{
					"week_1": "Foundation and setup",
					"week_2": "Coordinated launch",
					"week_3": "Testing and optimization",
					"week_4": "Scaling and reporting",
				},
				"kpis": map[string]any{
					"primary":   "Qualified leads generated",
					"secondary": []string{"Website traffic", "Engagement rate", "Cost per lead", "Conversion rate"},
					"reporting": "Weekly dashboard updates",
				},
				"deliverables": map[string]any{
					"content":   []string{"4 blog posts", "16 social posts", "2 video scripts"},
					"email":     []string{"Nurture sequence", "Monthly newsletter"},
					"technical": []string{"SEO audit", "Landing page optimization"},
				},
			}

			metrics := []any{"Impressions", "Clicks", "Leads", "Clients"}
			perfFig := charts.New("Projected Campaign Performance")
			perfFig.BarMode = "group"
			perfFig.ShowLegend = true
			perfFig.Add(charts.Trace{
				Type: charts.TraceBar, Name: "Week 1", X: metrics,
				Y: []float64{10000, 500, 25, 5}, Colors: []string{colorPrimary},
			})
			perfFig.Add(charts.Trace{
				Type: charts.TraceBar, Name: "Week 2", X: metrics,
				Y: []float64{15000, 800, 45, 9}, Colors: []string{colorViolet},
			})
			perfFig.Add(charts.Trace{
				Type: charts.TraceBar, Name: "Week 3", X: metrics,
				Y: []float64{20000, 1100, 65, 14}, Colors: []string{colorGold},
			})
			perfFig.Add(charts.Trace{
				Type: charts.TraceBar, Name: "Week 4", X: metrics,
				Y: []float64{25000, 1400, 85, 18}, Colors: []string{colorGreen},
			})

			roiFig := charts.New("Projected ROI (%)")
			roiFig.Height = 300
			roiFig.Add(charts.Trace{
				Type: charts.TraceIndicator,
				Gauge: &charts.Gauge{
					Value:          320,
					DeltaReference: 100,
					AxisMax:        500,
					BarColor:       colorGold,
					Steps: []charts.GaugeStep{
						{From: 0, To: 100, Color: "lightgray"},
						{From: 100, To: 250, Color: "gray"},
					},
					Threshold:      490,
					ThresholdColor: "red",
				},
			})

			return domain.Result{
				domain.Text(plan),
				domain.JSON(details),
				domain.FigureOf(perfFig),
				domain.FigureOf(roiFig),
			}, nil
		},
	}
}

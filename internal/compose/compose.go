// Package compose declares the page structure of the demo: six tabs, one
// section per operation, and the wiring between section controls and the
// actions behind them. The wiring table is maintained by hand and
// cross-checked against the registered action specs at startup, so a drifted
// field name or a forgotten action fails fast instead of rendering a broken
// page.
package compose

import (
	"fmt"

	"github.com/quez2777/hodos-360-website/pkg/action"
	"github.com/quez2777/hodos-360-website/pkg/domain"
)

type sectionDecl struct {
	Action  string
	Inputs  []string
	Outputs []string
}

type tabDecl struct {
	Name     string
	Sections []sectionDecl
}

// layout is the declared page: tab order, section order, and the ordered
// control names each wiring binds. Control names must match the action's
// registered fields position by position.
var layout = []tabDecl{
	{
		Name: "SEO & Marketing",
		Sections: []sectionDecl{
			{
				Action:  "seo.audit",
				Inputs:  []string{"website_url", "audit_type"},
				Outputs: []string{"audit_progress", "audit_results", "seo_score_plot"},
			},
			{
				Action:  "seo.keywords",
				Inputs:  []string{"practice_area", "location"},
				Outputs: []string{"keyword_results"},
			},
		},
	},
	{
		Name: "Content & Social",
		Sections: []sectionDecl{
			{
				Action:  "content.blog",
				Inputs:  []string{"blog_topic", "blog_style", "target_audience", "blog_keywords", "word_count"},
				Outputs: []string{"blog_output", "blog_metadata"},
			},
			{
				Action:  "content.social",
				Inputs:  []string{"social_topic", "platforms", "post_tone", "include_hashtags"},
				Outputs: []string{"social_posts_output"},
			},
			{
				Action:  "content.video_script",
				Inputs:  []string{"video_topic", "video_length", "video_style", "cta_message"},
				Outputs: []string{"script_output", "shot_list"},
			},
		},
	},
	{
		Name: "Leads & Clients",
		Sections: []sectionDecl{
			{
				Action:  "leads.generate",
				Inputs:  []string{"lead_criteria", "lead_location", "lead_count", "lead_quality"},
				Outputs: []string{"leads_output", "lead_score_chart"},
			},
			{
				Action:  "leads.intake",
				Inputs:  []string{"client_name", "client_email", "client_phone", "case_type", "urgency", "case_description"},
				Outputs: []string{"intake_summary", "recommended_actions"},
			},
			{
				Action:  "leads.communication",
				Inputs:  []string{"comm_type", "recipient_info", "personalization"},
				Outputs: []string{"comm_output"},
			},
		},
	},
	{
		Name: "Legal & Contracts",
		Sections: []sectionDecl{
			{
				Action:  "legal.contract",
				Inputs:  []string{"contract_type", "party1_name", "party2_name", "jurisdiction", "special_terms"},
				Outputs: []string{"contract_output", "contract_warnings"},
			},
			{
				Action:  "legal.review",
				Inputs:  []string{"contract_upload", "review_focus"},
				Outputs: []string{"review_summary", "risk_analysis", "recommendations"},
			},
			{
				Action:  "legal.research",
				Inputs:  []string{"research_query", "research_jurisdiction", "research_depth", "include_citations"},
				Outputs: []string{"research_results", "relevant_cases"},
			},
		},
	},
	{
		Name: "Business Intelligence",
		Sections: []sectionDecl{
			{
				Action:  "bi.dashboard",
				Inputs:  []string{"time_period"},
				Outputs: []string{"revenue_chart", "case_distribution", "attorney_performance", "client_acquisition"},
			},
			{
				Action:  "bi.financial",
				Inputs:  []string{"analysis_type", "date_range", "breakdown_by"},
				Outputs: []string{"financial_summary", "financial_chart", "financial_recommendations"},
			},
			{
				Action:  "bi.predictions",
				Inputs:  []string{"prediction_type", "prediction_horizon", "confidence_threshold"},
				Outputs: []string{"prediction_results", "prediction_chart", "action_items"},
			},
		},
	},
	{
		Name: "Orchestrated Campaigns",
		Sections: []sectionDecl{
			{
				Action:  "campaign.orchestrate",
				Inputs:  []string{"campaign_name", "campaign_goal", "campaign_services", "campaign_duration", "campaign_budget"},
				Outputs: []string{"campaign_plan", "campaign_details", "campaign_performance", "campaign_roi"},
			},
		},
	},
}

// InputControl is one rendered input with its page-unique ID.
type InputControl struct {
	ID string `json:"id"`
	domain.InputField
}

// OutputControl is one rendered output with its page-unique ID.
type OutputControl struct {
	ID string `json:"id"`
	domain.OutputField
}

// Section is one operation's block on a tab: a run button wired to the
// action, plus its input and output controls in declared order.
type Section struct {
	Action      string          `json:"action"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Streaming   bool            `json:"streaming"`
	Inputs      []InputControl  `json:"inputs"`
	Outputs     []OutputControl `json:"outputs"`
}

// Tab is one top-level page tab.
type Tab struct {
	Name     string    `json:"name"`
	Sections []Section `json:"sections"`
}

// Catalog is the full page description served to the front end.
type Catalog struct {
	Tabs []Tab `json:"tabs"`
}

// Build materializes the catalog from the declared layout and the registered
// action specs, failing on any disagreement between them. It is called once
// at startup.
func Build(reg *action.Registry) (*Catalog, error) {
	catalog := &Catalog{Tabs: make([]Tab, 0, len(layout))}
	wired := make(map[string]bool)

	for _, td := range layout {
		tab := Tab{Name: td.Name, Sections: make([]Section, 0, len(td.Sections))}
		for _, sd := range td.Sections {
			section, err := buildSection(reg, td.Name, sd)
			if err != nil {
				return nil, err
			}
			if wired[sd.Action] {
				return nil, fmt.Errorf("compose: action %q wired twice", sd.Action)
			}
			wired[sd.Action] = true
			tab.Sections = append(tab.Sections, section)
		}
		catalog.Tabs = append(catalog.Tabs, tab)
	}

	for _, spec := range reg.List() {
		if !wired[spec.Name] {
			return nil, fmt.Errorf("compose: registered action %q is not wired to any section", spec.Name)
		}
	}
	return catalog, nil
}

func buildSection(reg *action.Registry, tabName string, sd sectionDecl) (Section, error) {
	a, err := reg.Get(sd.Action)
	if err != nil {
		return Section{}, fmt.Errorf("compose: tab %q: %w", tabName, err)
	}
	spec := a.Spec()

	if spec.Group != tabName {
		return Section{}, fmt.Errorf("compose: action %q declares group %q but is placed on tab %q",
			spec.Name, spec.Group, tabName)
	}
	if len(sd.Inputs) != len(spec.Inputs) {
		return Section{}, fmt.Errorf("compose: action %q wires %d inputs, spec has %d",
			spec.Name, len(sd.Inputs), len(spec.Inputs))
	}
	if len(sd.Outputs) != len(spec.Outputs) {
		return Section{}, fmt.Errorf("compose: action %q wires %d outputs, spec has %d",
			spec.Name, len(sd.Outputs), len(spec.Outputs))
	}

	section := Section{
		Action:      spec.Name,
		Title:       spec.Title,
		Description: spec.Description,
		Streaming:   spec.Streaming,
		Inputs:      make([]InputControl, len(spec.Inputs)),
		Outputs:     make([]OutputControl, len(spec.Outputs)),
	}
	for i, field := range spec.Inputs {
		if sd.Inputs[i] != field.Name {
			return Section{}, fmt.Errorf("compose: action %q input %d: wired %q, spec has %q",
				spec.Name, i, sd.Inputs[i], field.Name)
		}
		section.Inputs[i] = InputControl{ID: controlID(spec.Name, field.Name), InputField: field}
	}
	for i, field := range spec.Outputs {
		if sd.Outputs[i] != field.Name {
			return Section{}, fmt.Errorf("compose: action %q output %d: wired %q, spec has %q",
				spec.Name, i, sd.Outputs[i], field.Name)
		}
		section.Outputs[i] = OutputControl{ID: controlID(spec.Name, field.Name), OutputField: field}
	}
	return section, nil
}

// controlID forms the page-unique control identifier. Field names are only
// unique within one action, so the ID namespaces them.
func controlID(action, field string) string {
	return action + "/" + field
}

// Actions returns the wired action names in page order.
func (c *Catalog) Actions() []string {
	var names []string
	for _, tab := range c.Tabs {
		for _, s := range tab.Sections {
			names = append(names, s.Action)
		}
	}
	return names
}

package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/quez2777/hodos-360-website/internal/templates"
	"github.com/quez2777/hodos-360-website/pkg/action"
	"github.com/quez2777/hodos-360-website/pkg/charts"
	"github.com/quez2777/hodos-360-website/pkg/domain"
)

type leadGenInput struct {
	Criteria []string `param:"lead_criteria"`
	Location string   `param:"lead_location"`
	Count    int      `param:"lead_count"`
	Quality  string   `param:"lead_quality"`
}

func (d Deps) leadGenerator() action.Action {
	return action.Func{
		S: action.Spec{
			Name:        "leads.generate",
			Title:       "Lead Generation",
			Group:       GroupLeads,
			Description: "Generate a qualified lead list with a quality distribution.",
			Inputs: []domain.InputField{
				domain.CheckboxGroup("lead_criteria", "Lead Criteria", []string{
					"Recent accidents", "Business formation", "Estate planning needs",
					"Criminal charges", "Family law matters",
				}),
				domain.Textbox("lead_location", "Target Location", "Los Angeles, CA"),
				domain.Slider("lead_count", "Number of Leads", 10, 100, 5, 25),
				domain.Radio("lead_quality", "Lead Quality Filter", "Qualified Only",
					"All Leads", "Qualified Only", "High Value"),
			},
			Outputs: []domain.OutputField{
				domain.TableOut("leads_output", "Generated Leads"),
				domain.FigureOut("lead_score_chart", "Lead Quality Distribution"),
			},
		},
		Fn: func(ctx context.Context, params map[string]any, _ action.ProgressSink) (domain.Result, error) {
			var in leadGenInput
			if err := action.DecodeParams(params, &in); err != nil {
				return nil, err
			}
			if err := d.sleep(ctx, 3*time.Second); err != nil {
				return nil, err
			}

			table := domain.NewTable("Name", "Contact", "Type", "Score", "Notes")
			scores := make([]any, 0, in.Count)
			for i := 0; i < in.Count; i++ {
				leadType := "General Inquiry"
				if len(in.Criteria) > 0 {
					leadType = in.Criteria[i%len(in.Criteria)]
				}
				score := 70 + (i % 20)
				if in.Quality == "High Value" {
					score = 85 + (i % 15)
				}
				scores = append(scores, score)
				table.MustAppend(
					fmt.Sprintf("Lead %d", i+1),
					fmt.Sprintf("lead%d@email.com", i+1),
					leadType,
					fmt.Sprintf("%d", score),
					fmt.Sprintf("Interested in %s services", strings.ToLower(leadType)),
				)
			}

			fig := charts.New("Lead Quality Distribution")
			fig.XAxisTitle = "Lead Score"
			fig.YAxisTitle = "Count"
			fig.Add(charts.Trace{
				Type:   charts.TraceHistogram,
				X:      scores,
				NBins:  10,
				Colors: []string{colorPrimary},
			})

			return domain.Result{domain.TableOf(table), domain.FigureOf(fig)}, nil
		},
	}
}

type intakeInput struct {
	Name        string `param:"client_name"`
	Email       string `param:"client_email"`
	Phone       string `param:"client_phone"`
	CaseType    string `param:"case_type"`
	Urgency     string `param:"urgency"`
	Description string `param:"case_description"`
}

func (d Deps) clientIntake() action.Action {
	return action.Func{
		S: action.Spec{
			Name:        "leads.intake",
			Title:       "Client Intake",
			Group:       GroupLeads,
			Description: "Process a client intake and recommend next steps.",
			Inputs: []domain.InputField{
				domain.Textbox("client_name", "Client Name", ""),
				domain.Textbox("client_email", "Email", ""),
				domain.Textbox("client_phone", "Phone", ""),
				domain.Dropdown("case_type", "Case Type",
					"Personal Injury", "Criminal Defense", "Family Law", "Business Law", "Estate Planning"),
				domain.Radio("urgency", "Urgency Level", "Medium", "Low", "Medium", "High", "Emergency"),
				domain.Textarea("case_description", "Case Description", "Describe the legal matter...", 5),
			},
			Outputs: []domain.OutputField{
				domain.TextOut("intake_summary", "Intake Summary"),
				domain.JSONOut("recommended_actions", "Recommended Next Steps"),
			},
		},
		Fn: func(ctx context.Context, params map[string]any, _ action.ProgressSink) (domain.Result, error) {
			var in intakeInput
			if err := action.DecodeParams(params, &in); err != nil {
				return nil, err
			}
			if err := d.sleep(ctx, 2*time.Second); err != nil {
				return nil, err
			}

			summary := fmt.Sprintf(`CLIENT INTAKE SUMMARY
====================
Client: %s
Contact: %s | %s
Case Type: %s
Urgency: %s

Case Overview:
%s

Initial Assessment:
- Case appears to have merit based on provided information
- Recommended immediate actions have been identified
- Follow-up consultation scheduled within 24-48 hours
- Initial document requests prepared
`, in.Name, in.Email, in.Phone, in.CaseType, in.Urgency, in.Description)

			nextSteps := map[string]any{
				"immediate_actions": []string{
					"Send welcome email with intake forms",
					"Schedule initial consultation",
					"Run conflict check",
					"Prepare retainer agreement",
				},
				"document_requests": []string{
					"Photo ID",
					"Relevant contracts/agreements",
					"Communication records",
					"Financial documents (if applicable)",
				},
				"internal_tasks": []string{
					"Assign to appropriate attorney",
					"Create case file",
					"Set up client portal access",
					"Initialize billing",
				},
			}

			return domain.Result{domain.Text(summary), domain.JSON(nextSteps)}, nil
		},
	}
}

// CommKind enumerates the client communication templates. Dispatch is
// exhaustive: an unknown kind is a request validation error, not a fallback
// string.
type CommKind string

const (
	CommWelcomeEmail        CommKind = "Welcome Email"
	CommAppointmentReminder CommKind = "Appointment Reminder"
	CommDocumentRequest     CommKind = "Document Request"
	CommCaseUpdate          CommKind = "Case Update"
	CommInvoice             CommKind = "Invoice"
	CommThankYou            CommKind = "Thank You"
)

// AllCommKinds lists every communication kind, in menu order.
var AllCommKinds = []CommKind{
	CommWelcomeEmail, CommAppointmentReminder, CommDocumentRequest,
	CommCaseUpdate, CommInvoice, CommThankYou,
}

// ParseCommKind maps a control value onto the enumeration.
func ParseCommKind(s string) (CommKind, error) {
	for _, k := range AllCommKinds {
		if s == string(k) {
			return k, nil
		}
	}
	return "", action.BadRequestf("unknown communication type %q", s)
}

// TemplateName returns the template backing the kind. The switch is
// exhaustive over the enumeration; a new kind without a template fails at
// startup via Library.Has, not at call time.
func (k CommKind) TemplateName() string {
	switch k {
	case CommWelcomeEmail:
		return templates.CommWelcomeEmail
	case CommAppointmentReminder:
		return templates.CommAppointmentReminder
	case CommDocumentRequest:
		return templates.CommDocumentRequest
	case CommCaseUpdate:
		return templates.CommCaseUpdate
	case CommInvoice:
		return templates.CommInvoice
	case CommThankYou:
		return templates.CommThankYou
	}
	return ""
}

type commInput struct {
	CommType        string   `param:"comm_type"`
	Recipient       string   `param:"recipient_info"`
	Personalization []string `param:"personalization"`
}

func (d Deps) clientCommunication() action.Action {
	choices := make([]string, len(AllCommKinds))
	for i, k := range AllCommKinds {
		choices[i] = string(k)
	}
	return action.Func{
		S: action.Spec{
			Name:        "leads.communication",
			Title:       "Client Communications",
			Group:       GroupLeads,
			Description: "Generate a personalized client communication.",
			Inputs: []domain.InputField{
				domain.Dropdown("comm_type", "Communication Type", choices...),
				domain.Textbox("recipient_info", "Recipient Details", "John Doe, Car Accident Case"),
				domain.CheckboxGroup("personalization", "Personalization Options",
					[]string{"Include case details", "Add personal touch", "Include next steps"},
					"Include case details", "Add personal touch"),
			},
			Outputs: []domain.OutputField{
				domain.TextOut("comm_output", "Generated Communication"),
			},
		},
		Fn: func(ctx context.Context, params map[string]any, _ action.ProgressSink) (domain.Result, error) {
			var in commInput
			if err := action.DecodeParams(params, &in); err != nil {
				return nil, err
			}
			kind, err := ParseCommKind(in.CommType)
			if err != nil {
				return nil, err
			}
			if err := d.sleep(ctx, 2*time.Second); err != nil {
				return nil, err
			}

			recipient := "Client"
			matter := ""
			if parts := strings.SplitN(in.Recipient, ",", 2); in.Recipient != "" {
				recipient = strings.TrimSpace(parts[0])
				if len(parts) > 1 {
					matter = strings.TrimSpace(parts[1])
				}
			}

			opts := map[string]bool{}
			for _, p := range in.Personalization {
				opts[p] = true
			}
			text, err := d.Templates.Render(kind.TemplateName(), templates.CommData{
				Recipient:     recipient,
				Matter:        matter,
				CaseDetails:   opts["Include case details"],
				PersonalTouch: opts["Add personal touch"],
				NextSteps:     opts["Include next steps"],
			})
			if err != nil {
				return nil, err
			}

			return domain.Result{domain.Text(text)}, nil
		},
	}
}

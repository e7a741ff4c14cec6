package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/quez2777/hodos-360-website/internal/templates"
	"github.com/quez2777/hodos-360-website/pkg/action"
	"github.com/quez2777/hodos-360-website/pkg/domain"
)

type contractInput struct {
	ContractType string `param:"contract_type"`
	Party1       string `param:"party1_name"`
	Party2       string `param:"party2_name"`
	Jurisdiction string `param:"jurisdiction"`
	SpecialTerms string `param:"special_terms"`
}

func (d Deps) contractGenerator() action.Action {
	return action.Func{
		S: action.Spec{
			Name:        "legal.contract",
			Title:       "Contract Generator",
			Group:       GroupLegal,
			Description: "Draft a contract from a jurisdiction-aware template.",
			Inputs: []domain.InputField{
				domain.Dropdown("contract_type", "Contract Type",
					"Retainer Agreement", "Settlement Agreement", "Non-Disclosure Agreement",
					"Partnership Agreement", "Service Agreement"),
				domain.Textbox("party1_name", "First Party Name", ""),
				domain.Textbox("party2_name", "Second Party Name", ""),
				domain.Textbox("jurisdiction", "Jurisdiction", "California"),
				domain.Textarea("special_terms", "Special Terms", "Any specific terms to include", 3),
			},
			Outputs: []domain.OutputField{
				domain.TextOut("contract_output", "Generated Contract"),
				domain.JSONOut("contract_warnings", "Legal Warnings & Considerations"),
			},
		},
		Fn: func(ctx context.Context, params map[string]any, _ action.ProgressSink) (domain.Result, error) {
			var in contractInput
			if err := action.DecodeParams(params, &in); err != nil {
				return nil, err
			}
			if err := d.sleep(ctx, 3*time.Second); err != nil {
				return nil, err
			}

			contract, err := d.Templates.Render(templates.ContractBase, templates.ContractData{
				Type:         in.ContractType,
				TypeUpper:    strings.ToUpper(in.ContractType),
				Party1:       in.Party1,
				Party2:       in.Party2,
				Jurisdiction: in.Jurisdiction,
				SpecialTerms: in.SpecialTerms,
			})
			if err != nil {
				return nil, err
			}

			warnings := map[string]any{
				"legal_review_needed":   true,
				"jurisdiction_specific": fmt.Sprintf("This contract template is based on %s law", in.Jurisdiction),
				"considerations": []string{
					"Have an attorney review before signing",
					"Ensure all terms are clearly understood",
					"Verify party information is correct",
					"Consider including dispute resolution clause",
				},
			}

			return domain.Result{domain.Text(contract), domain.JSON(warnings)}, nil
		},
	}
}

type reviewInput struct {
	ContractFile string   `param:"contract_upload"`
	ReviewFocus  []string `param:"review_focus"`
}

func (d Deps) contractReview() action.Action {
	return action.Func{
		S: action.Spec{
			Name:        "legal.review",
			Title:       "Contract Review",
			Group:       GroupLegal,
			Description: "Analyze an uploaded contract for risks and gaps.",
			Inputs: []domain.InputField{
				{Name: "contract_upload", Widget: domain.WidgetFile, Label: "Upload Contract"},
				domain.CheckboxGroup("review_focus", "Review Focus Areas", []string{
					"Risk Assessment", "Missing Clauses", "Unfavorable Terms",
					"Compliance Check", "Plain Language Summary",
				}, "Risk Assessment", "Unfavorable Terms"),
			},
			Outputs: []domain.OutputField{
				domain.TextOut("review_summary", "Review Summary"),
				domain.JSONOut("risk_analysis", "Risk Analysis"),
				domain.JSONOut("recommendations", "Recommendations"),
			},
		},
		Fn: func(ctx context.Context, params map[string]any, _ action.ProgressSink) (domain.Result, error) {
			var in reviewInput
			if err := action.DecodeParams(params, &in); err != nil {
				return nil, err
			}
			if err := d.sleep(ctx, 3*time.Second); err != nil {
				return nil, err
			}

			summary := `CONTRACT REVIEW SUMMARY
======================
Document: [Contract Name]
Date Reviewed: [Today's Date]
Risk Level: MEDIUM

Key Findings:
1. The contract generally appears to be well-structured
2. Several areas require attention (see below)
3. Some standard protective clauses are missing
4. Terms are generally favorable but some negotiation recommended
`

			riskAnalysis := map[string]any{
				"high_risk_items": []string{
					"Unlimited liability clause in Section 5",
					"No termination clause for convenience",
					"Broad indemnification requirements",
				},
				"medium_risk_items": []string{
					"Payment terms favor other party",
					"Intellectual property assignment unclear",
					"Dispute resolution in distant jurisdiction",
				},
				"low_risk_items": []string{
					"Standard confidentiality provisions",
					"Clear scope of work",
					"Reasonable timeline",
				},
			}

			recommendations := map[string]any{
				"must_address": []string{
					"Add liability cap or limitation",
					"Include termination for convenience clause",
					"Negotiate mutual indemnification",
				},
				"should_consider": []string{
					"Adjust payment terms to net 30",
					"Clarify IP ownership",
					"Add local jurisdiction clause",
				},
				"nice_to_have": []string{
					"Include automatic renewal provision",
					"Add expense reimbursement clause",
					"Specify communication protocols",
				},
			}

			return domain.Result{
				domain.Text(summary),
				domain.JSON(riskAnalysis),
				domain.JSON(recommendations),
			}, nil
		},
	}
}

type researchInput struct {
	Query            string `param:"research_query"`
	Jurisdiction     string `param:"research_jurisdiction"`
	Depth            string `param:"research_depth"`
	IncludeCitations bool   `param:"include_citations"`
}

func (d Deps) legalResearch() action.Action {
	return action.Func{
		S: action.Spec{
			Name:        "legal.research",
			Title:       "Legal Research",
			Group:       GroupLegal,
			Description: "Produce a research memorandum with optional case citations.",
			Inputs: []domain.InputField{
				domain.Textarea("research_query", "Legal Question",
					"What are the statute of limitations for personal injury in California?", 3),
				domain.Textbox("research_jurisdiction", "Jurisdiction", "California"),
				domain.Radio("research_depth", "Research Depth", "Detailed Analysis",
					"Quick Answer", "Detailed Analysis", "Case Law Review"),
				domain.Checkbox("include_citations", "Include Case Citations", true),
			},
			Outputs: []domain.OutputField{
				domain.TextOut("research_results", "Research Results"),
				domain.TableOut("relevant_cases", "Relevant Case Law"),
			},
		},
		Fn: func(ctx context.Context, params map[string]any, _ action.ProgressSink) (domain.Result, error) {
			var in researchInput
			if err := action.DecodeParams(params, &in); err != nil {
				return nil, err
			}
			if err := d.sleep(ctx, 3*time.Second); err != nil {
				return nil, err
			}

			memo := fmt.Sprintf(`LEGAL RESEARCH MEMORANDUM
========================
Query: %s
Jurisdiction: %s
Date: %s

EXECUTIVE SUMMARY:
The statute of limitations for personal injury claims in %s is generally two (2) years from the date of injury. However, several exceptions and special circumstances may apply.

DETAILED ANALYSIS:

1. General Rule
   - %s Code § 335.1 establishes a two-year limitation period
   - Time begins to run from date of injury, not date of discovery
   - Applies to most personal injury claims including auto accidents

2. Exceptions to the General Rule
   a) Discovery Rule
      - For injuries not immediately apparent
      - Limitations period begins when injury is or should be discovered

   b) Minor Plaintiffs
      - Statute tolled until minor reaches age 18
      - Then has full statutory period to file

   c) Defendant's Absence
      - Time tolled while defendant is absent from state
      - Must be continuous absence

3. Special Circumstances
   - Medical malpractice: 2 years from discovery, max 4 years
   - Government entities: Notice requirements within 90-180 days
   - Product liability: May have longer period under different theory

CONCLUSION:
Clients should be advised to act promptly to preserve their claims. While the general rule provides two years, waiting risks loss of evidence and witness availability.
`, in.Query, in.Jurisdiction, d.now().Format("January 2, 2006"), in.Jurisdiction, in.Jurisdiction)

			cases := domain.NewTable("Case Name", "Year", "Relevance", "Summary")
			if in.IncludeCitations {
				cases.MustAppend("Smith v. Jones", "2019", "High", "Established discovery rule application")
				cases.MustAppend("Doe v. City Hospital", "2021", "High", "Medical malpractice limitations")
				cases.MustAppend("Johnson v. State DOT", "2020", "Medium", "Government notice requirements")
				cases.MustAppend("Brown v. Manufacturer", "2018", "Medium", "Product liability timeline")
			}

			return domain.Result{domain.Text(memo), domain.TableOf(cases)}, nil
		},
	}
}

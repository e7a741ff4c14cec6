package handlers

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/quez2777/hodos-360-website/pkg/action"
	"github.com/quez2777/hodos-360-website/pkg/charts"
	"github.com/quez2777/hodos-360-website/pkg/domain"
)

type seoAuditInput struct {
	WebsiteURL string `param:"website_url"`
	AuditType  string `param:"audit_type"`
}

// seoAudit is the multi-step progress handler: it emits a growing audit
// transcript before the final result. It is also the error-guarded path:
// an unparseable URL surfaces as a handler error, which the runner converts
// into the "Error: ..." tuple.
func (d Deps) seoAudit() action.Action {
	return action.Func{
		S: action.Spec{
			Name:        "seo.audit",
			Title:       "Website SEO Audit",
			Group:       GroupSEO,
			Description: "Run a simulated SEO audit against a website.",
			Streaming:   true,
			Inputs: []domain.InputField{
				domain.Textbox("website_url", "Website URL", "https://www.lawfirm.com"),
				domain.Radio("audit_type", "Audit Type", "Quick Audit",
					"Quick Audit", "Comprehensive Audit", "Technical SEO"),
			},
			Outputs: []domain.OutputField{
				domain.TextOut("audit_progress", "Audit Progress"),
				domain.JSONOut("audit_results", "SEO Audit Results"),
				domain.FigureOut("seo_score_plot", "SEO Score Breakdown"),
			},
		},
		Fn: func(ctx context.Context, params map[string]any, sink action.ProgressSink) (domain.Result, error) {
			var in seoAuditInput
			if err := action.DecodeParams(params, &in); err != nil {
				return nil, err
			}
			if _, err := url.Parse(in.WebsiteURL); err != nil {
				return nil, fmt.Errorf("invalid website URL: %w", err)
			}

			transcript := action.NewTranscriptSink(sink)
			transcript.Progress(ctx, "Starting SEO audit...")
			if err := d.sleep(ctx, 2*time.Second); err != nil {
				return nil, err
			}
			transcript.Progress(ctx, "Analyzing website structure...")
			if err := d.sleep(ctx, 2*time.Second); err != nil {
				return nil, err
			}
			transcript.Progress(ctx, "Checking page speed and performance...")

			results := map[string]any{
				"overall_score": 78,
				"technical_seo": map[string]any{
					"score":  85,
					"issues": []string{"Missing meta descriptions on 5 pages", "No sitemap.xml found"},
				},
				"on_page_seo": map[string]any{
					"score":  72,
					"issues": []string{"H1 tags missing on homepage", "Image alt texts needed"},
				},
				"performance": map[string]any{
					"score":           65,
					"load_time":       "3.2s",
					"recommendations": []string{"Optimize images", "Enable caching"},
				},
				"mobile": map[string]any{
					"score":      90,
					"responsive": true,
				},
			}

			fig := charts.New("SEO Score Breakdown")
			fig.YAxisTitle = "Score"
			fig.Add(charts.Trace{
				Type:   charts.TraceBar,
				X:      []any{"Technical", "On-Page", "Performance", "Mobile"},
				Y:      []float64{85, 72, 65, 90},
				Colors: []string{colorPrimary, colorViolet, colorGold, colorGreen},
			})

			transcript.Progress(ctx, "✅ Audit complete!")
			return domain.Result{
				domain.Text(transcript.Transcript()),
				domain.JSON(results),
				domain.FigureOf(fig),
			}, nil
		},
	}
}

type keywordInput struct {
	PracticeArea string `param:"practice_area"`
	Location     string `param:"location"`
}

func (d Deps) keywordResearch() action.Action {
	return action.Func{
		S: action.Spec{
			Name:        "seo.keywords",
			Title:       "Keyword Research",
			Group:       GroupSEO,
			Description: "Research keyword opportunities for a practice area and location.",
			Inputs: []domain.InputField{
				domain.Dropdown("practice_area", "Practice Area",
					"Personal Injury", "Criminal Defense", "Family Law", "Business Law", "Estate Planning"),
				domain.Textbox("location", "Target Location", "New York, NY"),
			},
			Outputs: []domain.OutputField{
				domain.TableOut("keyword_results", "Keyword Opportunities"),
			},
		},
		Fn: func(ctx context.Context, params map[string]any, _ action.ProgressSink) (domain.Result, error) {
			var in keywordInput
			if err := action.DecodeParams(params, &in); err != nil {
				return nil, err
			}
			if err := d.sleep(ctx, 2*time.Second); err != nil {
				return nil, err
			}

			area := strings.ToLower(in.PracticeArea)
			table := domain.NewTable("Keyword", "Search Volume", "Competition", "CPC")
			table.MustAppend(fmt.Sprintf("%s lawyer %s", area, in.Location), "2,400", "High", "$45.20")
			table.MustAppend(fmt.Sprintf("best %s attorney near me", area), "1,800", "High", "$38.50")
			table.MustAppend(fmt.Sprintf("%s law firm %s", area, in.Location), "1,200", "Medium", "$32.10")
			table.MustAppend(fmt.Sprintf("top %s lawyers", area), "900", "Medium", "$28.75")
			table.MustAppend(fmt.Sprintf("%s legal help", area), "720", "Low", "$22.30")

			return domain.Result{domain.TableOf(table)}, nil
		},
	}
}

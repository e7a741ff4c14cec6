package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/quez2777/hodos-360-website/pkg/action"
	"github.com/quez2777/hodos-360-website/pkg/domain"
)

type blogInput struct {
	Topic     string `param:"blog_topic"`
	Style     string `param:"blog_style"`
	Audience  string `param:"target_audience"`
	Keywords  string `param:"blog_keywords"`
	WordCount int    `param:"word_count"`
}

func (d Deps) blogGenerator() action.Action {
	return action.Func{
		S: action.Spec{
			Name:        "content.blog",
			Title:       "Blog Generator",
			Group:       GroupContent,
			Description: "Generate a blog post draft with SEO metadata.",
			Inputs: []domain.InputField{
				domain.Textbox("blog_topic", "Blog Topic", "5 Things to Do After a Car Accident"),
				domain.Radio("blog_style", "Writing Style", "Educational",
					"Educational", "Persuasive", "Informative", "Story-telling"),
				domain.Dropdown("target_audience", "Target Audience",
					"General Public", "Business Owners", "Individuals", "Legal Professionals"),
				domain.Textarea("blog_keywords", "Target Keywords", "car accident lawyer, personal injury attorney", 2),
				domain.Slider("word_count", "Target Word Count", 500, 2500, 100, 1000),
			},
			Outputs: []domain.OutputField{
				domain.TextOut("blog_output", "Generated Blog Post"),
				domain.JSONOut("blog_metadata", "SEO Metadata"),
			},
		},
		Fn: func(ctx context.Context, params map[string]any, _ action.ProgressSink) (domain.Result, error) {
			var in blogInput
			if err := action.DecodeParams(params, &in); err != nil {
				return nil, err
			}
			if err := d.sleep(ctx, 3*time.Second); err != nil {
				return nil, err
			}

			topicLower := strings.ToLower(in.Topic)
			post := fmt.Sprintf(`# %s

## Introduction

When facing legal challenges, understanding your rights and the proper steps to take is crucial. This comprehensive guide will walk you through everything you need to know about %s.

## Understanding the Basics

%s involves several important considerations that every %s should be aware of. Our experienced legal team has compiled this guide to help you navigate these complex waters with confidence.

### Key Points to Remember:

1. **Immediate Actions**: The first 24-48 hours are critical
2. **Documentation**: Keep detailed records of everything
3. **Legal Representation**: Why timing matters
4. **Your Rights**: What you're entitled to under the law

## The Legal Framework

Understanding the legal framework surrounding %s is essential for protecting your interests. State laws vary, but certain fundamental principles apply across jurisdictions.

### Important Considerations:

- Statute of limitations
- Burden of proof requirements
- Potential damages and compensation
- Common defenses and how to counter them

## Step-by-Step Guide

Here's what you should do:

1. **Document Everything**: Take photos, gather witness information
2. **Seek Medical Attention**: Your health comes first
3. **Contact Legal Representation**: Don't delay
4. **Avoid Common Mistakes**: What not to say or do

## Why Choose Professional Legal Help?

Navigating the legal system alone can be overwhelming. An experienced attorney can:

- Maximize your compensation
- Handle all paperwork and deadlines
- Negotiate with insurance companies
- Represent you in court if necessary

## Conclusion

%s requires prompt action and knowledgeable guidance. Don't wait to protect your rights. Contact our experienced legal team today for a free consultation.

**Keywords**: %s
**Word Count**: %d
`, in.Topic, topicLower, in.Topic, strings.ToLower(in.Audience), topicLower, in.Topic, in.Keywords, in.WordCount)

			metadata := map[string]any{
				"title":            in.Topic,
				"meta_description": fmt.Sprintf("Expert guide on %s. Learn your rights and get professional legal help.", in.Topic),
				"keywords":         strings.Split(in.Keywords, ", "),
				"reading_time":     fmt.Sprintf("%d min read", in.WordCount/200),
				"style":            in.Style,
				"audience":         in.Audience,
			}

			return domain.Result{domain.Text(post), domain.JSON(metadata)}, nil
		},
	}
}

type socialInput struct {
	Topic           string   `param:"social_topic"`
	Platforms       []string `param:"platforms"`
	Tone            string   `param:"post_tone"`
	IncludeHashtags bool     `param:"include_hashtags"`
}

func (d Deps) socialPosts() action.Action {
	return action.Func{
		S: action.Spec{
			Name:        "content.social",
			Title:       "Social Media Posts",
			Group:       GroupContent,
			Description: "Generate platform-specific social media posts.",
			Inputs: []domain.InputField{
				domain.Textbox("social_topic", "Post Topic", "New blog post about estate planning"),
				domain.CheckboxGroup("platforms", "Target Platforms",
					[]string{"LinkedIn", "Facebook", "Twitter/X", "Instagram"}, "LinkedIn", "Facebook"),
				domain.Radio("post_tone", "Tone", "Professional",
					"Professional", "Friendly", "Urgent", "Educational"),
				domain.Checkbox("include_hashtags", "Include Hashtags", true),
			},
			Outputs: []domain.OutputField{
				domain.JSONOut("social_posts_output", "Generated Social Media Posts"),
			},
		},
		Fn: func(ctx context.Context, params map[string]any, _ action.ProgressSink) (domain.Result, error) {
			var in socialInput
			if err := action.DecodeParams(params, &in); err != nil {
				return nil, err
			}
			if err := d.sleep(ctx, 2*time.Second); err != nil {
				return nil, err
			}

			topicLower := strings.ToLower(in.Topic)
			posts := map[string]any{}
			hashtags := func(tags ...string) []string {
				if !in.IncludeHashtags {
					return []string{}
				}
				return tags
			}
			for _, platform := range in.Platforms {
				switch platform {
				case "LinkedIn":
					posts[platform] = map[string]any{
						"text": fmt.Sprintf("🏛️ %s\n\nAs legal professionals, we understand the importance of staying informed. Our latest insights explore %s and what it means for you.\n\nRead more on our blog and discover how we can help protect your interests.", in.Topic, topicLower),
						"hashtags": hashtags("#LegalAdvice", "#LawFirm", "#LegalTech"),
					}
				case "Facebook":
					posts[platform] = map[string]any{
						"text": fmt.Sprintf("📚 New Blog Post Alert! %s\n\nWe've just published a comprehensive guide that every person should read. Don't miss these crucial insights!\n\n👉 Link in comments", in.Topic),
						"hashtags": hashtags("#Legal", "#KnowYourRights"),
					}
				case "Twitter/X":
					posts[platform] = map[string]any{
						"text": fmt.Sprintf("🔍 %s - What you need to know:\n\n✅ Your rights\n✅ Key deadlines\n✅ Common mistakes to avoid\n\nRead our latest blog for expert insights", in.Topic),
						"hashtags": hashtags("#LegalTips", "#Law"),
					}
				case "Instagram":
					posts[platform] = map[string]any{
						"text": fmt.Sprintf("📸 Swipe for legal tips! %s\n\nProtect yourself with knowledge. Our latest post breaks down everything you need to know.", in.Topic),
						"hashtags": hashtags("#Lawyer", "#LegalAdvice", "#Justice"),
					}
				default:
					return nil, action.BadRequestf("unknown platform %q", platform)
				}
			}

			return domain.Result{domain.JSON(posts)}, nil
		},
	}
}

type videoScriptInput struct {
	Topic  string `param:"video_topic"`
	Length string `param:"video_length"`
	Style  string `param:"video_style"`
	CTA    string `param:"cta_message"`
}

func (d Deps) videoScript() action.Action {
	return action.Func{
		S: action.Spec{
			Name:        "content.video_script",
			Title:       "Video Scripts",
			Group:       GroupContent,
			Description: "Generate a video script and shot list.",
			Inputs: []domain.InputField{
				domain.Textbox("video_topic", "Video Topic", "What to expect during your first consultation"),
				domain.Radio("video_length", "Target Length", "1 minute",
					"30 seconds", "1 minute", "3 minutes", "5 minutes"),
				domain.Dropdown("video_style", "Video Style",
					"Educational", "Testimonial", "FAQ", "Behind-the-scenes"),
				domain.Textbox("cta_message", "Call-to-Action", "Schedule your free consultation today"),
			},
			Outputs: []domain.OutputField{
				domain.TextOut("script_output", "Video Script"),
				domain.JSONOut("shot_list", "Suggested Shot List"),
			},
		},
		Fn: func(ctx context.Context, params map[string]any, _ action.ProgressSink) (domain.Result, error) {
			var in videoScriptInput
			if err := action.DecodeParams(params, &in); err != nil {
				return nil, err
			}
			if err := d.sleep(ctx, 2*time.Second); err != nil {
				return nil, err
			}

			script := fmt.Sprintf(`VIDEO SCRIPT: %s
Length: %s
Style: %s

[SCENE 1: Opening - 0:00-0:05]
Visual: Professional law office setting
Script: "Have you ever wondered %s? You're not alone."

[SCENE 2: Problem Introduction - 0:05-0:15]
Visual: B-roll of relevant imagery
Script: "Every day, people face this situation without knowing their rights. The consequences can be serious."

[SCENE 3: Solution - 0:15-0:45]
Visual: Attorney speaking to camera
Script: "Here's what you need to know: First, [key point 1]. Second, [key point 2]. Most importantly, [key point 3]."

[SCENE 4: Call to Action - 0:45-%s]
Visual: Contact information overlay
Script: "%s Visit our website or call us today."

[END SCREEN]
Logo and contact information
`, in.Topic, in.Length, in.Style, strings.ToLower(in.Topic), in.Length, in.CTA)

			shotList := map[string]any{
				"shots": []map[string]any{
					{"scene": 1, "type": "Wide shot", "location": "Law office"},
					{"scene": 2, "type": "B-roll montage", "location": "Various"},
					{"scene": 3, "type": "Medium shot", "location": "Office"},
					{"scene": 4, "type": "Graphics overlay", "location": "Post-production"},
				},
				"equipment_needed":          []string{"Camera", "Tripod", "Microphone", "Lighting"},
				"estimated_production_time": "2-3 hours",
			}

			return domain.Result{domain.Text(script), domain.JSON(shotList)}, nil
		},
	}
}

// Package crews holds the handles for the fourteen AI crew collaborators
// the demo is built around. The crews are external, unexamined services:
// the demo constructs and injects them but never calls business methods on
// them, so the handle contract is deliberately minimal. Passing a Set into
// the engine (instead of constructing globals at import time) lets tests
// substitute fakes.
package crews

import "fmt"

// Crew is an opaque handle on one collaborator service.
type Crew interface {
	Name() string
}

// Names of the fourteen crews, in the order the original platform wires
// them.
const (
	SEO                 = "seo"
	Content             = "content"
	SocialMedia         = "social_media"
	LeadGeneration      = "lead_generation"
	ClientService       = "client_service"
	Contract            = "contract"
	Compliance          = "compliance"
	BusinessIntel       = "business_intelligence"
	EmailMarketing      = "email_marketing"
	Reputation          = "reputation"
	VideoMarketing      = "video_marketing"
	LegalResearch       = "legal_research"
	CompetitiveAnalysis = "competitive_analysis"
	FinancialAnalysis   = "financial_analysis"
)

// All lists every crew name.
var All = []string{
	SEO, Content, SocialMedia, LeadGeneration, ClientService, Contract,
	Compliance, BusinessIntel, EmailMarketing, Reputation, VideoMarketing,
	LegalResearch, CompetitiveAnalysis, FinancialAnalysis,
}

// Set maps crew names to their handles.
type Set map[string]Crew

// Factory constructs a crew handle by name.
type Factory func(name string) Crew

// NewSet builds a complete set using the given factory.
func NewSet(factory Factory) Set {
	set := make(Set, len(All))
	for _, name := range All {
		set[name] = factory(name)
	}
	return set
}

// Default builds the standard set of stub handles.
func Default() Set {
	return NewSet(func(name string) Crew { return stub{name: name} })
}

// Validate ensures every named crew is present. A missing collaborator is a
// configuration error caught at startup.
func (s Set) Validate() error {
	for _, name := range All {
		c, ok := s[name]
		if !ok || c == nil {
			return fmt.Errorf("crew %q is not configured", name)
		}
	}
	return nil
}

// Get returns the named handle. Callers only ask for crews listed in All,
// so a miss is a programming error.
func (s Set) Get(name string) Crew {
	c, ok := s[name]
	if !ok {
		panic(fmt.Sprintf("unknown crew %q", name))
	}
	return c
}

type stub struct {
	name string
}

func (s stub) Name() string { return s.name }

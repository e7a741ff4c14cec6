/*
Package hodos implements the HODOS 360 interactive demo engine: a catalog of
simulated AI crew operations (SEO audits, content generation, lead
management, contract work, business intelligence, orchestrated campaigns)
behind a uniform invocation API.

Every operation is a stub: it simulates crew latency, then returns fixed or
lightly-interpolated content plus declarative chart descriptors. The crews
themselves are opaque injected handles that are never called, so the demo
exercises the full presentation pipeline without any external dependency.

# Usage

	demo, err := hodos.New()
	if err != nil {
		log.Fatal(err)
	}

	result, err := demo.Invoke(ctx, domain.Request{
		Action: "seo.keywords",
		Params: map[string]any{
			"practice_area": "Family Law",
			"location":      "Austin, TX",
		},
	}, nil)

The engine validates its whole configuration at startup: crew set, action
specs, template bindings, and the page wiring served at /api/catalog. The
HTTP and MCP adapters under internal/adapters expose the same invocation
path over their respective transports.
*/
package hodos

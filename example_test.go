package hodos_test

import (
	"context"
	"fmt"
	"log"
	"strings"

	hodos "github.com/quez2777/hodos-360-website"
	"github.com/quez2777/hodos-360-website/internal/logging"
	"github.com/quez2777/hodos-360-website/pkg/action"
	"github.com/quez2777/hodos-360-website/pkg/domain"
)

// ExampleNew demonstrates assembling the demo engine and invoking a single
// action in-process, without the HTTP or MCP adapters.
func ExampleNew() {
	// NoSleep skips the simulated crew latency; the served demo keeps it.
	demo, err := hodos.New(
		hodos.WithLogger(logging.NewNop()),
		hodos.WithSleeper(action.NoSleep),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("tabs: %d\n", len(demo.Catalog().Tabs))
	fmt.Printf("actions: %d\n", len(demo.Actions()))

	result, err := demo.Invoke(context.Background(), domain.Request{
		Action: "seo.keywords",
		Params: map[string]any{
			"practice_area": "Personal Injury",
			"location":      "Las Vegas, NV",
		},
	}, nil)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("outputs: %d\n", len(result))
	fmt.Printf("kind: %s\n", result[0].Kind)
	fmt.Printf("rows mention location: %t\n",
		strings.Contains(result[0].Table.Rows[0][0], "Las Vegas, NV"))
	// Output:
	// tabs: 6
	// actions: 15
	// outputs: 1
	// kind: table
	// rows mention location: true
}

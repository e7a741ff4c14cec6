package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	hodos "github.com/quez2777/hodos-360-website"
	"github.com/quez2777/hodos-360-website/internal/logging"
	"github.com/quez2777/hodos-360-website/internal/presentation/tui"
	"github.com/quez2777/hodos-360-website/pkg/action"
	"github.com/quez2777/hodos-360-website/pkg/domain"
	"github.com/spf13/cobra"
)

var invokeCmd = &cobra.Command{
	Use:   "invoke <action>",
	Short: "Run a single demo action from the terminal",
	Long: `Invokes one registered action and prints its outputs.

Parameters are passed as repeated --param key=value flags, or as a single
JSON object via --params-json. Unset parameters fall back to the defaults
declared on the action's input fields.

Example:
  hodosdemo invoke seo.keywords --param practice_area="Personal Injury" --param location="Las Vegas, NV"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs, _ := cmd.Flags().GetStringArray("param")
		rawJSON, _ := cmd.Flags().GetString("params-json")
		noSleep, _ := cmd.Flags().GetBool("no-sleep")

		params, err := parseParams(pairs, rawJSON)
		if err != nil {
			return err
		}

		opts := []hodos.Option{hodos.WithLogger(logging.NewNop())}
		if noSleep {
			opts = append(opts, hodos.WithSleeper(action.NoSleep))
		}
		demo, err := hodos.New(opts...)
		if err != nil {
			return fmt.Errorf("initializing demo: %w", err)
		}

		tui.PrintBanner(hodos.Version)

		result, err := demo.Invoke(cmd.Context(), domain.Request{
			Action: args[0],
			Params: params,
		}, stderrSink{})
		if err != nil {
			return err
		}

		act, err := demo.Registry().Get(args[0])
		if err != nil {
			return err
		}
		return printResult(act.Spec().Outputs, result)
	},
}

// stderrSink prints progress lines as they arrive, keeping stdout for the
// final outputs.
type stderrSink struct{}

func (stderrSink) Progress(_ context.Context, line string) {
	fmt.Fprintln(os.Stderr, line)
}

func parseParams(pairs []string, rawJSON string) (map[string]any, error) {
	params := map[string]any{}
	if rawJSON != "" {
		if err := json.Unmarshal([]byte(rawJSON), &params); err != nil {
			return nil, fmt.Errorf("parsing --params-json: %w", err)
		}
	}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --param %q (want key=value)", pair)
		}
		params[key] = value
	}
	return params, nil
}

func printResult(fields []domain.OutputField, result domain.Result) error {
	render := tui.NewRenderer()
	for i, out := range result {
		label := fmt.Sprintf("output %d", i)
		if i < len(fields) {
			label = fields[i].Name
		}
		fmt.Printf("── %s ──\n", label)

		switch out.Kind {
		case domain.KindText:
			text, err := render(out.Text)
			if err != nil {
				text = out.Text
			}
			fmt.Println(text)
		case domain.KindJSON:
			data, err := json.MarshalIndent(out.JSON, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
		case domain.KindTable:
			if out.Table == nil {
				fmt.Println("(empty)")
				continue
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, strings.Join(out.Table.Headers, "\t"))
			for _, row := range out.Table.Rows {
				fmt.Fprintln(w, strings.Join(row, "\t"))
			}
			if err := w.Flush(); err != nil {
				return err
			}
		case domain.KindFigure:
			data, err := json.MarshalIndent(out.Figure, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
		}
		fmt.Println()
	}
	return nil
}

func init() {
	rootCmd.AddCommand(invokeCmd)

	invokeCmd.Flags().StringArray("param", nil, "Action parameter as key=value (repeatable)")
	invokeCmd.Flags().String("params-json", "", "Action parameters as a JSON object")
	invokeCmd.Flags().Bool("no-sleep", false, "Skip the simulated processing delays")
}

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	hodos "github.com/quez2777/hodos-360-website"
	"github.com/quez2777/hodos-360-website/internal/logging"
	"github.com/spf13/cobra"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List the registered demo actions",
	Long:  `Prints every registered action with its group, input names and output kinds.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		demo, err := hodos.New(hodos.WithLogger(logging.NewNop()))
		if err != nil {
			return fmt.Errorf("initializing demo: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ACTION\tGROUP\tINPUTS\tOUTPUTS")
		for _, name := range demo.Catalog().Actions() {
			act, err := demo.Registry().Get(name)
			if err != nil {
				return err
			}
			spec := act.Spec()
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\n",
				spec.Name, spec.Group, len(spec.Inputs), len(spec.Outputs))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(actionsCmd)
}

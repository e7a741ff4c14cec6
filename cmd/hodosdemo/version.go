package main

import (
	"fmt"
	"strings"

	hodos "github.com/quez2777/hodos-360-website"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of hodosdemo",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hodosdemo version %s\n", strings.TrimSpace(hodos.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hodosdemo",
	Short: "HODOS 360 interactive demo server",
	Long: `hodosdemo runs the HODOS 360 law firm management demo: simulated AI
crew operations behind an HTTP JSON API, an MCP server, and a terminal
invocation interface.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erraggy/asyncapitools"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("asyncapitools v%s\n", asyncapitools.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

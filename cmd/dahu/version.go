package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dahuapp/dahu"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dahu",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dahu version %s\n", dahu.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dahuapp/dahu"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new [dir]",
	Short: "Create an empty project",
	Long:  `Create a project directory with an empty presentation document.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := args[0]
		ctx := context.Background()

		ed := dahu.New(dahu.WithLogger(slog.Default()))
		if err := ed.Controller.Create(ctx, dir); err != nil {
			fatal("Failed to create project", err)
		}
		if err := ed.Controller.Save(ctx); err != nil {
			fatal("Failed to write project document", err)
		}

		fmt.Println("Created empty Dahu project in", dir)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}

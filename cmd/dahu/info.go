package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dahuapp/dahu"
	"github.com/dahuapp/dahu/pkg/adapters/fs"
)

var infoJSON bool

// projectInfo is the JSON shape emitted by `dahu info --json`.
type projectInfo struct {
	Dir     string      `json:"dir"`
	Slides  []slideInfo `json:"slides"`
	Orphans []string    `json:"orphans,omitempty"`
}

type slideInfo struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

var infoCmd = &cobra.Command{
	Use:   "info [dir]",
	Short: "Inspect a project",
	Long: `Open a project and list its slides in presentation order, along with
any capture images on disk that no slide references.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := args[0]
		ctx := context.Background()

		store := fs.NewProjectStore(fs.Config{Logger: slog.Default()})
		ed := dahu.New(
			dahu.WithLogger(slog.Default()),
			dahu.WithStore(store),
		)

		if err := ed.Controller.Open(ctx, dir); err != nil {
			fatal("Failed to open project", err)
		}

		orphans, err := store.Orphans(dir, ed.Controller.SlidePaths())
		if err != nil {
			fatal("Failed to scan images", err)
		}

		if infoJSON {
			info := projectInfo{Dir: dir, Orphans: orphans}
			for _, s := range ed.Controller.Slides() {
				info.Slides = append(info.Slides, slideInfo{Path: s.Path, X: s.X, Y: s.Y})
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(info); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		fmt.Printf("Project %s: %d slide(s)\n", dir, ed.Controller.SlideCount())
		for i, s := range ed.Controller.Slides() {
			fmt.Printf("  %3d  %s  (%d, %d)\n", i, s.Path, s.X, s.Y)
		}
		if len(orphans) > 0 {
			fmt.Printf("Orphaned images (%d):\n", len(orphans))
			for _, o := range orphans {
				fmt.Printf("       %s\n", o)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Output in JSON format")
}

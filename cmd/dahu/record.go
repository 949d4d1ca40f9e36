package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dahuapp/dahu"
	"github.com/dahuapp/dahu/pkg/adapters/desktop"
	"github.com/dahuapp/dahu/pkg/core"
)

var (
	recordNoSave bool
	recordWatch  bool
)

// recordCmd represents the record command
var recordCmd = &cobra.Command{
	Use:   "record [dir]",
	Short: "Arm capture mode and record slides",
	Long: `Open (or create) a project and arm capture mode. Key names are read
from stdin, one per line: a capture key records a slide, an exit key
disarms and ends the recording. Bindings come from the config file,
defaulting to "c" for capture and "esc"/"q" for exit.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := args[0]
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		cfg, err := loadConfig(configPath)
		if err != nil {
			fatal("Failed to load config", err)
		}

		keys := desktop.NewReaderSource(os.Stdin)
		ed := dahu.New(
			dahu.WithLogger(slog.Default()),
			dahu.WithKeymap(cfg.Keys),
			dahu.WithTriggerSource(keys),
		)

		// Open an existing project, create a fresh one if there is
		// none yet. A malformed document is a hard error: silently
		// starting over would clobber it on save.
		if err := ed.Controller.Open(ctx, dir); err != nil {
			if !errors.Is(err, core.ErrProjectNotFound) {
				fatal("Failed to open project", err)
			}
			if err := ed.Controller.Create(ctx, dir); err != nil {
				fatal("Failed to create project", err)
			}
		}

		if recordWatch {
			watcher, err := ed.WatchProject(ctx)
			if err != nil {
				fatal("Failed to watch project", err)
			}
			defer watcher.Stop(context.Background())
		}

		// Report recording progress and wait for disarm.
		done := make(chan struct{})
		token := ed.Bus.Subscribe(func(e core.Event) {
			switch e.Type {
			case core.EventSlideAdded:
				fmt.Printf("slide %d: %s\n", e.Index, e.Path)
			case core.EventCaptureFailed:
				fmt.Fprintln(os.Stderr, "capture failed, still armed")
			case core.EventDocumentModified:
				fmt.Fprintln(os.Stderr, "project document changed on disk")
			case core.EventCaptureDisarmed:
				close(done)
			}
		})
		defer ed.Bus.Unsubscribe(token)

		if err := ed.Session.Enter(ctx); err != nil {
			fatal("Failed to arm capture mode", err)
		}
		fmt.Println("Capture mode armed. Type a key name per line (capture:",
			fmt.Sprint(cfg.Keys.Capture), "exit:", fmt.Sprint(cfg.Keys.Exit), ")")

		go func() {
			if err := keys.Run(ctx); err != nil && ctx.Err() == nil {
				slog.Default().Error("trigger source failed", "error", err)
			}
			// Stdin closed: treat as an exit request.
			ed.Session.Exit()
		}()

		<-done
		cancel()

		if !ed.Controller.CloseRequiresConfirmation() {
			return
		}
		if recordNoSave {
			fmt.Fprintln(os.Stderr, "unsaved changes discarded (--no-save)")
			return
		}
		if err := ed.Controller.Save(context.Background()); err != nil {
			fatal("Failed to save project", err)
		}
		fmt.Printf("Saved %d slide(s) to %s\n", ed.Controller.SlideCount(), dir)
	},
}

func init() {
	rootCmd.AddCommand(recordCmd)
	recordCmd.Flags().BoolVar(&recordNoSave, "no-save", false, "Discard changes instead of saving on exit")
	recordCmd.Flags().BoolVar(&recordWatch, "watch", false, "Report external changes to the project document")
}

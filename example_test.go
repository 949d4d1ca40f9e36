package dahu_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dahuapp/dahu"
	"github.com/dahuapp/dahu/pkg/adapters/desktop"
)

// stepScreen produces predictable image names so the example output is
// stable. Real recordings use the desktop screen provider instead.
type stepScreen struct{ n int }

func (s *stepScreen) TakeScreen(ctx context.Context, targetDir string) (string, error) {
	s.n++
	return fmt.Sprintf("step-%d.png", s.n), nil
}

// Example_basic demonstrates how to record a short screencast and read
// the project back from disk.
func Example_basic() {
	// Create a temporary directory for the example
	tmpDir, err := os.MkdirTemp("", "dahu-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	// Key presses are pushed programmatically here; a frontend would
	// wire its own keyboard events into the same source.
	keys := desktop.NewKeySource()
	pointer := &desktop.Pointer{}

	ed := dahu.New(
		dahu.WithTriggerSource(keys),
		dahu.WithPointerProvider(pointer),
		dahu.WithScreenProvider(&stepScreen{}),
	)

	ctx := context.Background()

	// 1. Create a project and enter capture mode
	if err := ed.Controller.Create(ctx, tmpDir); err != nil {
		log.Fatal(err)
	}
	if err := ed.Session.Enter(ctx); err != nil {
		log.Fatal(err)
	}

	// 2. Take two slides, then leave capture mode
	pointer.Move(100, 80)
	keys.Push("c")
	pointer.Move(420, 310)
	keys.Push("c")
	keys.Push("esc")

	// 3. Save (Atomic Operation)
	if err := ed.Controller.Save(ctx); err != nil {
		log.Fatal(err)
	}

	// 4. Read it back with a fresh editor
	reopened := dahu.New()
	if err := reopened.Controller.Open(ctx, tmpDir); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Recorded %d slides\n", reopened.Controller.SlideCount())
	for path := range reopened.Controller.SlidePaths() {
		fmt.Println(path)
	}
	// Output:
	// Recorded 2 slides
	// step-1.png
	// step-2.png
}

// Package dahu is the Composition Root for the Dahu capture core.
//
// It connects the domain layer (slide model, project controller,
// capture session) with the infrastructure adapters (filesystem store,
// desktop capture collaborators) using the Hexagonal Architecture
// pattern.
//
// Dahu records a sequence of screen captures and cursor positions into
// an ordered slide list and persists it as a project: a directory
// holding a JSON document plus the captured images. Everything around
// that core (rendering, dialogs, real input hooks) stays behind small
// collaborator interfaces so hosts can supply their own.
//
// Usage:
//
//	// Assemble the editor with functional options
//	ed := dahu.New(
//		dahu.WithLogger(logger),
//	)
//
//	// Create a project, arm capture mode, record, save
//	err := ed.Controller.Create(ctx, "./demo")
//	err = ed.Session.Enter(ctx)
//	_, err = ed.Session.Capture()
//	ed.Session.Exit()
//	err = ed.Controller.Save(ctx)
package dahu

package core

import "context"

// Store defines the persistence contract for project documents.
// Adhering to this interface keeps the core independent of the
// underlying storage mechanism (filesystem, memory, remote).
type Store interface {
	// EnsureProjectDir makes dir usable as a project directory,
	// creating it if absent. Failure is reported as
	// ErrDirectoryUnavailable.
	EnsureProjectDir(ctx context.Context, dir string) error

	// LoadDocument reads and parses the project document inside dir.
	// A missing document is ErrProjectNotFound; a document that does
	// not parse is ErrMalformedDocument.
	LoadDocument(ctx context.Context, dir string) (Document, error)

	// SaveDocument writes doc as the project document inside dir.
	// Failure is reported as ErrPersistenceFailed and must leave any
	// previously saved document intact.
	SaveDocument(ctx context.Context, dir string, doc Document) error
}

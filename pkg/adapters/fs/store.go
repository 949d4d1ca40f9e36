package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dahuapp/dahu/pkg/core"
)

// Config holds the configuration for the project store.
type Config struct {
	Logger *slog.Logger

	// DocumentName overrides the project document filename.
	// Defaults to core.DocumentFileName.
	DocumentName string
}

// ProjectStore implements core.Store on the local filesystem. The
// project document is written atomically so an interrupted save never
// corrupts the previous one.
type ProjectStore struct {
	driver *Driver
	config Config
}

// NewProjectStore creates a filesystem-backed store.
func NewProjectStore(config Config) *ProjectStore {
	if config.DocumentName == "" {
		config.DocumentName = core.DocumentFileName
	}
	return &ProjectStore{
		driver: &Driver{Logger: config.Logger},
		config: config,
	}
}

// Driver exposes the underlying filesystem driver.
func (s *ProjectStore) Driver() *Driver { return s.driver }

// DocumentPath returns the full path of the project document under dir.
func (s *ProjectStore) DocumentPath(dir string) string {
	return filepath.Join(dir, s.config.DocumentName)
}

// EnsureProjectDir makes dir usable as a project directory, creating
// it if absent. An unusable or unwritable directory is reported as
// core.ErrDirectoryUnavailable.
func (s *ProjectStore) EnsureProjectDir(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.driver.Exists(dir) && !s.driver.IsDirectory(dir) {
		return fmt.Errorf("%w: %s is not a directory", core.ErrDirectoryUnavailable, dir)
	}
	if err := s.driver.CreateDirectory(dir); err != nil {
		return fmt.Errorf("%w: %v", core.ErrDirectoryUnavailable, err)
	}

	// Writability probe. MkdirAll succeeds on an existing read-only
	// directory, so creating a file is the only reliable check.
	probe, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("%w: %s is not writable", core.ErrDirectoryUnavailable, dir)
	}
	probe.Close()
	os.Remove(probe.Name())

	return nil
}

// LoadDocument reads and parses the project document inside dir.
func (s *ProjectStore) LoadDocument(ctx context.Context, dir string) (core.Document, error) {
	if err := ctx.Err(); err != nil {
		return core.Document{}, err
	}

	path := s.DocumentPath(dir)
	if !s.driver.Exists(path) {
		return core.Document{}, fmt.Errorf("%w: %s", core.ErrProjectNotFound, path)
	}

	text, err := s.driver.ReadText(path)
	if err != nil {
		return core.Document{}, fmt.Errorf("%w: %v", core.ErrProjectNotFound, err)
	}

	doc, err := core.ParseDocument([]byte(text))
	if err != nil {
		return core.Document{}, err
	}

	if s.config.Logger != nil {
		s.config.Logger.Debug("document loaded", "path", path, "slides", len(doc.Slides))
	}
	return doc, nil
}

// SaveDocument writes doc as the project document inside dir. The
// write is atomic: on failure the previously saved document is intact.
func (s *ProjectStore) SaveDocument(ctx context.Context, dir string, doc core.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := doc.Encode()
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrPersistenceFailed, err)
	}

	path := s.DocumentPath(dir)
	if err := s.driver.WriteText(path, string(data)); err != nil {
		return fmt.Errorf("%w: %v", core.ErrPersistenceFailed, err)
	}

	if s.config.Logger != nil {
		s.config.Logger.Debug("document saved", "path", path, "slides", len(doc.Slides))
	}
	return nil
}

var _ core.Store = (*ProjectStore)(nil)

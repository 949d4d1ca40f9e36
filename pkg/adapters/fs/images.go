package fs

import (
	"fmt"
	"iter"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// imagePattern matches the capture image files inside a project
// directory, at any depth.
const imagePattern = "**/*.png"

// ListImages returns the capture images under dir, as slash-separated
// paths relative to dir, in lexical order.
func (s *ProjectStore) ListImages(dir string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(filepath.Join(dir, imagePattern))
	if err != nil {
		return nil, fmt.Errorf("failed to scan images in %s: %w", dir, err)
	}

	images := make([]string, 0, len(matches))
	for _, m := range matches {
		rel, err := filepath.Rel(dir, m)
		if err != nil {
			return nil, err
		}
		images = append(images, filepath.ToSlash(rel))
	}
	return images, nil
}

// Orphans returns the images under dir that no slide references.
// referenced is the model's slide path sequence. Nothing is deleted;
// the caller decides what to do with the leftovers.
func (s *ProjectStore) Orphans(dir string, referenced iter.Seq[string]) ([]string, error) {
	images, err := s.ListImages(dir)
	if err != nil {
		return nil, err
	}

	used := make(map[string]bool)
	for p := range referenced {
		used[filepath.ToSlash(p)] = true
	}

	var orphans []string
	for _, img := range images {
		if !used[img] {
			orphans = append(orphans, img)
		}
	}
	return orphans, nil
}

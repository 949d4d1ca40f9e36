package fs

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	DocumentName string `json:"document_name"`
}

// State implements introspection.Introspectable.
func (s *ProjectStore) State() any {
	return StoreState{
		DocumentName: s.config.DocumentName,
	}
}

// ComponentType implements introspection.Component.
func (s *ProjectStore) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*ProjectStore)(nil)
var _ introspection.Component = (*ProjectStore)(nil)

package core

import (
	"github.com/aretw0/introspection"
)

// ControllerState exposes internal state for observability.
type ControllerState struct {
	HasProject  bool   `json:"has_project"`
	ProjectDir  string `json:"project_dir,omitempty"`
	Status      string `json:"status,omitempty"`
	Slides      int    `json:"slides"`
	Selected    int    `json:"selected"`
	Dirty       bool   `json:"dirty"`
	Subscribers int    `json:"subscribers"`
}

// State implements introspection.Introspectable.
func (c *Controller) State() any {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := ControllerState{
		Selected:    c.selected,
		Subscribers: c.bus.Len(),
	}
	if c.project != nil {
		state.HasProject = true
		state.ProjectDir = c.project.dir
		state.Status = string(c.project.status)
		state.Slides = c.project.model.Len()
		state.Dirty = c.project.dirty
	}
	return state
}

// ComponentType implements introspection.Component.
func (c *Controller) ComponentType() string {
	return "controller"
}

var _ introspection.Introspectable = (*Controller)(nil)
var _ introspection.Component = (*Controller)(nil)

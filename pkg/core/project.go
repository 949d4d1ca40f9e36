package core

// ProjectStatus records how the active project came to be.
type ProjectStatus string

const (
	// StatusCreated marks a project freshly created in an empty directory.
	StatusCreated ProjectStatus = "created"
	// StatusOpened marks a project loaded from an existing document.
	StatusOpened ProjectStatus = "opened"
)

// Project is the aggregate for one recording: a directory on disk, the
// slide model, and unsaved-change tracking. Exactly one project is
// active at a time; the Controller owns it exclusively and replaces it
// wholesale on create/open.
type Project struct {
	dir    string
	model  *SlideModel
	status ProjectStatus
	dirty  bool
}

func newProject(dir string, model *SlideModel, status ProjectStatus) *Project {
	return &Project{dir: dir, model: model, status: status}
}

// Dir returns the project directory.
func (p *Project) Dir() string { return p.dir }

// Status reports whether the project was created or opened.
func (p *Project) Status() ProjectStatus { return p.status }

// Dirty reports whether the in-memory model diverges from the last
// persisted document.
func (p *Project) Dirty() bool { return p.dirty }

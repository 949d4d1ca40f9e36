package core

import "errors"

// Common errors. All of them are recoverable: operations that return
// one of these perform no partial mutation, so callers can report the
// failure and keep the in-memory model as it was.
var (
	// ErrInvalidSlideData indicates a slide with an empty image path.
	ErrInvalidSlideData = errors.New("invalid slide data")

	// ErrMalformedDocument indicates a project document that is not
	// valid JSON or does not match the expected shape.
	ErrMalformedDocument = errors.New("malformed project document")

	// ErrProjectNotFound indicates a directory without a project document.
	ErrProjectNotFound = errors.New("project document not found")

	// ErrDirectoryUnavailable indicates the project directory could not
	// be created or is not usable.
	ErrDirectoryUnavailable = errors.New("project directory unavailable")

	// ErrPersistenceFailed indicates the project document could not be written.
	ErrPersistenceFailed = errors.New("failed to persist project document")

	// ErrCaptureFailed indicates the capture collaborator could not
	// produce an image.
	ErrCaptureFailed = errors.New("screen capture failed")

	// ErrNoActiveProject indicates an operation that needs a project
	// was invoked before one was created or opened.
	ErrNoActiveProject = errors.New("no active project")

	// ErrSaveWhileCapturing rejects saving while capture mode is armed.
	ErrSaveWhileCapturing = errors.New("cannot save while capture mode is armed")

	// ErrNotArmed rejects a capture request while capture mode is off.
	ErrNotArmed = errors.New("capture mode is not armed")
)

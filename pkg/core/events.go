package core

// EventType represents the type of change in the active project.
type EventType string

const (
	EventProjectCreated   EventType = "PROJECT_CREATED"
	EventProjectOpened    EventType = "PROJECT_OPENED"
	EventProjectSaved     EventType = "PROJECT_SAVED"
	EventSlideAdded       EventType = "SLIDE_ADDED"
	EventSelectionChanged EventType = "SELECTION_CHANGED"
	EventCaptureArmed     EventType = "CAPTURE_ARMED"
	EventCaptureDisarmed  EventType = "CAPTURE_DISARMED"
	EventCaptureFailed    EventType = "CAPTURE_FAILED"
	EventDocumentModified EventType = "DOCUMENT_MODIFIED"
)

// Event represents a change a presentation layer may want to react to.
// Path carries the slide image path for slide events and the project
// directory for project events. Index is the slide index for selection
// and slide-added events, -1 otherwise.
type Event struct {
	Type      EventType
	Path      string
	Index     int
	Timestamp int64 // Unix timestamp
}

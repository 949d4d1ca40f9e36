package core

import (
	"encoding/json"
	"fmt"
)

// DocumentFileName is the fixed name of the project document inside a
// project directory.
const DocumentFileName = "presentation.dahu"

// Document is the persisted form of a slide model: the JSON contract
// between the in-memory model and disk.
type Document struct {
	Slides []SlideRecord `json:"slides"`
}

// SlideRecord is one slide entry in a project document.
type SlideRecord struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// Validate checks the document shape: the slides field must be present
// and every entry must carry an image path.
func (d Document) Validate() error {
	if d.Slides == nil {
		return fmt.Errorf("%w: missing slides field", ErrMalformedDocument)
	}
	for i, r := range d.Slides {
		if r.Path == "" {
			return fmt.Errorf("%w: slide %d has no path", ErrMalformedDocument, i)
		}
	}
	return nil
}

// Encode renders the document as indented UTF-8 JSON.
func (d Document) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return append(data, '\n'), nil
}

// ParseDocument decodes and validates a project document. Any shape
// violation (invalid JSON, missing slides field, non-array value, a
// slide entry without a path) fails with ErrMalformedDocument.
func ParseDocument(data []byte) (Document, error) {
	// A pointer distinguishes an absent slides field from an empty list.
	var raw struct {
		Slides *[]SlideRecord `json:"slides"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if raw.Slides == nil {
		return Document{}, fmt.Errorf("%w: missing slides field", ErrMalformedDocument)
	}

	doc := Document{Slides: *raw.Slides}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Slide is the central entity of the domain.
package core

import "iter"

// Slide is one captured moment: a screen image plus the cursor
// position recorded at capture time. Slides are immutable once created.
type Slide struct {
	Path string
	X    int
	Y    int
}

// SlideModel is an ordered sequence of slides. Insertion order is
// presentation order; there is no independent sort key.
//
// SlideModel is not safe for concurrent use. All mutation is expected
// to happen on a single logical thread of control; the Controller
// serializes access for its own project.
type SlideModel struct {
	slides []Slide
}

// NewSlideModel creates a model with zero slides.
func NewSlideModel() *SlideModel {
	return &SlideModel{}
}

// AddSlide appends a slide to the end of the sequence and returns it.
// An empty image path fails with ErrInvalidSlideData and leaves the
// sequence untouched.
func (m *SlideModel) AddSlide(path string, x, y int) (Slide, error) {
	if path == "" {
		return Slide{}, ErrInvalidSlideData
	}

	s := Slide{Path: path, X: x, Y: y}
	m.slides = append(m.slides, s)
	return s, nil
}

// Len reports the number of slides.
func (m *SlideModel) Len() int {
	return len(m.slides)
}

// Slides returns a copy of the slide sequence in insertion order.
func (m *SlideModel) Slides() []Slide {
	out := make([]Slide, len(m.slides))
	copy(out, m.slides)
	return out
}

// SlidePaths returns the image paths in insertion order. The sequence
// is a snapshot taken at call time and can be ranged over more than
// once; later mutations of the model do not show through.
func (m *SlideModel) SlidePaths() iter.Seq[string] {
	paths := make([]string, len(m.slides))
	for i, s := range m.slides {
		paths[i] = s.Path
	}
	return func(yield func(string) bool) {
		for _, p := range paths {
			if !yield(p) {
				return
			}
		}
	}
}

// ToDocument serializes the model into a project document. Pure: the
// model is not modified and the document holds its own copy.
func (m *SlideModel) ToDocument() Document {
	doc := Document{Slides: make([]SlideRecord, len(m.slides))}
	for i, s := range m.slides {
		doc.Slides[i] = SlideRecord{Path: s.Path, X: s.X, Y: s.Y}
	}
	return doc
}

// FromDocument replaces the slide sequence with the one described by
// doc. The replacement is atomic: if the document fails validation the
// prior sequence is left untouched.
func (m *SlideModel) FromDocument(doc Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	slides := make([]Slide, len(doc.Slides))
	for i, r := range doc.Slides {
		slides[i] = Slide{Path: r.Path, X: r.X, Y: r.Y}
	}
	m.slides = slides
	return nil
}

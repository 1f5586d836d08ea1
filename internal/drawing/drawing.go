// Package drawing owns the canonical list of shapes and the undo/redo log of
// operations that mutate it.
package drawing

import (
	"github.com/example/shineydraw/internal/shape"
	"github.com/google/uuid"
)

// Drawing is an ordered list of shapes; later shapes are drawn on top.
// It is mutated only by Operations applied through a Stack.
type Drawing struct {
	shapes []shape.Shape
}

// New returns an empty drawing.
func New() *Drawing {
	return &Drawing{}
}

// Shapes returns the shapes in z-order. The slice is a copy; the shapes are not.
func (d *Drawing) Shapes() []shape.Shape {
	out := make([]shape.Shape, len(d.shapes))
	copy(out, d.shapes)
	return out
}

// Len returns the number of shapes.
func (d *Drawing) Len() int { return len(d.shapes) }

// Find returns the shape with the given id.
func (d *Drawing) Find(id uuid.UUID) (shape.Shape, bool) {
	for _, s := range d.shapes {
		if s.ID() == id {
			return s, true
		}
	}
	return nil, false
}

// Topmost returns the last shape in z-order for which hit reports true.
func (d *Drawing) Topmost(hit func(shape.Shape) bool) (shape.Shape, bool) {
	for i := len(d.shapes) - 1; i >= 0; i-- {
		if hit(d.shapes[i]) {
			return d.shapes[i], true
		}
	}
	return nil, false
}

func (d *Drawing) add(s shape.Shape) {
	d.shapes = append(d.shapes, s)
}

// remove deletes s, searching from the top since the most recent addition is
// the usual target.
func (d *Drawing) remove(s shape.Shape) bool {
	for i := len(d.shapes) - 1; i >= 0; i-- {
		if d.shapes[i] == s {
			d.shapes = append(d.shapes[:i], d.shapes[i+1:]...)
			return true
		}
	}
	return false
}

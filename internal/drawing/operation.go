package drawing

import (
	"github.com/example/shineydraw/internal/geom"
	"github.com/example/shineydraw/internal/shape"
)

// Operation is an atomic, reversible change to a Drawing. Revert must restore
// exactly the state Apply started from.
type Operation interface {
	Name() string
	Apply(d *Drawing)
	Revert(d *Drawing)
}

// AddShape appends a shape to the drawing.
type AddShape struct {
	Shape shape.Shape
}

func (op *AddShape) Name() string { return "add " + op.Shape.Name() }

func (op *AddShape) Apply(d *Drawing) { d.add(op.Shape) }

func (op *AddShape) Revert(d *Drawing) {
	if !d.remove(op.Shape) {
		Logger().Warn("revert add: shape not in drawing", "shape", op.Shape.ID())
	}
}

// ChangeTransform replaces a shape's transform.
type ChangeTransform struct {
	Shape     shape.Shape
	Transform shape.Transform
	Original  shape.Transform
}

func (op *ChangeTransform) Name() string { return "transform " + op.Shape.Name() }

func (op *ChangeTransform) Apply(*Drawing) { op.Shape.SetTransform(op.Transform) }

func (op *ChangeTransform) Revert(*Drawing) { op.Shape.SetTransform(op.Original) }

// ResizeTwoPoint moves both anchors of a two-point shape.
type ResizeTwoPoint struct {
	Shape                shape.TwoPoint
	OriginalA, OriginalB geom.Point
	UpdatedA, UpdatedB   geom.Point
}

func (op *ResizeTwoPoint) Name() string { return "resize " + op.Shape.Name() }

func (op *ResizeTwoPoint) Apply(*Drawing) {
	op.Shape.SetA(op.UpdatedA)
	op.Shape.SetB(op.UpdatedB)
}

func (op *ResizeTwoPoint) Revert(*Drawing) {
	op.Shape.SetA(op.OriginalA)
	op.Shape.SetB(op.OriginalB)
}

// ResizeThreePoint moves all three anchors of a three-point shape.
type ResizeThreePoint struct {
	Shape                           shape.ThreePoint
	OriginalA, OriginalB, OriginalC geom.Point
	UpdatedA, UpdatedB, UpdatedC    geom.Point
}

func (op *ResizeThreePoint) Name() string { return "resize " + op.Shape.Name() }

func (op *ResizeThreePoint) Apply(*Drawing) {
	op.Shape.SetA(op.UpdatedA)
	op.Shape.SetB(op.UpdatedB)
	op.Shape.SetC(op.UpdatedC)
}

func (op *ResizeThreePoint) Revert(*Drawing) {
	op.Shape.SetA(op.OriginalA)
	op.Shape.SetB(op.OriginalB)
	op.Shape.SetC(op.OriginalC)
}

// NewResize builds the resize operation matching the capabilities of s from
// before/after anchor lists in A, B, C order. It returns false when s is not
// point-capable or the lists do not fit it.
func NewResize(s shape.Shape, original, updated []geom.Point) (Operation, bool) {
	if tp, ok := shape.AsThreePoint(s); ok {
		if len(original) != 3 || len(updated) != 3 {
			return nil, false
		}
		return &ResizeThreePoint{
			Shape:     tp,
			OriginalA: original[0], OriginalB: original[1], OriginalC: original[2],
			UpdatedA: updated[0], UpdatedB: updated[1], UpdatedC: updated[2],
		}, true
	}
	if tp, ok := shape.AsTwoPoint(s); ok {
		if len(original) != 2 || len(updated) != 2 {
			return nil, false
		}
		return &ResizeTwoPoint{
			Shape:     tp,
			OriginalA: original[0], OriginalB: original[1],
			UpdatedA: updated[0], UpdatedB: updated[1],
		}, true
	}
	return nil, false
}

// ApplyStyle replaces the style fields of a shape.
type ApplyStyle struct {
	Shape    shape.Shape
	Style    shape.Style
	Original shape.Style
}

func (op *ApplyStyle) Name() string { return "style " + op.Shape.Name() }

func (op *ApplyStyle) Apply(*Drawing) { shape.SetStyle(op.Shape, op.Style) }

func (op *ApplyStyle) Revert(*Drawing) { shape.SetStyle(op.Shape, op.Original) }

// Group applies several operations as one history entry. Children are
// applied in order and reverted in reverse order.
type Group struct {
	Label string
	Ops   []Operation
}

func (op *Group) Name() string { return op.Label }

func (op *Group) Apply(d *Drawing) {
	for _, child := range op.Ops {
		child.Apply(d)
	}
}

func (op *Group) Revert(d *Drawing) {
	for i := len(op.Ops) - 1; i >= 0; i-- {
		op.Ops[i].Revert(d)
	}
}

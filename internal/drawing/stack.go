package drawing

// Stack is the undo/redo log for a Drawing. Applying a new operation clears
// the redo history so there is only ever one timeline.
type Stack struct {
	drawing *Drawing
	undo    []Operation
	redo    []Operation

	// OnDirty is called once after every change to the drawing made through
	// the stack. The renderer uses it as its redraw signal.
	OnDirty func()
}

// NewStack returns an empty stack mutating d.
func NewStack(d *Drawing) *Stack {
	return &Stack{drawing: d}
}

// Drawing returns the drawing the stack mutates.
func (s *Stack) Drawing() *Drawing { return s.drawing }

// Apply performs op, records it for undo and clears the redo history.
func (s *Stack) Apply(op Operation) {
	if op == nil {
		return
	}
	op.Apply(s.drawing)
	s.undo = append(s.undo, op)
	s.redo = nil
	Logger().Debug("apply", "op", op.Name(), "undo", len(s.undo))
	s.dirty()
}

// Amend replaces the most recent operation with op as a single step: the
// previous operation is reverted, op is applied and takes its place in the
// undo history. With an empty history Amend behaves like Apply.
func (s *Stack) Amend(op Operation) {
	if op == nil {
		return
	}
	n := len(s.undo)
	if n == 0 {
		s.Apply(op)
		return
	}
	s.undo[n-1].Revert(s.drawing)
	op.Apply(s.drawing)
	s.undo[n-1] = op
	s.redo = nil
	Logger().Debug("amend", "op", op.Name(), "undo", len(s.undo))
	s.dirty()
}

// Undo reverts the most recent operation. It is a no-op on an empty history.
func (s *Stack) Undo() {
	n := len(s.undo)
	if n == 0 {
		return
	}
	op := s.undo[n-1]
	s.undo = s.undo[:n-1]
	op.Revert(s.drawing)
	s.redo = append(s.redo, op)
	Logger().Debug("undo", "op", op.Name(), "redo", len(s.redo))
	s.dirty()
}

// Redo re-applies the most recently undone operation. It is a no-op when
// nothing has been undone.
func (s *Stack) Redo() {
	n := len(s.redo)
	if n == 0 {
		return
	}
	op := s.redo[n-1]
	s.redo = s.redo[:n-1]
	op.Apply(s.drawing)
	s.undo = append(s.undo, op)
	Logger().Debug("redo", "op", op.Name(), "undo", len(s.undo))
	s.dirty()
}

// CanUndo reports whether Undo would do anything.
func (s *Stack) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo reports whether Redo would do anything.
func (s *Stack) CanRedo() bool { return len(s.redo) > 0 }

// UndoDepth returns the number of operations that can be undone.
func (s *Stack) UndoDepth() int { return len(s.undo) }

// RedoDepth returns the number of operations that can be redone.
func (s *Stack) RedoDepth() int { return len(s.redo) }

// Last returns the most recent undoable operation.
func (s *Stack) Last() (Operation, bool) {
	if len(s.undo) == 0 {
		return nil, false
	}
	return s.undo[len(s.undo)-1], true
}

// Clear forgets both histories without touching the drawing.
func (s *Stack) Clear() {
	s.undo = nil
	s.redo = nil
}

func (s *Stack) dirty() {
	if s.OnDirty != nil {
		s.OnDirty()
	}
}

package script

import (
	"fmt"
	"io"

	"github.com/example/shineydraw/internal/geom"
	"github.com/example/shineydraw/internal/shape"
)

// Target receives the gestures of a script. appstate.Editor implements it.
type Target interface {
	SetTool(name string) error
	Tap(p geom.Point)
	DragStart(p geom.Point)
	DragContinue(p, velocity geom.Point)
	DragEnd(p geom.Point)
	DragCancel(p geom.Point)
	PinchStart(start, end geom.Point, scale float64)
	PinchContinue(start, end geom.Point, scale float64)
	PinchEnd(start, end geom.Point, scale float64)
	PinchCancel(start, end geom.Point, scale float64)
	RotateStart(angle float64)
	RotateContinue(angle float64)
	RotateEnd(angle float64)
	RotateCancel(angle float64)
	Undo()
	Redo()
	Settings() shape.Settings
	ApplySettings(s shape.Settings)
}

// Play sends cmds to t in order. Drag velocity is the distance moved since
// the previous drag command.
func Play(t Target, cmds []Command) error {
	var last geom.Point
	for _, c := range cmds {
		logger().Debug("script command", "line", c.Line, "command", c.Name)
		switch c.Name {
		case "tool":
			if err := t.SetTool(c.Arg); err != nil {
				return fmt.Errorf("line %d: %w", c.Line, err)
			}
		case "tap":
			t.Tap(c.Points[0])
		case "drag":
			p := c.Points[0]
			switch c.Phase {
			case PhaseStart:
				t.DragStart(p)
			case PhaseMove:
				t.DragContinue(p, p.Sub(last))
			case PhaseEnd:
				t.DragEnd(p)
			case PhaseCancel:
				t.DragCancel(p)
			}
			last = p
		case "pinch":
			a, b := c.Points[0], c.Points[1]
			switch c.Phase {
			case PhaseStart:
				t.PinchStart(a, b, c.Value)
			case PhaseMove:
				t.PinchContinue(a, b, c.Value)
			case PhaseEnd:
				t.PinchEnd(a, b, c.Value)
			case PhaseCancel:
				t.PinchCancel(a, b, c.Value)
			}
		case "rotate":
			switch c.Phase {
			case PhaseStart:
				t.RotateStart(c.Value)
			case PhaseMove:
				t.RotateContinue(c.Value)
			case PhaseEnd:
				t.RotateEnd(c.Value)
			case PhaseCancel:
				t.RotateCancel(c.Value)
			}
		case "undo":
			t.Undo()
		case "redo":
			t.Redo()
		case "stroke":
			s := t.Settings()
			s.StrokeColor = c.Color
			t.ApplySettings(s)
		case "fill":
			s := t.Settings()
			s.FillColor = c.Color
			t.ApplySettings(s)
		case "width":
			s := t.Settings()
			s.StrokeWidth = c.Value
			t.ApplySettings(s)
		default:
			return fmt.Errorf("line %d: %w %q", c.Line, ErrUnknownCommand, c.Name)
		}
	}
	return nil
}

// Run parses r and plays it on t.
func Run(t Target, r io.Reader) error {
	cmds, err := Parse(r)
	if err != nil {
		return err
	}
	return Play(t, cmds)
}

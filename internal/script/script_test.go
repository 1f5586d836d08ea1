package script

import (
	"errors"
	"fmt"
	"image/color"
	"reflect"
	"strings"
	"testing"

	"github.com/example/shineydraw/internal/geom"
	"github.com/example/shineydraw/internal/shape"
)

func TestParse(t *testing.T) {
	src := `# two shapes
tool line
stroke #ff0000 # red
fill none
width 6

drag start 1 2
drag move 3 4
drag end 5 6
pinch start 0 0 10 10 1
rotate end 0.5
undo
`
	cmds, err := ParseString(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var names []string
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	want := []string{"tool", "stroke", "fill", "width", "drag", "drag", "drag", "pinch", "rotate", "undo"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("commands %v want %v", names, want)
	}
	if cmds[0].Arg != "line" {
		t.Errorf("tool arg %q", cmds[0].Arg)
	}
	if cmds[1].Color != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("stroke %v", cmds[1].Color)
	}
	if cmds[2].Color != (color.RGBA{}) {
		t.Errorf("fill none %v", cmds[2].Color)
	}
	if cmds[3].Value != 6 {
		t.Errorf("width %v", cmds[3].Value)
	}
	if cmds[5].Phase != PhaseMove || cmds[5].Points[0] != (geom.Point{X: 3, Y: 4}) || cmds[5].Line != 8 {
		t.Errorf("drag move %+v", cmds[5])
	}
	if len(cmds[7].Points) != 2 || cmds[7].Value != 1 {
		t.Errorf("pinch %+v", cmds[7])
	}
	if cmds[8].Phase != PhaseEnd || cmds[8].Value != 0.5 {
		t.Errorf("rotate %+v", cmds[8])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
		err  error
	}{
		{"unknown", "tool line\nzoom 2", 2, ErrUnknownCommand},
		{"drag phase", "drag sideways 1 1", 1, ErrArguments},
		{"drag coords", "drag start 1", 1, ErrArguments},
		{"tap number", "\n\ntap x 1", 3, ErrArguments},
		{"colour", "stroke #12", 1, ErrArguments},
		{"width", "width -1", 1, ErrArguments},
		{"width nan", "width NaN", 1, ErrArguments},
		{"tap infinity", "tap 1 1\ntap Inf 1", 2, ErrArguments},
		{"pinch nan scale", "pinch start 0 0 1 1 nan", 1, ErrArguments},
		{"undo args", "undo 2", 1, ErrArguments},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.src)
			if !errors.Is(err, tt.err) {
				t.Fatalf("error %v want %v", err, tt.err)
			}
			if prefix := fmt.Sprintf("line %d:", tt.line); !strings.HasPrefix(err.Error(), prefix) {
				t.Fatalf("error %q does not start with %q", err, prefix)
			}
		})
	}
}

type recorder struct {
	calls    []string
	settings shape.Settings
	tools    map[string]bool
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) SetTool(name string) error {
	if !r.tools[name] {
		return errors.New("unknown tool")
	}
	r.add("tool %s", name)
	return nil
}

func (r *recorder) Tap(p geom.Point)                         { r.add("tap %v", p) }
func (r *recorder) DragStart(p geom.Point)                   { r.add("drag start %v", p) }
func (r *recorder) DragContinue(p, v geom.Point)             { r.add("drag move %v %v", p, v) }
func (r *recorder) DragEnd(p geom.Point)                     { r.add("drag end %v", p) }
func (r *recorder) DragCancel(p geom.Point)                  { r.add("drag cancel %v", p) }
func (r *recorder) PinchStart(a, b geom.Point, s float64)    { r.add("pinch start %v", s) }
func (r *recorder) PinchContinue(a, b geom.Point, s float64) { r.add("pinch move %v", s) }
func (r *recorder) PinchEnd(a, b geom.Point, s float64)      { r.add("pinch end %v", s) }
func (r *recorder) PinchCancel(a, b geom.Point, s float64)   { r.add("pinch cancel %v", s) }
func (r *recorder) RotateStart(a float64)                    { r.add("rotate start %v", a) }
func (r *recorder) RotateContinue(a float64)                 { r.add("rotate move %v", a) }
func (r *recorder) RotateEnd(a float64)                      { r.add("rotate end %v", a) }
func (r *recorder) RotateCancel(a float64)                   { r.add("rotate cancel %v", a) }
func (r *recorder) Undo()                                    { r.add("undo") }
func (r *recorder) Redo()                                    { r.add("redo") }
func (r *recorder) Settings() shape.Settings                 { return r.settings }
func (r *recorder) ApplySettings(s shape.Settings)           { r.settings = s; r.add("settings") }

func TestPlay(t *testing.T) {
	r := &recorder{tools: map[string]bool{"rect": true}}
	src := "tool rect\ndrag start 0 0\ndrag move 4 3\ndrag end 4 3\nwidth 8\nrotate cancel 1\nredo"
	if err := Run(r, strings.NewReader(src)); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []string{
		"tool rect",
		"drag start {0 0}",
		"drag move {4 3} {4 3}",
		"drag end {4 3}",
		"settings",
		"rotate cancel 1",
		"redo",
	}
	if !reflect.DeepEqual(r.calls, want) {
		t.Fatalf("calls\n%q\nwant\n%q", r.calls, want)
	}
	if r.settings.StrokeWidth != 8 {
		t.Fatalf("width %v", r.settings.StrokeWidth)
	}
}

func TestPlayToolErrorNamesLine(t *testing.T) {
	r := &recorder{tools: map[string]bool{}}
	err := Run(r, strings.NewReader("undo\ntool spray"))
	if err == nil || !strings.HasPrefix(err.Error(), "line 2:") {
		t.Fatalf("error %v", err)
	}
	if len(r.calls) != 1 {
		t.Fatalf("calls %v", r.calls)
	}
}

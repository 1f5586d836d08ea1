// Package script parses and plays line oriented gesture scripts. Each line
// is one command, blank lines and text after '#' are ignored:
//
//	tool line
//	stroke #ff0000
//	drag start 10 10
//	drag move 40 40
//	drag end 80 80
//	undo
package script

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/example/shineydraw/internal/geom"
	"github.com/example/shineydraw/internal/shape"
)

var (
	// ErrUnknownCommand reports a line whose first word is not a command.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrArguments reports a command with missing or malformed arguments.
	ErrArguments = errors.New("bad arguments")
)

// Phase is the stage of a continuous gesture.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseMove
	PhaseEnd
	PhaseCancel
)

var phaseNames = map[string]Phase{
	"start":    PhaseStart,
	"move":     PhaseMove,
	"continue": PhaseMove,
	"end":      PhaseEnd,
	"cancel":   PhaseCancel,
}

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	case PhaseCancel:
		return "cancel"
	}
	return "unknown"
}

// Command is one parsed script line.
type Command struct {
	Line   int
	Name   string
	Phase  Phase
	Points []geom.Point
	// Value holds the pinch scale, the rotation angle in radians or the
	// stroke width.
	Value float64
	Color color.RGBA
	// Arg holds the tool name.
	Arg string
}

// Parse reads commands from r. Errors name the offending line.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		fields := stripComment(strings.Fields(sc.Text()))
		if len(fields) == 0 {
			continue
		}
		cmd, err := parseCommand(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		cmd.Line = n
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return cmds, nil
}

// ParseString parses a script held in memory.
func ParseString(s string) ([]Command, error) {
	return Parse(strings.NewReader(s))
}

// stripComment drops everything from the first word starting with '#',
// except a colour literal given to stroke or fill.
func stripComment(fields []string) []string {
	for i, f := range fields {
		if !strings.HasPrefix(f, "#") {
			continue
		}
		if i == 1 && isColorCommand(fields[0]) {
			continue
		}
		return fields[:i]
	}
	return fields
}

func isColorCommand(name string) bool {
	switch strings.ToLower(name) {
	case "stroke", "fill":
		return true
	}
	return false
}

func parseCommand(fields []string) (Command, error) {
	name := strings.ToLower(fields[0])
	args := fields[1:]
	cmd := Command{Name: name}
	switch name {
	case "tool":
		if len(args) != 1 {
			return cmd, fmt.Errorf("%s: %w: want a tool name", name, ErrArguments)
		}
		cmd.Arg = strings.ToLower(args[0])
	case "tap":
		pts, err := parsePoints(args, 1)
		if err != nil {
			return cmd, fmt.Errorf("%s: %w", name, err)
		}
		cmd.Points = pts
	case "drag":
		if len(args) != 3 {
			return cmd, fmt.Errorf("%s: %w: want phase x y", name, ErrArguments)
		}
		phase, err := parsePhase(args[0])
		if err != nil {
			return cmd, fmt.Errorf("%s: %w", name, err)
		}
		pts, err := parsePoints(args[1:], 1)
		if err != nil {
			return cmd, fmt.Errorf("%s: %w", name, err)
		}
		cmd.Phase, cmd.Points = phase, pts
	case "pinch":
		if len(args) != 6 {
			return cmd, fmt.Errorf("%s: %w: want phase x0 y0 x1 y1 scale", name, ErrArguments)
		}
		phase, err := parsePhase(args[0])
		if err != nil {
			return cmd, fmt.Errorf("%s: %w", name, err)
		}
		pts, err := parsePoints(args[1:5], 2)
		if err != nil {
			return cmd, fmt.Errorf("%s: %w", name, err)
		}
		scale, err := parseFloat(args[5])
		if err != nil {
			return cmd, fmt.Errorf("%s: %w", name, err)
		}
		cmd.Phase, cmd.Points, cmd.Value = phase, pts, scale
	case "rotate":
		if len(args) != 2 {
			return cmd, fmt.Errorf("%s: %w: want phase angle", name, ErrArguments)
		}
		phase, err := parsePhase(args[0])
		if err != nil {
			return cmd, fmt.Errorf("%s: %w", name, err)
		}
		angle, err := parseFloat(args[1])
		if err != nil {
			return cmd, fmt.Errorf("%s: %w", name, err)
		}
		cmd.Phase, cmd.Value = phase, angle
	case "undo", "redo":
		if len(args) != 0 {
			return cmd, fmt.Errorf("%s: %w: takes no arguments", name, ErrArguments)
		}
	case "stroke", "fill":
		if len(args) != 1 {
			return cmd, fmt.Errorf("%s: %w: want a colour", name, ErrArguments)
		}
		col, err := shape.ParseColor(args[0])
		if err != nil {
			return cmd, fmt.Errorf("%s: %w: %v", name, ErrArguments, err)
		}
		cmd.Color = col
	case "width":
		if len(args) != 1 {
			return cmd, fmt.Errorf("%s: %w: want a number", name, ErrArguments)
		}
		w, err := parseFloat(args[0])
		if err != nil {
			return cmd, fmt.Errorf("%s: %w", name, err)
		}
		if !(w > 0) {
			return cmd, fmt.Errorf("%s: %w: width must be positive", name, ErrArguments)
		}
		cmd.Value = w
	default:
		return cmd, fmt.Errorf("%w %q", ErrUnknownCommand, fields[0])
	}
	return cmd, nil
}

func parsePhase(s string) (Phase, error) {
	p, ok := phaseNames[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("%w: unknown phase %q", ErrArguments, s)
	}
	return p, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrArguments, s)
	}
	return v, nil
}

func parsePoints(args []string, n int) ([]geom.Point, error) {
	if len(args) != 2*n {
		return nil, fmt.Errorf("%w: want %d coordinates", ErrArguments, 2*n)
	}
	pts := make([]geom.Point, n)
	for i := range pts {
		x, err := parseFloat(args[2*i])
		if err != nil {
			return nil, err
		}
		y, err := parseFloat(args[2*i+1])
		if err != nil {
			return nil, err
		}
		pts[i] = geom.Point{X: x, Y: y}
	}
	return pts, nil
}

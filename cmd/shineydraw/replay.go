package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/example/shineydraw/internal/appstate"
	"github.com/example/shineydraw/internal/clipboard"
	"github.com/example/shineydraw/internal/render"
	"github.com/example/shineydraw/internal/script"
	"github.com/example/shineydraw/internal/tool"
)

// replayCmd plays gesture scripts against a fresh drawing and writes the
// result as PNG.
type replayCmd struct {
	*root
	fs          *flag.FlagSet
	output      string
	width       int
	height      int
	toClipboard bool
	shadow      bool
	toolName    string
	scripts     []string
	stdin       io.Reader
}

func (c *replayCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseReplayCmd(args []string, r *root) (*replayCmd, error) {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	c := &replayCmd{root: r, fs: fs, stdin: os.Stdin}
	fs.StringVar(&c.output, "output", "", "write the PNG to this file, - for stdout")
	fs.IntVar(&c.width, "width", 800, "canvas width in pixels")
	fs.IntVar(&c.height, "height", 600, "canvas height in pixels")
	fs.BoolVar(&c.toClipboard, "to-clipboard", false, "copy the PNG to the clipboard")
	fs.BoolVar(&c.shadow, "shadow", false, "draw a drop shadow under the shapes")
	fs.StringVar(&c.toolName, "tool", tool.NameSelection, "tool active before the first command")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	c.scripts = fs.Args()
	if len(c.scripts) == 0 {
		c.scripts = []string{"-"}
	}
	if c.width <= 0 || c.height <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %dx%d", c.width, c.height)
	}
	if c.output == "" && !c.toClipboard {
		if dir := c.saveDir(); dir != "" {
			c.output = filepath.Join(dir, "drawing.png")
		} else {
			return nil, errors.New("an output file or -to-clipboard is required")
		}
	}
	return c, nil
}

func (c *replayCmd) saveDir() string {
	if c.root == nil || c.root.config == nil {
		return ""
	}
	return c.root.config.SaveDir
}

func (c *replayCmd) Run() error {
	opts, err := c.root.editorOptions()
	if err != nil {
		return err
	}
	opts = append(opts, appstate.WithTool(c.toolName))
	if c.shadow {
		opts = append(opts, appstate.WithShadow(render.DefaultShadowOptions()))
	}
	ed, err := appstate.New(opts...)
	if err != nil {
		return err
	}
	for _, name := range c.scripts {
		if err := c.play(ed, name); err != nil {
			return err
		}
	}

	switch c.output {
	case "":
	case "-":
		if err := ed.EncodePNG(c.root.stdout, c.width, c.height); err != nil {
			return fmt.Errorf("write png: %w", err)
		}
	default:
		if dir := filepath.Dir(c.output); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
		}
		if err := ed.SavePNG(c.output, c.width, c.height); err != nil {
			return err
		}
		c.root.notifySave(c.output)
	}

	if c.toClipboard {
		img := ed.Export(c.width, c.height)
		if err := clipboard.WriteImage(img); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		c.root.notifyCopy("drawing", img)
	}
	return nil
}

func (c *replayCmd) play(ed *appstate.Editor, name string) error {
	if name == "-" {
		if err := script.Run(ed, c.stdin); err != nil {
			return fmt.Errorf("stdin: %w", err)
		}
		return nil
	}
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	if err := script.Run(ed, f); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

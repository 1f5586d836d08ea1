package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/shineydraw/internal/appstate"
	"github.com/example/shineydraw/internal/script"
	"github.com/example/shineydraw/internal/tool"
)

// editCmd opens the drawing window.
type editCmd struct {
	*root
	fs       *flag.FlagSet
	output   string
	width    int
	height   int
	toolName string
	script   string
}

func (c *editCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	c := &editCmd{root: r, fs: fs}
	fs.StringVar(&c.output, "output", "", "file written by Ctrl+S (default drawing.png in the save directory)")
	fs.IntVar(&c.width, "width", 800, "canvas width in pixels")
	fs.IntVar(&c.height, "height", 600, "canvas height in pixels")
	fs.StringVar(&c.toolName, "tool", tool.NameSelection, "initially active tool")
	fs.StringVar(&c.script, "script", "", "gesture script played before the window opens")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	if c.output == "" {
		dir := "."
		if r != nil && r.config != nil && r.config.SaveDir != "" {
			dir = r.config.SaveDir
		}
		c.output = filepath.Join(dir, "drawing.png")
	}
	return c, nil
}

func (c *editCmd) Run() error {
	opts, err := c.root.editorOptions()
	if err != nil {
		return err
	}
	opts = append(opts, appstate.WithTool(c.toolName))
	ed, err := appstate.New(opts...)
	if err != nil {
		return err
	}
	if c.script != "" {
		f, err := os.Open(c.script)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		err = script.Run(ed, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", c.script, err)
		}
	}
	win := appstate.NewWindow(ed,
		appstate.WithOutput(c.output),
		appstate.WithSize(c.width, c.height),
		appstate.WithNotifier(c.root.notifier),
	)
	win.Run()
	return nil
}

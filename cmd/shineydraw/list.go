package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/example/shineydraw/internal/appstate"
	"github.com/example/shineydraw/internal/shape"
	"github.com/example/shineydraw/internal/theme"
)

// listCmd prints one of the built-in catalogues.
type listCmd struct {
	*root
	fs   *flag.FlagSet
	name string
	run  func(*listCmd) error
}

func parseListCmd(name string, args []string, r *root, run func(*listCmd) error) (*listCmd, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cmd := &listCmd{root: r, fs: fs, name: name, run: run}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *listCmd) Run() error { return c.run(c) }

func (c *listCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *listCmd) Template() string {
	return c.name + ".txt"
}

func parseToolsCmd(args []string, r *root) (*listCmd, error) {
	return parseListCmd("tools", args, r, func(c *listCmd) error {
		ed, err := appstate.New()
		if err != nil {
			return err
		}
		fmt.Fprintln(c.stdout, "available tools (* marks the default tool):")
		for i, name := range ed.ToolNames() {
			marker := " "
			if i == 0 {
				marker = "*"
			}
			fmt.Fprintf(c.stdout, "%s %s\n", marker, name)
		}
		return nil
	})
}

func parseColorsCmd(args []string, r *root) (*listCmd, error) {
	return parseListCmd("colors", args, r, func(c *listCmd) error {
		palette := shape.PaletteColors()
		if len(palette) == 0 {
			fmt.Fprintln(c.stdout, "no colors available")
			return nil
		}
		def := shape.DefaultSettings().StrokeColor
		fmt.Fprintln(c.stdout, "available palette colors (* marks the default color):")
		for idx, entry := range palette {
			marker := " "
			if entry.Color == def {
				marker = "*"
			}
			hex := shape.FormatColor(entry.Color)
			name := entry.Name
			if name == "" {
				name = hex
			}
			block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", entry.Color.R, entry.Color.G, entry.Color.B)
			fmt.Fprintf(c.stdout, "%s %2d: %-12s %s %s\n", marker, idx, name, hex, block)
		}
		return nil
	})
}

func parseWidthsCmd(args []string, r *root) (*listCmd, error) {
	return parseListCmd("widths", args, r, func(c *listCmd) error {
		def := shape.DefaultSettings().StrokeWidth
		fmt.Fprintln(c.stdout, "available stroke widths (* marks the default width):")
		for _, w := range shape.WidthOptions() {
			marker := " "
			if w == def {
				marker = "*"
			}
			fmt.Fprintf(c.stdout, "%s %3gpx\n", marker, w)
		}
		return nil
	})
}

func parseThemesCmd(args []string, r *root) (*listCmd, error) {
	return parseListCmd("themes", args, r, func(c *listCmd) error {
		names := theme.Embedded()
		if c.config != nil {
			for name := range c.config.Themes {
				names = append(names, name)
			}
		}
		sort.Strings(names)
		active := ""
		if c.activeTheme != nil {
			active = c.activeTheme.Name
		}
		fmt.Fprintln(c.stdout, "available themes (* marks the active theme):")
		for _, name := range names {
			marker := " "
			if name == active {
				marker = "*"
			}
			fmt.Fprintf(c.stdout, "%s %s\n", marker, name)
		}
		return nil
	})
}

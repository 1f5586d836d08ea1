package theme

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/example/shineydraw/internal/shape"
)

// Parse reads a theme definition of "Key: colour" lines. Missing keys keep
// their default; unknown keys are ignored.
func Parse(r io.Reader) (*Theme, error) {
	t := Default()
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if err := Set(t, strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
	}
	return t, scanner.Err()
}

// Set assigns one key of t. Keys match case-insensitively.
func Set(t *Theme, key, value string) error {
	if strings.EqualFold(key, "Name") {
		t.Name = value
		return nil
	}
	for _, f := range Fields(t) {
		if !strings.EqualFold(f.Key, key) {
			continue
		}
		col, err := shape.ParseColor(value)
		if err != nil {
			return fmt.Errorf("invalid color for key %s: %w", key, err)
		}
		*f.Color = col
		return nil
	}
	return nil
}

// Format writes t in the form Parse reads.
func Format(w io.Writer, t *Theme) error {
	if _, err := fmt.Fprintf(w, "Name: %s\n", t.Name); err != nil {
		return err
	}
	for _, f := range Fields(t) {
		if _, err := fmt.Fprintf(w, "%s: %s\n", f.Key, shape.FormatColor(*f.Color)); err != nil {
			return err
		}
	}
	return nil
}

// Package clipboard publishes rendered drawings and gesture scripts on the
// system clipboard.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"sync"
)

// Format is a clipboard payload type.
type Format int

const (
	FormatText Format = iota
	FormatPNG
)

func (f Format) String() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "text/plain"
}

var (
	errNoDisplay   = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")
	errUnsupported = errors.New("clipboard is not supported on this platform")
	errEmpty       = errors.New("clipboard is empty")
)

// backend is one platform clipboard implementation.
type backend interface {
	write(f Format, data []byte) error
	read(f Format) ([]byte, error)
}

var (
	mu      sync.Mutex
	active  backend
	openErr error
	opened  bool
)

func current() (backend, error) {
	mu.Lock()
	defer mu.Unlock()
	if !opened {
		opened = true
		active, openErr = openBackend()
	}
	return active, openErr
}

// reset forgets the opened backend so the next call opens it again.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	active, openErr, opened = nil, nil, false
}

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// WriteImage encodes img as PNG and places it on the clipboard.
func WriteImage(img image.Image) error {
	b, err := current()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return b.write(FormatPNG, buf.Bytes())
}

// WriteText places text on the clipboard.
func WriteText(text string) error {
	b, err := current()
	if err != nil {
		return err
	}
	return b.write(FormatText, []byte(text))
}

// ReadText returns the clipboard text.
func ReadText() (string, error) {
	b, err := current()
	if err != nil {
		return "", err
	}
	data, err := b.read(FormatText)
	if err != nil {
		return "", err
	}
	data = bytes.TrimRight(data, "\x00")
	if len(data) == 0 {
		return "", fmt.Errorf("read %v: %w", FormatText, errEmpty)
	}
	return string(data), nil
}

//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && cgo

package clipboard

import (
	"fmt"

	"golang.design/x/clipboard"
)

type designBackend struct{}

func openBackend() (backend, error) {
	if !hasDisplay() {
		return nil, errNoDisplay
	}
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("clipboard init: %w", err)
	}
	return designBackend{}, nil
}

func designFormat(f Format) clipboard.Format {
	if f == FormatPNG {
		return clipboard.FmtImage
	}
	return clipboard.FmtText
}

func (designBackend) write(f Format, data []byte) error {
	clipboard.Write(designFormat(f), data)
	return nil
}

func (designBackend) read(f Format) ([]byte, error) {
	return clipboard.Read(designFormat(f)), nil
}

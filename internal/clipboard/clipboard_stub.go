//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package clipboard

func openBackend() (backend, error) { return nil, errUnsupported }

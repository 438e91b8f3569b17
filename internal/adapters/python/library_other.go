//go:build !(darwin || freebsd || linux || netbsd || windows)

package python

import (
	"runtime"

	"go.trai.ch/zerr"
)

func openLibrary(path string) (uintptr, error) {
	return 0, zerr.With(zerr.With(zerr.New("embedding python is not supported on this platform"), "os", runtime.GOOS), "path", path)
}

func lookupSymbol(_ uintptr, name string) (uintptr, error) {
	return 0, zerr.With(zerr.New("symbol lookup is not supported on this platform"), "symbol", name)
}

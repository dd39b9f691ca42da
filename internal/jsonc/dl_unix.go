//go:build darwin || freebsd || (linux && !android)

package jsonc

import (
	"runtime"

	"github.com/ebitengine/purego"
)

type unixLoader struct{}

var systemLoader dynLoader = unixLoader{}

func (unixLoader) Open(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func (unixLoader) Sym(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func (unixLoader) Close(handle uintptr) error {
	return purego.Dlclose(handle)
}

func (unixLoader) Register(fptr any, addr uintptr) {
	purego.RegisterFunc(fptr, addr)
}

// DefaultLibraryNames returns the libjson-c file names tried by OpenLibrary,
// most specific first.
func DefaultLibraryNames() []string {
	if runtime.GOOS == "darwin" {
		return []string{"libjson-c.5.dylib", "libjson-c.dylib"}
	}
	return []string{"libjson-c.so.5", "libjson-c.so"}
}

//go:build windows

package jsonc

import (
	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"
)

type windowsLoader struct{}

var systemLoader dynLoader = windowsLoader{}

func (windowsLoader) Open(name string) (uintptr, error) {
	h, err := windows.LoadLibrary(name)
	return uintptr(h), err
}

func (windowsLoader) Sym(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}

func (windowsLoader) Close(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}

func (windowsLoader) Register(fptr any, addr uintptr) {
	purego.RegisterFunc(fptr, addr)
}

// DefaultLibraryNames returns the libjson-c file names tried by OpenLibrary.
func DefaultLibraryNames() []string {
	return []string{"libjson-c-5.dll", "json-c.dll"}
}

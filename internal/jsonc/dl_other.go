//go:build !darwin && !freebsd && !windows && (!linux || android)

package jsonc

type unsupportedLoader struct{}

var systemLoader dynLoader = unsupportedLoader{}

func (unsupportedLoader) Open(string) (uintptr, error)         { return 0, errNoDynamicLoading }
func (unsupportedLoader) Sym(uintptr, string) (uintptr, error) { return 0, errNoDynamicLoading }
func (unsupportedLoader) Close(uintptr) error                  { return nil }
func (unsupportedLoader) Register(any, uintptr)                {}

// DefaultLibraryNames returns the libjson-c file names tried by OpenLibrary.
func DefaultLibraryNames() []string {
	return []string{"libjson-c.so.5", "libjson-c.so"}
}

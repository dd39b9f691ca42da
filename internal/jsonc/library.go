package jsonc

import (
	"errors"
	"strings"
	"sync"
)

// dynLoader abstracts the platform's dynamic linker.
type dynLoader interface {
	Open(name string) (uintptr, error)
	Sym(handle uintptr, name string) (uintptr, error)
	Close(handle uintptr) error
	// Register binds the Go function pointed to by fptr to addr.
	Register(fptr any, addr uintptr)
}

// errNoDynamicLoading is returned on platforms without a dynamic loader.
var errNoDynamicLoading = errors.New("dynamic loading is not supported on this platform")

// Library is a Backend bound to libjson-c at runtime.
type Library struct {
	name    string
	handle  uintptr
	loader  dynLoader
	closeMu sync.Mutex
	closed  bool

	tokenerParse func(text string) uintptr
	isType       func(obj uintptr, typ int32) int32
	getArray     func(obj uintptr) uintptr
	getBoolean   func(obj uintptr) int32
	getDouble    func(obj uintptr) float64
	getInt       func(obj uintptr) int32
	getStringLen func(obj uintptr) int32
	getString    func(obj uintptr) uintptr
	getObject    func(obj uintptr) uintptr
	objectGet    func(obj uintptr, key string) uintptr
	put          func(obj uintptr) int32
}

// symbols returns the fixed entry points in resolution order, paired with the
// function field each one is bound to.
func (l *Library) symbols() []struct {
	name string
	fptr any
} {
	return []struct {
		name string
		fptr any
	}{
		{"json_tokener_parse", &l.tokenerParse},
		{"json_object_is_type", &l.isType},
		{"json_object_get_array", &l.getArray},
		{"json_object_get_boolean", &l.getBoolean},
		{"json_object_get_double", &l.getDouble},
		{"json_object_get_int", &l.getInt},
		{"json_object_get_string_len", &l.getStringLen},
		{"json_object_get_string", &l.getString},
		{"json_object_get_object", &l.getObject},
		{"json_object_object_get", &l.objectGet},
		{"json_object_put", &l.put},
	}
}

// SymbolNames lists the libjson-c entry points a Library requires.
func SymbolNames() []string {
	var l Library
	syms := l.symbols()
	names := make([]string, len(syms))
	for i, s := range syms {
		names[i] = s.name
	}
	return names
}

// OpenLibrary loads the first loadable library from names, or from
// DefaultLibraryNames when names is empty, and binds every required symbol.
func OpenLibrary(names ...string) (*Library, error) {
	return openLibrary(systemLoader, names...)
}

func openLibrary(ld dynLoader, names ...string) (*Library, error) {
	if len(names) == 0 {
		names = DefaultLibraryNames()
	}

	var (
		handle  uintptr
		name    string
		lastErr error
	)
	for _, n := range names {
		h, err := ld.Open(n)
		if err == nil && h != 0 {
			handle, name = h, n
			break
		}
		lastErr = err
	}
	if handle == 0 {
		return nil, &MissingBackendError{Library: strings.Join(names, ", "), Err: lastErr}
	}

	lib := &Library{name: name, handle: handle, loader: ld}
	if err := lib.bind(); err != nil {
		_ = ld.Close(handle)
		return nil, err
	}
	return lib, nil
}

// bind resolves every symbol before registering any of them, so a partially
// bound Library never exists.
func (l *Library) bind() error {
	syms := l.symbols()
	addrs := make([]uintptr, len(syms))
	for i, s := range syms {
		addr, err := l.loader.Sym(l.handle, s.name)
		if err != nil || addr == 0 {
			return &MissingBackendError{Library: l.name, Symbol: s.name, Err: err}
		}
		addrs[i] = addr
	}
	for i, s := range syms {
		l.loader.Register(s.fptr, addrs[i])
	}
	return nil
}

// Name returns the file name the library was loaded from.
func (l *Library) Name() string {
	return l.name
}

// Parse implements Backend.
func (l *Library) Parse(text string) Value {
	return Value(l.tokenerParse(text))
}

// IsType implements Backend.
func (l *Library) IsType(v Value, t Type) bool {
	if v == Nil {
		return t == TypeNull
	}
	return l.isType(uintptr(v), int32(t)) != 0
}

// Array implements Backend.
func (l *Library) Array(v Value) ([]Value, bool) {
	if v == Nil {
		return nil, false
	}
	list := l.getArray(uintptr(v))
	if list == 0 {
		return nil, false
	}
	return arrayListElems(list), true
}

// Bool implements Backend.
func (l *Library) Bool(v Value) bool {
	return l.getBoolean(uintptr(v)) != 0
}

// Double implements Backend.
func (l *Library) Double(v Value) float64 {
	return l.getDouble(uintptr(v))
}

// Int implements Backend.
func (l *Library) Int(v Value) int32 {
	return l.getInt(uintptr(v))
}

// StringLen implements Backend.
func (l *Library) StringLen(v Value) int {
	return int(l.getStringLen(uintptr(v)))
}

// String implements Backend.
func (l *Library) String(v Value) (string, bool) {
	if v == Nil {
		return "", false
	}
	p := l.getString(uintptr(v))
	if p == 0 {
		return "", false
	}
	if l.IsType(v, TypeString) {
		return cStringN(p, l.StringLen(v)), true
	}
	return cString(p), true
}

// Object implements Backend.
func (l *Library) Object(v Value) ([]Entry, bool) {
	if v == Nil {
		return nil, false
	}
	table := l.getObject(uintptr(v))
	if table == 0 {
		return nil, false
	}
	return lhTableEntries(table), true
}

// ObjectGet implements Backend.
func (l *Library) ObjectGet(v Value, key string) Value {
	if v == Nil {
		return Nil
	}
	return Value(l.objectGet(uintptr(v), key))
}

// Put implements Backend.
func (l *Library) Put(v Value) {
	if v == Nil {
		return
	}
	l.put(uintptr(v))
}

// Close unmaps the library. Subsequent calls are no-ops.
func (l *Library) Close() error {
	l.closeMu.Lock()
	defer l.closeMu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	return l.loader.Close(l.handle)
}

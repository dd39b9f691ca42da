package jsonc

import (
	"fmt"
)

// Type identifies the kind of a parsed value.
// The numeric values match json-c's enum json_type.
type Type int32

const (
	// TypeNull is the JSON null literal.
	TypeNull Type = iota
	// TypeBoolean is true or false.
	TypeBoolean
	// TypeDouble is a number with a fraction or exponent.
	TypeDouble
	// TypeInt is an integral number.
	TypeInt
	// TypeObject is a JSON object.
	TypeObject
	// TypeArray is a JSON array.
	TypeArray
	// TypeString is a JSON string.
	TypeString
)

// String returns the json-c name of the type.
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeDouble:
		return "double"
	case TypeInt:
		return "int"
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is an opaque handle into a backend's value graph.
// Nil means "no value" (missing key, failed parse, JSON null).
type Value uintptr

// Nil is the absent value.
const Nil Value = 0

// Entry is one key/value pair of an object, in backend iteration order.
type Entry struct {
	Key   string
	Value Value
}

// Backend is the capability bundle required to walk a parsed document.
// An implementation is either fully usable or was never returned.
type Backend interface {
	// Name identifies the backend (library file name or "native").
	Name() string

	// Parse tokenizes text and returns the owned root value, or Nil on
	// malformed or empty input.
	Parse(text string) Value

	// IsType reports whether v is of type t.
	IsType(v Value, t Type) bool

	// Array returns the elements of an array value.
	// ok is false if v is not an array.
	Array(v Value) (elems []Value, ok bool)

	// Bool returns v coerced to a boolean.
	Bool(v Value) bool

	// Double returns v coerced to a float64.
	Double(v Value) float64

	// Int returns v coerced to an int32, clamping out-of-range values.
	Int(v Value) int32

	// StringLen returns the byte length of a string value, 0 otherwise.
	StringLen(v Value) int

	// String returns the string form of v. Non-string values are
	// converted to their JSON text. ok is false only for Nil.
	String(v Value) (s string, ok bool)

	// Object returns the entries of an object value in backend order.
	// ok is false if v is not an object.
	Object(v Value) (entries []Entry, ok bool)

	// ObjectGet returns the value stored under key, or Nil.
	ObjectGet(v Value, key string) Value

	// Put releases a root value and everything it owns.
	Put(v Value)

	// Close releases the backend itself.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendLibrary = "libjson-c"
	BackendNative  = "native"
)

// Open returns the named backend. An empty name selects BackendLibrary.
func Open(name string) (Backend, error) {
	switch name {
	case "", BackendLibrary:
		return OpenLibrary()
	case BackendNative:
		return NewNative(), nil
	default:
		return nil, &MissingBackendError{Library: name, Err: fmt.Errorf("unknown JSON backend %q", name)}
	}
}

// MissingBackendError reports that the backend library, or one of its
// required symbols, could not be resolved.
type MissingBackendError struct {
	// Library is the library name that was being loaded.
	Library string
	// Symbol is the missing entry point, empty if the library itself failed.
	Symbol string
	// Err is the underlying loader error, if any.
	Err error
}

// Error implements the error interface.
func (e *MissingBackendError) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("dlsym %s failed", e.Symbol)
	}
	return fmt.Sprintf("dlopen %s failed", e.Library)
}

// Unwrap returns the underlying loader error.
func (e *MissingBackendError) Unwrap() error {
	return e.Err
}

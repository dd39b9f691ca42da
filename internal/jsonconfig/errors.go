package jsonconfig

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Subsystem is the label printed in front of every load error.
const Subsystem = "JsonConfig"

// Messages reported to the user. Each failed load produces exactly one.
const (
	MsgParseFailure      = "Failed to parse JSON config file"
	MsgRootNotObject     = "Invalid JSON config format. Root value must be an object"
	MsgUnknownRootKey    = "Unknown JSON config key in root object"
	MsgModulesNotArray   = "modules must be an array of strings or objects"
	MsgModuleMissingType = "module object must contain a type key"
	MsgUnknownModule     = "Unknown module type"
)

// Kind classifies a load failure.
type Kind int

const (
	// KindMissingBackend means the JSON library or one of its symbols could
	// not be resolved.
	KindMissingBackend Kind = iota + 1
	// KindParseFailure means the content was missing or malformed.
	KindParseFailure
	// KindSchemaViolation means the document does not have the expected shape.
	KindSchemaViolation
	// KindUnknownModule means a module type matched no handler.
	KindUnknownModule
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindMissingBackend:
		return "missing backend"
	case KindParseFailure:
		return "parse failure"
	case KindSchemaViolation:
		return "schema violation"
	case KindUnknownModule:
		return "unknown module"
	default:
		return "unknown"
	}
}

// Error is the single failure reported by Load.
type Error struct {
	Kind    Kind
	Message string
	// Detail names what triggered the failure: the module type, the
	// unexpected root key or the config file path. It is not printed.
	Detail string
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface. Only the user-facing message is
// returned; the cause is available through Unwrap.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// KindOf returns the Kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// PrintError writes err as one "JsonConfig: message" line, styling the label
// like a module key.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	color.New(color.FgRed, color.Bold).Fprint(w, Subsystem)
	fmt.Fprintf(w, ": %s\n", err.Error())
}

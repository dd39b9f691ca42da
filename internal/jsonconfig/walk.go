package jsonconfig

import (
	"log/slog"

	"github.com/opd-ai/go-fetch/internal/jsonc"
)

// Descriptor is one normalized element of the modules array.
type Descriptor struct {
	// Type is the module type as written in the file.
	Type string
	// Options is the element itself for object elements, and the zero
	// Object for bare string elements.
	Options jsonc.Object
}

// Walk validates the root object and passes every module descriptor to
// dispatch in array order. It stops at the first problem, including the
// first error returned by dispatch.
func Walk(b jsonc.Backend, root jsonc.Value, dispatch func(Descriptor) error) error {
	return walkWithLogger(b, root, dispatch, nil)
}

func walkWithLogger(b jsonc.Backend, root jsonc.Value, dispatch func(Descriptor) error, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	entries, ok := b.Object(root)
	if !ok {
		return newError(KindSchemaViolation, MsgRootNotObject)
	}

	for _, e := range entries {
		if e.Key != "modules" {
			return &Error{Kind: KindSchemaViolation, Message: MsgUnknownRootKey, Detail: e.Key}
		}
		if err := walkModules(b, e.Value, dispatch, logger); err != nil {
			return err
		}
	}
	return nil
}

func walkModules(b jsonc.Backend, modules jsonc.Value, dispatch func(Descriptor) error, logger *slog.Logger) error {
	elems, ok := b.Array(modules)
	if !ok {
		return newError(KindSchemaViolation, MsgModulesNotArray)
	}

	for i, elem := range elems {
		d, err := describe(b, elem)
		if err != nil {
			return err
		}
		logger.Debug("dispatching module", "index", i, "type", d.Type, "options", d.Options.Valid())
		if err := dispatch(d); err != nil {
			return err
		}
	}
	return nil
}

// describe normalizes a bare name or an object with a "type" key.
func describe(b jsonc.Backend, elem jsonc.Value) (Descriptor, error) {
	switch {
	case b.IsType(elem, jsonc.TypeString):
		typ, _ := b.String(elem)
		return Descriptor{Type: typ}, nil
	case b.IsType(elem, jsonc.TypeObject):
		typ, ok := b.String(b.ObjectGet(elem, "type"))
		if !ok {
			return Descriptor{}, newError(KindSchemaViolation, MsgModuleMissingType)
		}
		return Descriptor{Type: typ, Options: jsonc.NewObject(b, elem)}, nil
	default:
		return Descriptor{}, newError(KindSchemaViolation, MsgModulesNotArray)
	}
}

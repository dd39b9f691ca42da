package jsonconfig

import (
	"fmt"
	"strings"

	"github.com/opd-ai/go-fetch/internal/jsonc"
)

// Handler prints one module kind. It is satisfied by modules.Module.
type Handler interface {
	Type() string
	Print(opts jsonc.Object)
}

// Registry maps module types to handlers. The mapping is total over the
// registered handlers and no type is claimed twice.
type Registry struct {
	order    []Handler
	handlers map[string]Handler
}

// NewRegistry builds a Registry from handlers in dispatch order. Types are
// compared case-insensitively; two handlers claiming the same type, or a
// handler with an empty type, is an error.
func NewRegistry(handlers ...Handler) (*Registry, error) {
	r := &Registry{
		order:    make([]Handler, 0, len(handlers)),
		handlers: make(map[string]Handler, len(handlers)),
	}
	for _, h := range handlers {
		typ := normalizeType(h.Type())
		if typ == "" {
			return nil, fmt.Errorf("module handler %T has an empty type", h)
		}
		if prev, ok := r.handlers[typ]; ok {
			return nil, fmt.Errorf("module type %q claimed by both %T and %T", typ, prev, h)
		}
		r.handlers[typ] = h
		r.order = append(r.order, h)
	}
	return r, nil
}

// Lookup returns the handler for typ.
func (r *Registry) Lookup(typ string) (Handler, bool) {
	h, ok := r.handlers[normalizeType(typ)]
	return h, ok
}

// Types returns the registered types in dispatch order.
func (r *Registry) Types() []string {
	types := make([]string, len(r.order))
	for i, h := range r.order {
		types[i] = normalizeType(h.Type())
	}
	return types
}

// Dispatch hands d to its handler.
func (r *Registry) Dispatch(d Descriptor) error {
	h, ok := r.Lookup(d.Type)
	if !ok {
		return &Error{Kind: KindUnknownModule, Message: MsgUnknownModule, Detail: d.Type}
	}
	h.Print(d.Options)
	return nil
}

func normalizeType(typ string) string {
	return strings.ToLower(typ)
}

package jsonconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/opd-ai/go-fetch/internal/jsonc"
)

// call records one handler invocation.
type call struct {
	Type    string
	Options string // JSON text of the options object, "" for none
}

// recorder collects calls from every handler it creates.
type recorder struct {
	backend jsonc.Backend
	calls   []call
}

type recordingHandler struct {
	typ string
	rec *recorder
}

func (h *recordingHandler) Type() string { return h.typ }

func (h *recordingHandler) Print(opts jsonc.Object) {
	c := call{Type: h.typ}
	if opts.Valid() {
		c.Options, _ = h.rec.backend.String(opts.Value())
	}
	h.rec.calls = append(h.rec.calls, c)
}

var builtinTypes = []string{"title", "battery", "command", "datetime", "display", "host", "kernel", "os", "separator"}

func newRecordingRegistry(t *testing.T, rec *recorder) *Registry {
	t.Helper()
	handlers := make([]Handler, len(builtinTypes))
	for i, typ := range builtinTypes {
		handlers[i] = &recordingHandler{typ: typ, rec: rec}
	}
	r, err := NewRegistry(handlers...)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return r
}

// trackingBackend counts releases on top of the native backend.
type trackingBackend struct {
	*jsonc.Native
	roots  map[jsonc.Value]int
	puts   map[jsonc.Value]int
	closes int
}

func newTrackingBackend() *trackingBackend {
	return &trackingBackend{
		Native: jsonc.NewNative(),
		roots:  make(map[jsonc.Value]int),
		puts:   make(map[jsonc.Value]int),
	}
}

func (b *trackingBackend) Parse(text string) jsonc.Value {
	v := b.Native.Parse(text)
	if v != jsonc.Nil {
		b.roots[v]++
	}
	return v
}

func (b *trackingBackend) Put(v jsonc.Value) {
	b.puts[v]++
	b.Native.Put(v)
}

func (b *trackingBackend) Close() error {
	b.closes++
	return b.Native.Close()
}

// writeConfig creates <dir>/fastfetch/config.jsonc.
func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, "fastfetch", "config.jsonc")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

package jsonconfig

import (
	"errors"
	"testing"

	"github.com/opd-ai/go-fetch/internal/jsonc"
)

// FuzzWalk feeds arbitrary documents through parse, validation and dispatch.
// Every outcome must be either success or a single *Error, and nothing may
// stay allocated afterwards.
func FuzzWalk(f *testing.F) {
	f.Add(`{"modules": ["os", "host"]}`)
	f.Add(`{"modules": [{"type": "battery", "foo": 1}]}`)
	f.Add(`// comment
{"modules": ["title",],}`)
	f.Add(`{"modules": [5]}`)
	f.Add(`{"modules": [{"type": null}]}`)
	f.Add(`{"logo": 1}`)
	f.Add(`[]`)
	f.Add(`null`)
	f.Add(``)
	f.Add(`{"modules": [{"type": "os", "type": "host"}]}`)

	f.Fuzz(func(t *testing.T, text string) {
		b := jsonc.NewNative()
		rec := &recorder{backend: b}
		reg := newRecordingRegistry(t, rec)

		root := b.Parse(text)
		if root == jsonc.Nil {
			return
		}
		err := Walk(b, root, reg.Dispatch)
		if err != nil {
			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("Walk() error %T is not *Error", err)
			}
			if e.Message == "" {
				t.Fatal("empty error message")
			}
		}
		b.Put(root)
		if b.Live() != 0 {
			t.Fatalf("%d values live after Put", b.Live())
		}
	})
}

package modules

import (
	"fmt"

	"github.com/arnodel/strftime"

	"github.com/opd-ai/go-fetch/internal/jsonc"
)

// DefaultDateTimeFormat is the strftime layout used when none is configured.
const DefaultDateTimeFormat = "%Y-%m-%d %H:%M:%S"

type dateTimeModule struct {
	inst *Instance
}

func (m *dateTimeModule) Type() string { return "datetime" }

// Print writes the current time formatted with option "format" (strftime).
func (m *dateTimeModule) Print(opts jsonc.Object) {
	layout, ok := opts.String("format")
	if !ok || layout == "" {
		layout = DefaultDateTimeFormat
	}

	s, err := strftime.StrictFormat(layout, m.inst.Now())
	if err != nil {
		m.inst.printError("Date Time", opts, fmt.Errorf("invalid format %q: %w", layout, err))
		return
	}
	m.inst.printLine("Date Time", opts, s)
}

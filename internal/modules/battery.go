package modules

import (
	"fmt"
	"strings"

	"github.com/opd-ai/go-fetch/internal/jsonc"
)

type batteryModule struct {
	inst *Instance
}

func (m *batteryModule) Type() string { return "battery" }

// Print writes one line per battery. Option "dir" overrides the
// power_supply directory.
func (m *batteryModule) Print(opts jsonc.Object) {
	reader := *m.inst.Battery
	if dir, ok := opts.String("dir"); ok && dir != "" {
		reader.PowerSupplyPath = dir
	}

	batteries, err := reader.Read()
	if err != nil {
		m.inst.printError("Battery", opts, err)
		return
	}

	for i, b := range batteries {
		k := "Battery"
		if len(batteries) > 1 {
			k = fmt.Sprintf("Battery %d", i)
		}
		if model := strings.TrimSpace(b.Manufacturer + " " + b.ModelName); model != "" {
			k += " (" + model + ")"
		}

		value := fmt.Sprintf("%d%%", b.Capacity)
		if b.Status != "" && b.Status != "Unknown" {
			value += " [" + b.Status + "]"
		}
		m.inst.printLine(k, opts, value)
	}
}

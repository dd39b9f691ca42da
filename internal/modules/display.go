package modules

import (
	"fmt"
	"strings"

	"github.com/opd-ai/go-fetch/internal/jsonc"
	"github.com/opd-ai/go-fetch/internal/monitor"
)

type displayModule struct {
	inst *Instance
}

func (m *displayModule) Type() string { return "display" }

// Print writes the resolution of each X11 screen. Option "compact" joins
// every screen on one line.
func (m *displayModule) Print(opts jsonc.Object) {
	displays, err := m.inst.Display.Read()
	if err != nil {
		m.inst.printError("Display", opts, err)
		return
	}
	m.printDisplays(displays, opts)
}

func (m *displayModule) printDisplays(displays []monitor.DisplayInfo, opts jsonc.Object) {
	if compact, _ := opts.Bool("compact"); compact || len(displays) == 1 {
		res := make([]string, len(displays))
		for i, d := range displays {
			res[i] = resolution(d)
		}
		m.inst.printLine("Display", opts, strings.Join(res, ", "))
		return
	}
	for _, d := range displays {
		m.inst.printLine(fmt.Sprintf("Display (screen %d)", d.Screen), opts, resolution(d))
	}
}

func resolution(d monitor.DisplayInfo) string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

package modules

import (
	"strings"

	"github.com/opd-ai/go-fetch/internal/jsonc"
)

type osModule struct {
	inst *Instance
}

func (m *osModule) Type() string { return "os" }

// Print writes the distribution name and machine architecture.
func (m *osModule) Print(opts jsonc.Object) {
	rel, err := m.inst.OSRelease.Read()
	if err != nil {
		m.inst.printError("OS", opts, err)
		return
	}
	info, _ := m.inst.SysInfo.ReadSystemInfo()
	m.inst.printLine("OS", opts, strings.TrimSpace(rel.DisplayName()+" "+info.Machine))
}

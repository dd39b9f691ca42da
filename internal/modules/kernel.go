package modules

import (
	"github.com/opd-ai/go-fetch/internal/jsonc"
)

type kernelModule struct {
	inst *Instance
}

func (m *kernelModule) Type() string { return "kernel" }

func (m *kernelModule) Print(opts jsonc.Object) {
	info, err := m.inst.SysInfo.ReadSystemInfo()
	if err != nil {
		m.inst.printError("Kernel", opts, err)
		return
	}
	m.inst.printLine("Kernel", opts, info.Kernel)
}

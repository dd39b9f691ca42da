package modules

import (
	"github.com/opd-ai/go-fetch/internal/jsonc"
)

type hostModule struct {
	inst *Instance
}

func (m *hostModule) Type() string { return "host" }

func (m *hostModule) Print(opts jsonc.Object) {
	info, err := m.inst.Host.Read()
	if err != nil {
		m.inst.printError("Host", opts, err)
		return
	}
	m.inst.printLine("Host", opts, info.Model())
}

package modules

import (
	"fmt"
	"unicode/utf8"

	"github.com/opd-ai/go-fetch/internal/jsonc"
)

type titleModule struct {
	inst *Instance
}

func (m *titleModule) Type() string { return "title" }

// Print writes user@host. Option "fqdn" selects the full hostname.
func (m *titleModule) Print(opts jsonc.Object) {
	info, err := m.inst.SysInfo.ReadSystemInfo()
	if err != nil {
		m.inst.printError("Title", opts, err)
		return
	}

	host := info.HostnameShort
	if fqdn, _ := opts.Bool("fqdn"); fqdn {
		host = info.Hostname
	}

	m.inst.titleLength = utf8.RuneCountInString(info.User) + 1 + utf8.RuneCountInString(host)
	m.inst.KeyStyle.Fprint(m.inst.Out, info.User)
	fmt.Fprint(m.inst.Out, "@")
	m.inst.KeyStyle.Fprint(m.inst.Out, host)
	fmt.Fprintln(m.inst.Out)
}

package modules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/opd-ai/go-fetch/internal/jsonc"
)

const defaultSeparator = "-"

type separatorModule struct {
	inst *Instance
}

func (m *separatorModule) Type() string { return "separator" }

// Print repeats option "string" (default "-") to the width of the title.
func (m *separatorModule) Print(opts jsonc.Object) {
	sep, ok := opts.String("string")
	if !ok || sep == "" {
		sep = defaultSeparator
	}

	width := m.inst.titleLength
	if width == 0 {
		if info, err := m.inst.SysInfo.ReadSystemInfo(); err == nil {
			width = utf8.RuneCountInString(info.User) + 1 + utf8.RuneCountInString(info.HostnameShort)
		}
	}
	fmt.Fprintln(m.inst.Out, repeatToWidth(sep, width))
}

// repeatToWidth cycles the runes of s until exactly width runes are written.
func repeatToWidth(s string, width int) string {
	runes := []rune(s)
	if len(runes) == 0 || width <= 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < width; i++ {
		b.WriteRune(runes[i%len(runes)])
	}
	return b.String()
}

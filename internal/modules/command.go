package modules

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/opd-ai/go-fetch/internal/jsonc"
)

var errNoCommand = errors.New("no command text given")

type commandModule struct {
	inst *Instance
}

func (m *commandModule) Type() string { return "command" }

// Print runs option "text" through option "shell" and prints its output.
func (m *commandModule) Print(opts jsonc.Object) {
	text, ok := opts.String("text")
	if !ok || strings.TrimSpace(text) == "" {
		m.inst.printError("Command", opts, errNoCommand)
		return
	}

	shell, flag := defaultShell()
	if s, ok := opts.String("shell"); ok && s != "" {
		shell = s
	}

	out, err := exec.Command(shell, flag, text).Output()
	if err != nil {
		m.inst.printError("Command", opts, fmt.Errorf("running %q: %w", text, err))
		return
	}
	m.inst.printLine("Command", opts, strings.TrimRight(string(out), "\r\n"))
}

func defaultShell() (shell, flag string) {
	if runtime.GOOS == "windows" {
		return "cmd.exe", "/c"
	}
	return "/bin/sh", "-c"
}

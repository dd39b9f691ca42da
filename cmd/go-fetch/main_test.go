package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/opd-ai/go-fetch/internal/jsonconfig"
	"github.com/opd-ai/go-fetch/pkg/fetch"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, "fastfetch", "config.jsonc")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestVersion(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	code, out, _ := execute(t, "version", "--short")
	if code != 0 || out != Version+"\n" {
		t.Errorf("version --short = %d, %q", code, out)
	}
	code, out, _ = execute(t, "version")
	if code != 0 || !strings.HasPrefix(out, "go-fetch version "+Version) {
		t.Errorf("version = %d, %q", code, out)
	}
}

func TestModulesCommand(t *testing.T) {
	code, out, _ := execute(t, "modules")
	want := "title\nbattery\ncommand\ndatetime\ndisplay\nhost\nkernel\nos\nseparator\n"
	if code != 0 || out != want {
		t.Errorf("modules = %d, %q; want %q", code, out, want)
	}
}

func TestDirsCommand(t *testing.T) {
	code, out, _ := execute(t, "dirs", "--config-dir", "/one", "-c", "/two")
	if code != 0 || out != "/one\n/two\n" {
		t.Errorf("dirs = %d, %q", code, out)
	}

	code, out, _ = execute(t, "dirs")
	if code != 0 || out == "" {
		t.Errorf("dirs with defaults = %d, %q", code, out)
	}
}

func TestRunPrintsModules(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"modules": [{"type": "datetime", "key": "Pct", "format": "%%"}]}`)

	code, out, errOut := execute(t, "--json-backend", "native", "--config-dir", dir)
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, errOut)
	}
	if out != "Pct: %\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestRunReportsOneErrorLine(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", `{"modules": [], "logo": 1}`, "JsonConfig: Unknown JSON config key in root object\n"},
		{"unknown module", `{"modules": ["gpu"]}`, "JsonConfig: Unknown module type\n"},
		{"parse failure", `{`, "JsonConfig: Failed to parse JSON config file\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)
			code, _, errOut := execute(t, "--json-backend", "native", "-c", dir)
			if code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if errOut != tt.want {
				t.Errorf("stderr = %q, want %q", errOut, tt.want)
			}
		})
	}
}

func TestRunMissingBackend(t *testing.T) {
	code, _, errOut := execute(t, "--json-backend", "xml", "-c", t.TempDir())
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.HasPrefix(errOut, "JsonConfig: dlopen xml failed") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestRunDebugLogging(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"modules": []}`)
	code, _, errOut := execute(t, "--json-backend", "native", "-c", dir, "--debug", "--log-json")
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, errOut)
	}
	if !strings.Contains(errOut, `"msg":"config file loaded"`) {
		t.Errorf("stderr missing JSON debug record: %q", errOut)
	}
}

func TestUnknownFlag(t *testing.T) {
	code, _, errOut := execute(t, "--bogus")
	if code != 1 || !strings.HasPrefix(errOut, "Error: ") {
		t.Errorf("--bogus = %d, %q", code, errOut)
	}
}

func TestRunWritesProfiles(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"modules": []}`)
	cpu := filepath.Join(dir, "cpu.prof")
	mem := filepath.Join(dir, "mem.prof")

	code, _, errOut := execute(t, "--json-backend", "native", "-c", dir, "--cpuprofile", cpu, "--memprofile", mem)
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, errOut)
	}
	for _, p := range []string{cpu, mem} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("profile not written: %v", err)
		}
	}
}

func TestPrintError(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"config error", &fetch.Error{Message: jsonconfig.MsgUnknownModule}, "JsonConfig: Unknown module type\n"},
		{"wrapped config error", fmt.Errorf("reload: %w", &fetch.Error{Message: jsonconfig.MsgParseFailure}), "JsonConfig: reload: Failed to parse JSON config file\n"},
		{"watcher error", errors.New("fsnotify: queue or buffer overflow"), "Error: fsnotify: queue or buffer overflow\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printError(&buf, tt.err)
			if buf.String() != tt.want {
				t.Errorf("printError() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestLoggerSelection(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name      string
		flags     rootFlags
		wantDebug bool
		wantInfo  bool
	}{
		{"default", rootFlags{}, false, true},
		{"debug", rootFlags{debug: true}, true, true},
		{"json", rootFlags{logJSON: true}, false, true},
		{"json debug", rootFlags{logJSON: true, debug: true}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := tt.flags.logger(&bytes.Buffer{})
			if got := logger.Enabled(ctx, slog.LevelDebug); got != tt.wantDebug {
				t.Errorf("debug enabled = %v, want %v", got, tt.wantDebug)
			}
			if got := logger.Enabled(ctx, slog.LevelInfo); got != tt.wantInfo {
				t.Errorf("info enabled = %v, want %v", got, tt.wantInfo)
			}
		})
	}
}

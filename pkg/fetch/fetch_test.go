package fetch

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"github.com/opd-ai/go-fetch/internal/jsonc"
	"github.com/opd-ai/go-fetch/internal/jsonconfig"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := jsonconfig.ConfigPath(dir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestRunNativeBackend(t *testing.T) {
	noColor(t)
	dir := t.TempDir()
	writeConfig(t, dir, `{
		// two lines
		"modules": [
			{"type": "separator", "string": "=", "key": "unused"},
			{"type": "datetime", "key": "Year", "format": "%%"},
		],
	}`)

	var out bytes.Buffer
	err := Run(Options{ConfigDirs: []string{dir}, Backend: jsonc.BackendNative, Output: &out})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "=") || strings.Trim(lines[0], "=") != "" {
		t.Errorf("separator line = %q", lines[0])
	}
	if lines[1] != "Year: %" {
		t.Errorf("datetime line = %q, want %q", lines[1], "Year: %")
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown root key", `{"display": {}}`, jsonconfig.MsgUnknownRootKey},
		{"unknown module", `{"modules": ["weather"]}`, jsonconfig.MsgUnknownModule},
		{"bad element", `{"modules": [true]}`, jsonconfig.MsgModulesNotArray},
		{"missing type", `{"modules": [{}]}`, jsonconfig.MsgModuleMissingType},
		{"root array", `[]`, jsonconfig.MsgRootNotObject},
		{"malformed", `{"modules"`, jsonconfig.MsgParseFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)
			var out bytes.Buffer
			err := Run(Options{ConfigDirs: []string{dir}, Backend: jsonc.BackendNative, Output: &out})
			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("Run() error = %v, want *Error", err)
			}
			if e.Message != tt.want {
				t.Errorf("Message = %q, want %q", e.Message, tt.want)
			}
		})
	}
}

func TestRunNoConfig(t *testing.T) {
	err := Run(Options{ConfigDirs: []string{t.TempDir()}, Backend: jsonc.BackendNative, Output: &bytes.Buffer{}})
	if jsonconfig.KindOf(err) != jsonconfig.KindParseFailure {
		t.Fatalf("Run() error = %v, want parse failure", err)
	}
}

func TestRunUnknownBackend(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"modules": []}`)
	err := Run(Options{ConfigDirs: []string{dir}, Backend: "toml", Output: &bytes.Buffer{}})
	if jsonconfig.KindOf(err) != jsonconfig.KindMissingBackend {
		t.Fatalf("Run() error = %v, want missing backend", err)
	}
}

func TestModuleTypes(t *testing.T) {
	want := []string{"title", "battery", "command", "datetime", "display", "host", "kernel", "os", "separator"}
	if diff := cmp.Diff(want, ModuleTypes()); diff != "" {
		t.Errorf("ModuleTypes() mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintError(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	PrintError(&buf, &Error{Message: jsonconfig.MsgUnknownModule})
	if got, want := buf.String(), "JsonConfig: Unknown module type\n"; got != want {
		t.Errorf("PrintError() = %q, want %q", got, want)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Backend != jsonc.BackendLibrary {
		t.Errorf("Backend = %q, want %q", opts.Backend, jsonc.BackendLibrary)
	}
	if len(opts.ConfigDirs) == 0 {
		t.Error("ConfigDirs is empty")
	}
	if opts.Output != os.Stdout {
		t.Error("Output is not stdout")
	}
}

func TestWithDefaults(t *testing.T) {
	opts := Options{}.withDefaults()
	if opts.Backend != jsonc.BackendLibrary || opts.Output == nil || opts.Logger == nil {
		t.Errorf("withDefaults() left fields unset: %+v", opts)
	}
	if opts.WatchDebounce != DefaultWatchDebounce {
		t.Errorf("WatchDebounce = %v, want %v", opts.WatchDebounce, DefaultWatchDebounce)
	}

	dirs := []string{"/a"}
	if got := (Options{ConfigDirs: dirs}).withDefaults().ConfigDirs; !cmp.Equal(got, dirs) {
		t.Errorf("ConfigDirs overridden: %v", got)
	}
}

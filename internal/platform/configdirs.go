package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Env abstracts the process environment so directory resolution can be
// tested without touching the real one.
type Env struct {
	// GOOS selects the platform rules (runtime.GOOS by default).
	GOOS string
	// Getenv looks up an environment variable.
	Getenv func(string) string
	// HomeDir returns the current user's home directory.
	HomeDir func() (string, error)
}

// SystemEnv returns the Env of the running process.
func SystemEnv() Env {
	return Env{
		GOOS:    runtime.GOOS,
		Getenv:  os.Getenv,
		HomeDir: os.UserHomeDir,
	}
}

// ConfigDirs returns the directories searched for fastfetch/config.jsonc,
// highest priority first.
func ConfigDirs() []string {
	return SystemEnv().ConfigDirs()
}

// ConfigDirs returns the candidate configuration directories for e.
//
// On Unix-like systems the order is $XDG_CONFIG_HOME (or ~/.config), then
// ~/Library/Preferences on macOS, then each entry of $XDG_CONFIG_DIRS (or
// /etc/xdg), then /etc. On Windows it is %APPDATA%, then ~/.config.
// Duplicates and empty entries are dropped.
func (e Env) ConfigDirs() []string {
	getenv := e.Getenv
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	home := ""
	if e.HomeDir != nil {
		if h, err := e.HomeDir(); err == nil {
			home = h
		}
	}

	var dirs []string
	if e.GOOS == "windows" {
		dirs = append(dirs, getenv("APPDATA"))
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".config"))
		}
		return dedupe(dirs)
	}

	if xdg := getenv("XDG_CONFIG_HOME"); filepath.IsAbs(xdg) {
		dirs = append(dirs, xdg)
	} else if home != "" {
		dirs = append(dirs, filepath.Join(home, ".config"))
	}

	if e.GOOS == "darwin" && home != "" {
		dirs = append(dirs, filepath.Join(home, "Library", "Preferences"))
	}

	if xdgDirs := getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		for _, d := range strings.Split(xdgDirs, ":") {
			if filepath.IsAbs(d) {
				dirs = append(dirs, d)
			}
		}
	} else {
		dirs = append(dirs, "/etc/xdg")
	}

	dirs = append(dirs, "/etc")
	return dedupe(dirs)
}

func dedupe(dirs []string) []string {
	seen := make(map[string]bool, len(dirs))
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		if d == "" {
			continue
		}
		d = filepath.Clean(d)
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

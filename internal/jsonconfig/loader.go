package jsonconfig

import (
	"log/slog"
	"os"
	"path/filepath"
)

// ConfigFile is the path of the config file relative to a config directory.
var ConfigFile = filepath.Join("fastfetch", "config.jsonc")

// readFile reads a candidate config file.
var readFile = os.ReadFile

// ConfigPath returns the config file location inside dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, ConfigFile)
}

// ReadConfig returns the content of the first readable config file among
// dirs, searched in order. If none can be read the content is empty.
func ReadConfig(dirs []string, logger *slog.Logger) (content []byte, path string) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	for _, dir := range dirs {
		p := ConfigPath(dir)
		data, err := readFile(p)
		if err != nil {
			logger.Debug("config candidate skipped", "path", p, "error", err)
			continue
		}
		logger.Debug("config file loaded", "path", p, "bytes", len(data))
		return data, p
	}
	logger.Debug("no config file found", "candidates", len(dirs))
	return nil, ""
}

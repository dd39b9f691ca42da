package fetch

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/opd-ai/go-fetch/internal/jsonc"
	"github.com/opd-ai/go-fetch/internal/platform"
)

// DefaultWatchDebounce is the default debounce interval for file watch events.
const DefaultWatchDebounce = 500 * time.Millisecond

// Options configures a run.
type Options struct {
	// ConfigDirs are the directories searched for fastfetch/config.jsonc,
	// highest priority first. Nil means the platform defaults.
	ConfigDirs []string

	// Backend names the JSON backend: "libjson-c" or "native".
	// Empty means "libjson-c".
	Backend string

	// Output receives module lines. Nil means stdout.
	Output io.Writer

	// Logger receives debug and diagnostic messages.
	// If nil, nothing is logged.
	Logger *slog.Logger

	// WatchConfig makes the CLI re-run whenever the config file changes.
	// Run ignores it; Watch always watches.
	WatchConfig bool

	// WatchDebounce sets the debounce interval for file change events.
	// Zero means DefaultWatchDebounce.
	WatchDebounce time.Duration
}

// DefaultOptions returns Options for the live system.
func DefaultOptions() Options {
	return Options{
		ConfigDirs: platform.ConfigDirs(),
		Backend:    jsonc.BackendLibrary,
		Output:     os.Stdout,
	}
}

func (o Options) withDefaults() Options {
	if o.ConfigDirs == nil {
		o.ConfigDirs = platform.ConfigDirs()
	}
	if o.Backend == "" {
		o.Backend = jsonc.BackendLibrary
	}
	if o.Output == nil {
		o.Output = os.Stdout
	}
	if o.Logger == nil {
		o.Logger = NopLogger()
	}
	if o.WatchDebounce <= 0 {
		o.WatchDebounce = DefaultWatchDebounce
	}
	return o
}

package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/opd-ai/go-fetch/internal/jsonconfig"
)

// Watch runs once, then runs again each time the config file changes, until
// ctx is done. Run errors go to onError and do not stop watching.
//
// The watched file is the first existing candidate, or the first candidate
// when none exists yet. Its directory must exist.
func Watch(ctx context.Context, opts Options, onError func(error)) error {
	opts = opts.withDefaults()
	if len(opts.ConfigDirs) == 0 {
		return fmt.Errorf("watch: no config directories")
	}
	path := watchTarget(opts.ConfigDirs)

	report := func(err error) {
		if err != nil && onError != nil {
			onError(err)
		}
	}

	cw, err := newConfigWatcher(path, opts.WatchDebounce, func() error { return Run(opts) }, report)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	opts.Logger.Debug("watching config file", "path", path, "debounce", opts.WatchDebounce)

	report(Run(opts))

	cw.Start()
	<-ctx.Done()
	cw.Stop()
	return nil
}

// watchTarget picks the config file a watch follows.
func watchTarget(dirs []string) string {
	for _, dir := range dirs {
		p := jsonconfig.ConfigPath(dir)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return jsonconfig.ConfigPath(dirs[0])
}

// configWatcher monitors the config file and triggers re-runs.
type configWatcher struct {
	watcher   *fsnotify.Watcher
	filePath  string
	debounce  time.Duration
	onChange  func() error
	onError   func(error)
	stopCh    chan struct{}
	stoppedCh chan struct{}
	mu        sync.Mutex
	running   bool
}

// newConfigWatcher creates a watcher for filePath. onChange is called once
// per burst of changes, after debouncing.
func newConfigWatcher(filePath string, debounce time.Duration, onChange func() error, onError func(error)) (*configWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	// Watch the directory so atomic renames by editors are seen.
	if err := watcher.Add(filepath.Dir(filePath)); err != nil {
		watcher.Close()
		return nil, err
	}

	return &configWatcher{
		watcher:   watcher,
		filePath:  filePath,
		debounce:  debounce,
		onChange:  onChange,
		onError:   onError,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}, nil
}

// Start begins watching in a goroutine.
func (cw *configWatcher) Start() {
	cw.mu.Lock()
	if cw.running {
		cw.mu.Unlock()
		return
	}
	cw.running = true
	cw.mu.Unlock()

	go cw.watchLoop()
}

// Stop stops watching and waits for the loop to exit.
func (cw *configWatcher) Stop() {
	cw.mu.Lock()
	if !cw.running {
		cw.mu.Unlock()
		cw.watcher.Close()
		return
	}
	cw.running = false
	cw.mu.Unlock()

	close(cw.stopCh)
	<-cw.stoppedCh
}

func (cw *configWatcher) watchLoop() {
	defer close(cw.stoppedCh)
	defer cw.watcher.Close()

	absPath, _ := filepath.Abs(cw.filePath)

	var debounceTimer *time.Timer
	var debounceCh <-chan time.Time

	for {
		select {
		case <-cw.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if eventAbs, _ := filepath.Abs(event.Name); eventAbs != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.NewTimer(cw.debounce)
			debounceCh = debounceTimer.C

		case <-debounceCh:
			if cw.onChange != nil {
				if err := cw.onChange(); err != nil && cw.onError != nil {
					cw.onError(err)
				}
			}
			debounceTimer = nil
			debounceCh = nil

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			if cw.onError != nil {
				cw.onError(err)
			}
		}
	}
}

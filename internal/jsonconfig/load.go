// Package jsonconfig drives module output from a fastfetch/config.jsonc file.
//
// A load runs to completion or stops at the first failure:
//
//	open backend -> read file -> parse -> validate root -> walk modules -> dispatch
//
// Every failure is reported as a single *Error. The parsed document and the
// backend are released exactly once on every path.
package jsonconfig

import (
	"errors"
	"log/slog"

	"github.com/opd-ai/go-fetch/internal/jsonc"
)

// Options configures Load.
type Options struct {
	// OpenBackend returns the JSON backend. It is called before any file is
	// read. Nil opens jsonc.BackendLibrary.
	OpenBackend func() (jsonc.Backend, error)
	// ConfigDirs are the candidate directories, highest priority first.
	ConfigDirs []string
	// Registry resolves module types to handlers.
	Registry *Registry
	// Logger receives debug output. Nil discards.
	Logger *slog.Logger
}

// Load reads the first config file found in opts.ConfigDirs and prints
// every module it lists.
func Load(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.Registry == nil {
		return errors.New("jsonconfig: no module registry")
	}

	open := opts.OpenBackend
	if open == nil {
		open = func() (jsonc.Backend, error) { return jsonc.Open(jsonc.BackendLibrary) }
	}

	backend, err := open()
	if err != nil {
		return &Error{Kind: KindMissingBackend, Message: err.Error(), Err: err}
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Warn("failed to release JSON backend", "backend", backend.Name(), "error", err)
		}
	}()
	logger.Debug("JSON backend bound", "backend", backend.Name())

	content, path := ReadConfig(opts.ConfigDirs, logger)

	root := backend.Parse(string(content))
	if root == jsonc.Nil {
		return &Error{Kind: KindParseFailure, Message: MsgParseFailure, Detail: path}
	}
	defer backend.Put(root)

	return walkWithLogger(backend, root, opts.Registry.Dispatch, logger)
}

package fetch

import (
	"io"

	"github.com/opd-ai/go-fetch/internal/jsonc"
	"github.com/opd-ai/go-fetch/internal/jsonconfig"
	"github.com/opd-ai/go-fetch/internal/modules"
)

// Error is the single failure reported by a run.
type Error = jsonconfig.Error

// Run prints every module listed in the first config file found.
func Run(opts Options) error {
	opts = opts.withDefaults()

	inst := modules.NewInstance(opts.Output, opts.Logger)
	reg, err := newRegistry(inst)
	if err != nil {
		return err
	}

	return jsonconfig.Load(jsonconfig.Options{
		OpenBackend: func() (jsonc.Backend, error) { return jsonc.Open(opts.Backend) },
		ConfigDirs:  opts.ConfigDirs,
		Registry:    reg,
		Logger:      opts.Logger,
	})
}

// ModuleTypes lists the supported module types in dispatch order.
func ModuleTypes() []string {
	reg, err := newRegistry(modules.NewInstance(io.Discard, nil))
	if err != nil {
		return nil
	}
	return reg.Types()
}

// PrintError writes err as a single "JsonConfig: message" line.
func PrintError(w io.Writer, err error) {
	jsonconfig.PrintError(w, err)
}

func newRegistry(inst *modules.Instance) (*jsonconfig.Registry, error) {
	builtin := modules.Builtin(inst)
	handlers := make([]jsonconfig.Handler, len(builtin))
	for i, m := range builtin {
		handlers[i] = m
	}
	return jsonconfig.NewRegistry(handlers...)
}

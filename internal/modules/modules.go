// Package modules implements the system information modules that a
// config.jsonc file can list. Each module prints one or more "Key: value"
// lines; a module that cannot gather its data prints an error line in the
// same shape instead of failing the run.
package modules

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/opd-ai/go-fetch/internal/jsonc"
	"github.com/opd-ai/go-fetch/internal/monitor"
)

// Module prints one kind of system information.
type Module interface {
	// Type is the name used for the module in config.jsonc, lower case.
	Type() string
	// Print gathers and prints the module's data. opts is the module's
	// object from the config file, or the zero Object for bare names.
	Print(opts jsonc.Object)
}

// Instance carries the output and data sources shared by all modules
// during one run.
type Instance struct {
	Out      io.Writer
	Logger   *slog.Logger
	KeyStyle *color.Color

	SysInfo   *monitor.SysInfoReader
	OSRelease *monitor.OSReleaseReader
	Host      *monitor.HostReader
	Battery   *monitor.BatteryReader
	Display   *monitor.DisplayReader
	Now       func() time.Time

	// titleLength is the width of the last printed title, used by separator.
	titleLength int
}

// NewInstance creates an Instance reading from the live system.
// A nil out writes to stdout; a nil logger discards.
func NewInstance(out io.Writer, logger *slog.Logger) *Instance {
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Instance{
		Out:       out,
		Logger:    logger,
		KeyStyle:  color.New(color.FgBlue, color.Bold),
		SysInfo:   monitor.NewSysInfoReader(),
		OSRelease: monitor.NewOSReleaseReader(),
		Host:      monitor.NewHostReader(),
		Battery:   monitor.NewBatteryReader(),
		Display:   monitor.NewDisplayReader(),
		Now:       time.Now,
	}
}

// Builtin returns every module in dispatch order:
// title, battery, command, datetime, display, host, kernel, os, separator.
func Builtin(inst *Instance) []Module {
	return []Module{
		&titleModule{inst: inst},
		&batteryModule{inst: inst},
		&commandModule{inst: inst},
		&dateTimeModule{inst: inst},
		&displayModule{inst: inst},
		&hostModule{inst: inst},
		&kernelModule{inst: inst},
		&osModule{inst: inst},
		&separatorModule{inst: inst},
	}
}

// key returns the label for a line, honouring the "key" option.
func key(def string, opts jsonc.Object) string {
	if k, ok := opts.String("key"); ok {
		return k
	}
	return def
}

// printLine writes "Key: value".
func (inst *Instance) printLine(defKey string, opts jsonc.Object, value string) {
	inst.KeyStyle.Fprint(inst.Out, key(defKey, opts))
	fmt.Fprintf(inst.Out, ": %s\n", value)
}

// printError writes "Key: <error>" for a module that could not gather data.
func (inst *Instance) printError(defKey string, opts jsonc.Object, err error) {
	inst.Logger.Debug("module failed", "module", defKey, "error", err)
	inst.printLine(defKey, opts, err.Error())
}

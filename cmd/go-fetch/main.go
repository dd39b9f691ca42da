// Package main provides the go-fetch command, which prints system
// information laid out by a fastfetch/config.jsonc file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/opd-ai/go-fetch/internal/jsonc"
	"github.com/opd-ai/go-fetch/internal/profiling"
	"github.com/opd-ai/go-fetch/pkg/fetch"
)

// Version is the current version of go-fetch.
// This default value can be overridden at build time using:
//
//	go build -ldflags "-X main.Version=x.y.z"
var Version = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := rootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		printError(stderr, err)
		return 1
	}
	return 0
}

// printError writes config failures as a "JsonConfig:" line and anything
// else as "Error:".
func printError(w io.Writer, err error) {
	var cfgErr *fetch.Error
	if errors.As(err, &cfgErr) {
		fetch.PrintError(w, err)
		return
	}
	fmt.Fprintf(w, "Error: %s\n", err)
}

type rootFlags struct {
	configDirs []string
	backend    string
	watch      bool
	debug      bool
	logJSON    bool
	profile    profiling.Config
}

func rootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "go-fetch",
		Short: "Print system information from a fastfetch config.jsonc",
		Long: `go-fetch reads fastfetch/config.jsonc from the first config directory
that has one and prints every module listed in its "modules" array.

Supported modules: title, battery, command, datetime, display, host,
kernel, os, separator.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			prof, err := profiling.Start(f.profile)
			if err != nil {
				return err
			}
			defer func() {
				if stopErr := prof.Stop(); stopErr != nil && err == nil {
					err = stopErr
				}
			}()

			opts := f.options(stdout, stderr)
			if !opts.WatchConfig {
				return fetch.Run(opts)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return fetch.Watch(ctx, opts, func(err error) {
				printError(stderr, err)
			})
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetContext(context.Background())

	flags := cmd.Flags()
	cmd.PersistentFlags().StringArrayVarP(&f.configDirs, "config-dir", "c", nil, "search this directory for fastfetch/config.jsonc (repeatable, replaces the defaults)")
	flags.StringVar(&f.backend, "json-backend", jsonc.BackendLibrary, `JSON backend: "libjson-c" or "native"`)
	flags.BoolVarP(&f.watch, "watch", "w", false, "re-run whenever the config file changes")
	flags.BoolVar(&f.debug, "debug", false, "log debug messages to stderr")
	flags.BoolVar(&f.logJSON, "log-json", false, "log in JSON format")
	flags.StringVar(&f.profile.CPUProfilePath, "cpuprofile", "", "write a CPU profile to this file")
	flags.StringVar(&f.profile.MemProfilePath, "memprofile", "", "write a heap profile to this file")
	_ = flags.MarkHidden("cpuprofile")
	_ = flags.MarkHidden("memprofile")

	cmd.AddCommand(
		versionCmd(stdout),
		modulesCmd(stdout),
		dirsCmd(stdout, &f),
	)
	return cmd
}

func (f *rootFlags) options(stdout, stderr io.Writer) fetch.Options {
	opts := fetch.DefaultOptions()
	if len(f.configDirs) > 0 {
		opts.ConfigDirs = f.configDirs
	}
	opts.Backend = f.backend
	opts.Output = stdout
	opts.WatchConfig = f.watch
	opts.Logger = f.logger(stderr)
	return opts
}

func (f *rootFlags) logger(stderr io.Writer) *slog.Logger {
	switch {
	case f.logJSON && f.debug:
		return fetch.JSONLogger(stderr, slog.LevelDebug)
	case f.logJSON:
		return fetch.JSONLogger(stderr, slog.LevelInfo)
	case f.debug:
		return fetch.DebugLogger()
	default:
		return fetch.DefaultLogger()
	}
}

func versionCmd(stdout io.Writer) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				fmt.Fprintln(stdout, Version)
				return
			}
			fmt.Fprintf(stdout, "go-fetch version %s\n", Version)
			fmt.Fprintf(stdout, "  Go version: %s\n", runtime.Version())
			fmt.Fprintf(stdout, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(stdout, "  libjson-c:  %v\n", jsonc.DefaultLibraryNames())
		},
	}
	cmd.Flags().BoolVarP(&short, "short", "s", false, "print only the version number")
	return cmd
}

func modulesCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List supported module types in dispatch order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, typ := range fetch.ModuleTypes() {
				fmt.Fprintln(stdout, typ)
			}
		},
	}
}

func dirsCmd(stdout io.Writer, f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dirs",
		Short: "Print the candidate config directories, highest priority first",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			opts := fetch.DefaultOptions()
			if len(f.configDirs) > 0 {
				opts.ConfigDirs = f.configDirs
			}
			for _, dir := range opts.ConfigDirs {
				fmt.Fprintln(stdout, dir)
			}
		},
	}
}

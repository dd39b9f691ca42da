// Package fetch is the public API for printing system information from a
// fastfetch-style config.jsonc file.
//
// # Basic Usage
//
//	if err := fetch.Run(fetch.DefaultOptions()); err != nil {
//		fetch.PrintError(os.Stderr, err)
//		os.Exit(1)
//	}
//
// Run searches the candidate config directories in order, reads the first
// fastfetch/config.jsonc it finds and prints every module listed in its
// "modules" array. A run either prints all modules or stops at the first
// problem and returns it as a single error.
//
// # JSON Backends
//
// By default the file is parsed by libjson-c, bound at runtime without cgo.
// Set Options.Backend to "native" to use the built-in parser instead. It
// accepts comments and trailing commas but, unlike libjson-c, rejects
// single-quoted strings and text after the first value.
//
// # Watch Mode
//
// [Watch] performs a run, then repeats it each time the config file changes:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//	err := fetch.Watch(ctx, opts, func(err error) {
//		fetch.PrintError(os.Stderr, err)
//	})
package fetch

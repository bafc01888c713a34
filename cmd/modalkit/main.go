// Package main is a terminal demo for the modalkit shim. It opens two
// views on one buffer side by side so selection mirroring, drag
// gestures, and mode transitions can be watched live.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/modalkit/modalkit/internal/config"
	"github.com/modalkit/modalkit/internal/hook"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	log := zerolog.Nop()
	if opts.LogPath != "" {
		f, err := os.OpenFile(opts.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		log = zerolog.New(f).With().Timestamp().Logger()
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.ScriptPath != "" {
		cfg.HookScript = opts.ScriptPath
	}

	var hooks *hook.Runner
	if cfg.HookScript != "" {
		hooks, err = hook.NewRunner(cfg.HookScript, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer hooks.Close()
	}

	a, err := newApp(cfg, hooks, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer a.shutdown()

	if err := a.loop(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// options holds the command-line options.
type options struct {
	ConfigPath string
	ScriptPath string
	LogPath    string
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.ScriptPath, "script", "", "Path to Lua hook script")
	flag.StringVar(&opts.ScriptPath, "s", "", "Path to Lua hook script (shorthand)")
	flag.StringVar(&opts.LogPath, "log", "", "Path to debug log file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "modalkit demo - two views, one buffer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: modalkit [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys: drag to select, click to place the caret,\n")
		fmt.Fprintf(os.Stderr, "i enters insert mode, Esc leaves, : opens the\n")
		fmt.Fprintf(os.Stderr, "command line, q quits.\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("modalkit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	return opts
}

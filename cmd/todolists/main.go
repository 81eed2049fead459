package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/todolists/internal/cli"
	"github.com/Makepad-fr/todolists/internal/config"
	"github.com/Makepad-fr/todolists/internal/logging"
	"github.com/Makepad-fr/todolists/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		ui.Fail(os.Stderr, "config: "+err.Error())
		os.Exit(2)
	}

	// Root flags (apply to every subcommand) override the environment.
	flag.StringVar(&cfg.UI.Theme, "theme", cfg.UI.Theme, "output theme: classic, neon or mono")
	flag.BoolVar(&cfg.UI.NoColor, "no-color", cfg.UI.NoColor, "disable colors")
	flag.BoolVar(&cfg.UI.ForceColor, "force-color", cfg.UI.ForceColor, "color even when stdout is not a terminal")
	flag.StringVar(&cfg.Log.File, "log-file", cfg.Log.File, "append logs to this file")
	flag.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level: debug, info, warn, error")
	empty := flag.Bool("empty", !cfg.Seed, "start without the starter lists")
	flag.Usage = func() { cli.PrintHelp(os.Stderr) }
	flag.Parse()
	cfg.Seed = !*empty

	if err := cfg.Validate(); err != nil {
		ui.Fail(os.Stderr, "config: "+err.Error())
		os.Exit(2)
	}
	ui.SetTheme(cfg.UI.Theme)
	ui.SetColorForcing(cfg.UI.ForceColor, cfg.UI.NoColor)

	args := flag.Args()
	logger, closeLog, err := setupLogger(cfg, len(args) == 0 || args[0] == "ui")
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		Seed:   cfg.Seed,
		Logger: logger,
	})
	closeLog()
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}

// setupLogger writes to the configured file, otherwise to stderr. The TUI
// owns the terminal, so without a file its logs are dropped.
func setupLogger(cfg config.Config, interactive bool) (*log.Logger, func(), error) {
	if cfg.Log.File != "" {
		l, f, err := logging.Open(cfg.Log.File, cfg.Log.Level)
		if err != nil {
			return nil, nil, err
		}
		return l, func() { f.Close() }, nil
	}
	if interactive {
		return logging.Discard(), func() {}, nil
	}
	l, err := logging.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	return l, func() {}, nil
}

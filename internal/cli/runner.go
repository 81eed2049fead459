package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/todolists/internal/script"
	"github.com/Makepad-fr/todolists/internal/store"
	"github.com/Makepad-fr/todolists/internal/store/jsonstore"
	"github.com/Makepad-fr/todolists/internal/tui"
	"github.com/Makepad-fr/todolists/internal/ui"
)

// Version is printed by `todolists version`.
var Version = "0.1.0"

// Options tune behavior from root flags and config.
type Options struct {
	Seed   bool        // start from the starter board
	Logger *log.Logger // nil discards

	Out, Err io.Writer // default os.Stdout / os.Stderr
	In       io.Reader // script input for `run -`, default os.Stdin

	// RunTUI starts the interactive board; tests replace it.
	RunTUI func(*store.Store, *log.Logger) error
}

func (o *Options) defaults() {
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.RunTUI == nil {
		o.RunTUI = tui.Run
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		return doUI(opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0

	case "version":
		fmt.Fprintf(opt.Out, "todolists %s\n", Version)
		return 0

	case "ui":
		if len(a) != 0 {
			ui.Fail(opt.Err, "usage: todolists ui")
			return 2
		}
		return doUI(opt)

	case "show":
		fs, asJSON := outputFlags("show")
		if err := fs.Parse(a); err != nil || fs.NArg() != 0 {
			ui.Fail(opt.Err, "usage: todolists show [--json]")
			return 2
		}
		return doShow(opt, *asJSON)

	case "run":
		fs, asJSON := outputFlags("run")
		if err := fs.Parse(a); err != nil || fs.NArg() != 1 {
			ui.Fail(opt.Err, "usage: todolists run [--json] <file|->")
			return 2
		}
		return doRun(opt, fs.Arg(0), *asJSON)
	}

	ui.Fail(opt.Err, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Err)
	PrintHelp(opt.Err)
	return 2
}

func outputFlags(name string) (*flag.FlagSet, *bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	asJSON := fs.Bool("json", false, "print the board as JSON")
	return fs, asJSON
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `todolists - multiple to-do lists in the terminal

Usage:
  todolists [flags] [subcommand] [args]

Subcommands:
  ui                     Interactive board (default)
  show [--json]          Print every list with its filter applied
  run [--json] <file|->  Apply a script, then print the board
  version                Print the version
  help                   Show this help

Flags:
  --theme classic|neon|mono   Output theme
  --no-color / --force-color  Color handling for show and run
  --empty                     Start without the starter lists
  --log-file <path>           Write logs to a file
  --log-level <level>         debug, info, warn, error

Script commands (lists and tasks are 1-based indexes):
  list <title...>        rename <list> <title...>   rmlist <list>
  filter <list> all|active|completed
  add <list> <title...>  rm <list> <task>
  done <list> <task>     undo <list> <task>

Examples:
  todolists
  todolists --empty run tasks.txt
  echo "add 1 Milk" | todolists run -
`)
}

// -------------- subcommand impls ----------------

func newStore(opt Options) (*store.Store, error) {
	s := store.New(store.WithLogger(opt.Logger))
	if opt.Seed {
		if _, err := store.Seed(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func doUI(opt Options) int {
	s, err := newStore(opt)
	if err != nil {
		ui.Fail(opt.Err, "init: "+err.Error())
		return 1
	}
	if err := opt.RunTUI(s, opt.Logger); err != nil {
		ui.Fail(opt.Err, err.Error())
		return 1
	}
	return 0
}

func doShow(opt Options, asJSON bool) int {
	s, err := newStore(opt)
	if err != nil {
		ui.Fail(opt.Err, "init: "+err.Error())
		return 1
	}
	return printBoard(opt, s.Snapshot(), asJSON)
}

func doRun(opt Options, path string, asJSON bool) int {
	var r io.Reader = opt.In
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			ui.Fail(opt.Err, "open script: "+err.Error())
			return 1
		}
		defer f.Close()
		r = f
	}

	s, err := newStore(opt)
	if err != nil {
		ui.Fail(opt.Err, "init: "+err.Error())
		return 1
	}
	failed, err := script.Run(r, s, opt.Logger)
	for _, le := range failed {
		ui.Fail(opt.Err, le.Error())
	}
	if err != nil {
		ui.Fail(opt.Err, err.Error())
		return 1
	}

	if code := printBoard(opt, s.Snapshot(), asJSON); code != 0 {
		return code
	}
	if len(failed) > 0 {
		return 1
	}
	return 0
}

func printBoard(opt Options, snap store.Snapshot, asJSON bool) int {
	if asJSON {
		if err := jsonstore.Write(opt.Out, snap); err != nil {
			ui.Fail(opt.Err, err.Error())
			return 1
		}
		return 0
	}
	ui.Board(opt.Out, snap)
	return 0
}

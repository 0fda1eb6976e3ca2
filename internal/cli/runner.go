package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/idilsaglam/counter/internal/config"
	"github.com/idilsaglam/counter/internal/logging"
	"github.com/idilsaglam/counter/internal/tui"
	"github.com/idilsaglam/counter/internal/ui"
	"github.com/idilsaglam/counter/internal/widget"
)

var errUnknownClick = errors.New("unknown click")

// Options tune output behavior from root flags.
type Options struct {
	Theme   string // overrides ui.theme from config when set
	Color   bool   // force color even without a TTY
	NoColor bool

	Stdout io.Writer
	Stderr io.Writer
}

func (o *Options) defaults() {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.defaults()

	cmd, a := "run", []string(nil)
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0
	case "run", "render", "hooks":
	default:
		ui.Ffail(opt.Stderr, "unknown subcommand: "+cmd)
		fmt.Fprintln(opt.Stderr)
		PrintHelp(opt.Stderr)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		ui.Ffail(opt.Stderr, "config: "+err.Error())
		return 1
	}
	theme := cfg.UI.Theme
	if opt.Theme != "" {
		theme = opt.Theme
	}
	ui.SetTheme(theme)
	ui.SetColorForcing(opt.Color, opt.NoColor || ui.Current().Name == "mono")

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		ui.Ffail(opt.Stderr, "logging: "+err.Error())
		return 1
	}
	defer closer.Close()

	switch cmd {
	case "run":
		if len(a) != 0 {
			ui.Ffail(opt.Stderr, "usage: counter run")
			return 2
		}
		return doRun(cfg, logger, opt)

	case "render":
		return doReplay(a, opt, tui.Snapshot)

	case "hooks":
		return doReplay(a, opt, func(w *widget.Widget) string {
			return strings.TrimSuffix(w.Render().Outline(), "\n")
		})
	}
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `counter - a tiny counter widget

Usage:
  counter [flags] <subcommand> [args]

Flags:
  --theme <classic|neon|mono>   Override the configured theme
  --color / --no-color          Force or disable colors

Subcommands:
  run                   Interactive widget (default)
  render [inc|dec...]   Replay clicks and print the widget
  hooks  [inc|dec...]   Replay clicks and print elements with their %s hooks
  help                  Show this help

Examples:
  counter
  counter render dec
  counter hooks + + -
`, widget.HookAttr)
}

// -------------- subcommand impls ----------------

func doRun(cfg config.Config, logger *log.Logger, opt Options) int {
	final, err := tui.Run(tui.Options{
		AltScreen: cfg.UI.AltScreen,
		Mouse:     cfg.UI.Mouse,
		Logger:    logger,
	})
	if err != nil {
		ui.Ffail(opt.Stderr, "tui: "+err.Error())
		return 1
	}
	ui.Fok(opt.Stdout, fmt.Sprintf("counter ended at %d", final.Counter))
	return 0
}

func doReplay(tokens []string, opt Options, draw func(*widget.Widget) string) int {
	w, err := replay(tokens)
	if err != nil {
		ui.Ffail(opt.Stderr, "replay: "+err.Error())
		fmt.Fprintln(opt.Stderr, ui.Current().Muted.Render("Hint: clicks are inc, increment, +, dec, decrement or -"))
		return 2
	}
	fmt.Fprintln(opt.Stdout, draw(w))
	return 0
}

// replay mounts a fresh widget and clicks its buttons in order.
func replay(tokens []string) (*widget.Widget, error) {
	hooks := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		hook, err := clickTarget(tok)
		if err != nil {
			return nil, err
		}
		hooks = append(hooks, hook)
	}

	w := widget.New()
	for _, hook := range hooks {
		w.Render().First(hook).Click()
	}
	return w, nil
}

func clickTarget(tok string) (string, error) {
	switch strings.ToLower(tok) {
	case "inc", "increment", "+":
		return widget.HookIncrementButton, nil
	case "dec", "decrement", "-":
		return widget.HookDecrementButton, nil
	}
	return "", fmt.Errorf("%q: %w", tok, errUnknownClick)
}

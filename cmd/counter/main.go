package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/counter/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	theme := flag.String("theme", "", "theme: classic, neon or mono (overrides config)")
	color := flag.Bool("color", false, "force colored output")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	// Hand the remaining args to the CLI runner; no args starts the widget.
	code := cli.Run(flag.Args(), cli.Options{
		Theme:   *theme,
		Color:   *color,
		NoColor: *noColor,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}

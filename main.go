// Package main provides the tuxfetch command-line tool for displaying system
// information next to the logo of the detected distribution.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"tuxfetch/ascii"
	"tuxfetch/render"
	"tuxfetch/sysinfo"
)

// main is the entry point for the tuxfetch application.
// It collects the system snapshot, selects the logo from the OS name and
// prints both side-by-side, followed by the elapsed time on stderr.
func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	start := time.Now()

	flagSet := pflag.NewFlagSet("tuxfetch", pflag.ContinueOnError)
	logo := flagSet.StringP("logo", "l", "", "logo to show instead of the detected distribution")
	gap := flagSet.Int("gap", render.DefaultGap, "number of spaces between logo and info")
	color := flagSet.String("color", "auto", "colorize output: auto, always or never")
	listLogos := flagSet.Bool("list-logos", false, "list the available logos and exit")
	debug := flagSet.Bool("debug", false, "enable debug output (sets "+sysinfo.DebugEnv+")")
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	if *listLogos {
		fmt.Println(strings.Join(ascii.Logos.Names(), "\n"))
		return nil
	}
	if *debug {
		_ = os.Setenv(sysinfo.DebugEnv, "1")
	}
	useColor, err := colorEnabled(*color)
	if err != nil {
		return err
	}

	snap := sysinfo.NewCollector().Collect(context.Background())

	id := *logo
	if id == "" {
		id = ascii.IdentifierFor(snap.OSName)
	}
	entry := ascii.Logos.Select(id)

	opts := render.Options{Gap: *gap, Color: useColor}
	if err := render.Render(os.Stdout, entry, render.InfoLines(snap), opts); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Time elapsed: %s\n", time.Since(start))
	return nil
}

// colorEnabled resolves the --color mode. NO_COLOR always wins; "auto"
// colors only when stdout is a terminal.
func colorEnabled(mode string) (bool, error) {
	if os.Getenv("NO_COLOR") != "" {
		return false, nil
	}
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		return term.IsTerminal(int(os.Stdout.Fd())), nil
	}
	return false, fmt.Errorf("invalid --color value %q", mode)
}

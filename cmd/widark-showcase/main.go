// widark-showcase is a demo of the widark widget engine: frames, buttons,
// a text entry, a list fed by a background load and a modal dialog.
//
// Usage:
//
//	widark-showcase [--palette file.yaml] [--fps 20] [--debug-log path]
//
// Press q or Ctrl+C to quit.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/widark/widark"
	"github.com/widark/widark/internal/debug"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var palette, debugLog string
	var fps int

	flagSet := pflag.NewFlagSet("widark-showcase", pflag.ContinueOnError)
	flagSet.StringVar(&palette, "palette", "", "YAML file overriding the color palette")
	flagSet.IntVar(&fps, "fps", 20, "frames per second (1-240)")
	flagSet.StringVar(&debugLog, "debug-log", "", "write debug logs to this file (default: $"+debug.EnvVar+")")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		return err
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	if debugLog != "" {
		if err := debug.Init(debugLog); err != nil {
			return err
		}
	}
	defer debug.Close()

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return widark.ErrNoTerminal
	}

	opts := []widark.AppOption{
		widark.WithFrameRate(fps),
		widark.WithBuilder(build),
	}
	if palette != "" {
		opts = append(opts, widark.WithPaletteFile(palette))
	}

	app, err := widark.NewApp(opts...)
	if err != nil {
		return err
	}
	app.SetGlobalKeyHandler(func(ev *widark.Event) bool {
		if ev.Key == "q" {
			app.Stop()
			return true
		}
		return false
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx)
}

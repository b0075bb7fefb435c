package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gookit/color"

	"github.com/vk/ediref/internal/app"
	"github.com/vk/ediref/internal/cli"
)

// main is the entrypoint for the ediref tool.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Catalog output goes to outW, log records to logW.
func run(outW, logW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Bold headers only make sense on a color-capable terminal.
	if !color.SupportColor() {
		appConfig.NoColor = true
	}

	ediApp := app.NewApp(outW, logW, appConfig)

	return ediApp.Run(context.Background(), appConfig)
}

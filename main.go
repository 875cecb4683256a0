package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"

	"bmr-calculator/internal/cli"
	"bmr-calculator/ui"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		os.Exit(2)
	}

	// No flags provided or help requested = use GUI
	if cfg == nil {
		if len(os.Args) > 1 {
			return // help was printed
		}
		logger := cli.NewLogger(false, "text", os.Stderr)
		slog.SetDefault(logger)

		a := app.NewWithID("com.bmr-calculator.gui")
		win := ui.BuildMainWindow(a, logger)
		win.ShowAndRun()
		return
	}

	// CLI mode
	logger := cli.NewLogger(cfg.Verbose, cfg.LogFormat, os.Stderr)
	slog.SetDefault(logger)

	if err := cli.Run(*cfg, os.Stdout, os.Stderr, logger); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintf(os.Stderr, "Error: %s\n", exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

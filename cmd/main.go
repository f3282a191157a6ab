package main

import (
	"context"
	"os"

	"github.com/desertthunder/pldl/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	runner := NewRunner(RunnerOpts{Logger: logger})

	app := &cli.Command{
		Name:     "pldl",
		Usage:    "Send playlist URLs to a download backend and watch the result",
		Version:  "0.2.0",
		Flags:    globalFlags(),
		Before:   runner.Configure,
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/desertthunder/pldl/internal/shared"
	"github.com/desertthunder/pldl/internal/tasks"
	"github.com/desertthunder/pldl/internal/trigger"
	"github.com/desertthunder/pldl/internal/ui"
	"github.com/urfave/cli/v3"
)

// Download runs one download cycle per playlist URL and prints each state change.
//
// Backend failures are printed, not returned; only unusable input is an error.
func (r *Runner) Download(ctx context.Context, cmd *cli.Command) error {
	var urls []string
	for _, arg := range cmd.Args().Slice() {
		if strings.TrimSpace(arg) != "" {
			urls = append(urls, arg)
		}
	}

	if path := cmd.String("file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("%w: %v", shared.ErrInvalidArgument, err)
		}
		defer f.Close()

		fromFile, err := tasks.ReadURLs(f)
		if err != nil {
			return err
		}
		urls = append(urls, fromFile...)
	}

	if len(urls) == 0 {
		return fmt.Errorf("%w: playlist URL (argument or --file)", shared.ErrMissingArgument)
	}

	delay, _ := r.config.HideDelay()
	controller := trigger.NewController(trigger.Options{
		Downloader: r.backend,
		Renderer:   ui.NewPlainRenderer(r.output),
		HideDelay:  delay,
		Logger:     r.logger,
	})

	rateLimit := r.config.Batch.RateLimit
	if cmd.IsSet("rate") {
		rateLimit = cmd.Float("rate")
	}

	prog := make(chan tasks.ProgressUpdate, len(urls)*3)
	result, err := tasks.NewBatch(controller, tasks.BatchOpts{RateLimit: rateLimit}).Run(ctx, urls, prog)
	close(prog)

	for update := range prog {
		r.logger.Debug(update.Message, "phase", update.Phase)
	}

	if err != nil {
		return err
	}

	if len(urls) > 1 {
		return r.writePlainln("\n%d succeeded, %d failed, %d skipped", result.Succeeded, result.Failed, result.Skipped)
	}

	return nil
}

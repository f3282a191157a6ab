package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/pldl/internal/shared"
	"github.com/urfave/cli/v3"
)

// Health calls the backend root endpoint and prints its banner.
func (r *Runner) Health(ctx context.Context, cmd *cli.Command) error {
	r.logger.Debug("GET request", "url", r.backend.BaseURL()+"/")

	banner, err := r.backend.Health(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if err := r.writePlainln("✓ %s (%s)", banner, r.backend.BaseURL()); err != nil {
		return err
	}

	if cmd.Bool("open") {
		return openBrowser(r.backend.BaseURL())
	}
	return nil
}

var openBrowser = shared.OpenBrowser

package main

import (
	"context"

	"github.com/desertthunder/pldl/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the embedded example configuration.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("output")
	if path == "" {
		path = cmd.String("config")
	}

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)
	return r.writePlainln("✓ Wrote %s", path)
}

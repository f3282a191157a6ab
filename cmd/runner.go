package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/pldl/internal/services"
	"github.com/desertthunder/pldl/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	backend    *services.BackendService
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Backend    *services.BackendService
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Backend == nil {
		opts.Backend = services.NewBackendService(opts.Config.Backend.URL, opts.HTTPClient)
	}

	return &Runner{
		config:     opts.Config,
		backend:    opts.Backend,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		downloadCommand, tuiCommand, healthCommand, setupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// Configure loads the config file named by --config, applies flag overrides and rebuilds the backend client.
//
// A missing config file is not an error; defaults are used.
func (r *Runner) Configure(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Bool("verbose") {
		shared.SetLogLevel(r.logger, log.DebugLevel)
	}

	configPath := cmd.String("config")
	if _, err := os.Stat(configPath); err == nil {
		config, err := shared.LoadConfig(configPath)
		if err != nil {
			return ctx, err
		}
		r.config = config
		r.logger.Debug("loaded config", "path", configPath)
	}

	if backend := cmd.String("backend"); backend != "" {
		r.config.Backend.URL = backend
	}

	if err := r.config.Validate(); err != nil {
		return ctx, err
	}

	if !cmd.Bool("verbose") {
		shared.SetLogLevel(r.logger, shared.ParseLogLevel(r.config.Log.Level))
	}

	timeout, _ := r.config.RequestTimeout()
	if timeout > 0 {
		r.httpClient = &http.Client{Transport: r.httpClient.Transport, Timeout: timeout}
	}
	r.backend = services.NewBackendService(r.config.Backend.URL, r.httpClient)

	return ctx, nil
}

// SetLogger replaces the logger used by subsequent commands.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

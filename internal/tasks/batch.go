package tasks

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/desertthunder/pldl/internal/shared"
	"github.com/desertthunder/pldl/internal/trigger"
	"golang.org/x/time/rate"
)

// Initiator runs one download cycle. Implemented by [trigger.Controller].
type Initiator interface {
	InitiateDownload(ctx context.Context, rawInput string) (trigger.View, error)
}

// CycleResult is the outcome of one URL in a batch.
type CycleResult struct {
	URL   string
	View  trigger.View
	Error error // set only when the cycle did not run
}

// Succeeded reports whether the backend accepted the URL.
func (r CycleResult) Succeeded() bool {
	return r.Error == nil && r.View.Phase == trigger.Succeeded
}

// BatchResult summarizes a batch.
type BatchResult struct {
	Results   []CycleResult
	Succeeded int
	Failed    int
	Skipped   int // busy trigger or blank input
}

// BatchOpts contains configuration for a batch.
type BatchOpts struct {
	RateLimit float64 // Cycles per second; zero or negative runs unpaced
}

// Batch runs cycles for several URLs.
type Batch struct {
	initiator Initiator
	limiter   *rate.Limiter
}

// NewBatch creates a Batch over initiator.
func NewBatch(initiator Initiator, opts BatchOpts) *Batch {
	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}

	return &Batch{
		initiator: initiator,
		limiter:   rate.NewLimiter(limit, 1),
	}
}

// Run issues one cycle per URL in order. A cancelled context stops the batch before the next cycle.
//
// Backend failures are recorded in the results; only context cancellation is returned as an error.
func (b *Batch) Run(ctx context.Context, urls []string, prog chan<- ProgressUpdate) (*BatchResult, error) {
	if len(urls) == 0 {
		return nil, fmt.Errorf("%w: no playlist URLs", shared.ErrMissingArgument)
	}

	result := &BatchResult{Results: make([]CycleResult, 0, len(urls))}
	total := len(urls)

	for i, url := range urls {
		step := i + 1

		if err := b.limiter.Wait(ctx); err != nil {
			return result, fmt.Errorf("batch interrupted: %w", err)
		}

		sendProgress(prog, startCycleUpdate(step, total, url))

		view, err := b.initiator.InitiateDownload(ctx, url)
		res := CycleResult{URL: url, View: view, Error: err}
		result.Results = append(result.Results, res)

		switch {
		case err != nil:
			result.Skipped++
			sendProgress(prog, skipCycleUpdate(step, total, url, err))
			continue
		case res.Succeeded():
			result.Succeeded++
		case view.Phase == trigger.Idle:
			result.Skipped++
		default:
			result.Failed++
		}

		sendProgress(prog, finishCycleUpdate(step, total, res))
	}

	return result, nil
}

// ReadURLs parses one URL per line, skipping blank lines and lines starting with '#'.
func ReadURLs(r io.Reader) ([]string, error) {
	var urls []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read urls: %w", err)
	}
	return urls, nil
}

// sendProgress sends a progress update without blocking.
func sendProgress(prog chan<- ProgressUpdate, update ProgressUpdate) {
	if prog == nil {
		return
	}
	select {
	case prog <- update:
	default:
	}
}

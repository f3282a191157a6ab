package tasks

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/pldl/internal/services"
	"github.com/desertthunder/pldl/internal/shared"
	tu "github.com/desertthunder/pldl/internal/testing"
	"github.com/desertthunder/pldl/internal/trigger"
)

func newController(d services.Downloader) *trigger.Controller {
	return trigger.NewController(trigger.Options{
		Downloader: d,
		Scheduler:  &tu.FakeScheduler{},
		Logger:     shared.NewLogger(io.Discard),
	})
}

// outcomeDownloader fails for URLs containing "bad".
type outcomeDownloader struct {
	calls []string
}

func (o *outcomeDownloader) Download(ctx context.Context, url string) (*services.DownloadResponse, error) {
	o.calls = append(o.calls, url)
	if strings.Contains(url, "bad") {
		return nil, &services.StatusError{Code: 500, Message: "Invalid URL"}
	}
	return &services.DownloadResponse{Message: "Download completed successfully!"}, nil
}

func TestBatch_Run(t *testing.T) {
	tests := []struct {
		name          string
		urls          []string
		wantSucceeded int
		wantFailed    int
		wantSkipped   int
	}{
		{name: "single success", urls: []string{"https://example.com/a"}, wantSucceeded: 1},
		{name: "mixed outcomes", urls: []string{"https://example.com/a", "https://example.com/bad", "https://example.com/c"}, wantSucceeded: 2, wantFailed: 1},
		{name: "all failures", urls: []string{"bad-1", "bad-2"}, wantFailed: 2},
		{name: "blank entry is skipped", urls: []string{"https://example.com/a", "   "}, wantSucceeded: 1, wantSkipped: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &outcomeDownloader{}
			batch := NewBatch(newController(d), BatchOpts{})

			result, err := batch.Run(context.Background(), tt.urls, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.Succeeded != tt.wantSucceeded || result.Failed != tt.wantFailed || result.Skipped != tt.wantSkipped {
				t.Errorf("got succeeded=%d failed=%d skipped=%d", result.Succeeded, result.Failed, result.Skipped)
			}
			if len(result.Results) != len(tt.urls) {
				t.Fatalf("expected %d results, got %d", len(tt.urls), len(result.Results))
			}
			var sent []string
			for _, url := range tt.urls {
				if strings.TrimSpace(url) != "" {
					sent = append(sent, url)
				}
			}
			if len(d.calls) != len(sent) {
				t.Fatalf("expected %d requests, got %d", len(sent), len(d.calls))
			}
			for i, url := range sent {
				if d.calls[i] != url {
					t.Errorf("call %d: expected %s, got %s", i, url, d.calls[i])
				}
			}
			for i := range result.Results {
				if result.Results[i].View.Busy() {
					t.Errorf("result %d left the trigger busy", i)
				}
			}
		})
	}
}

func TestBatch_Run_NoURLs(t *testing.T) {
	batch := NewBatch(newController(&outcomeDownloader{}), BatchOpts{})

	_, err := batch.Run(context.Background(), nil, nil)
	if !errors.Is(err, shared.ErrMissingArgument) {
		t.Errorf("expected ErrMissingArgument, got %v", err)
	}
}

func TestBatch_Run_Cancelled(t *testing.T) {
	d := &outcomeDownloader{}
	batch := NewBatch(newController(d), BatchOpts{RateLimit: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := batch.Run(ctx, []string{"https://example.com/a"}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(d.calls) != 0 {
		t.Errorf("expected no requests after cancellation, got %d", len(d.calls))
	}
	if result == nil || len(result.Results) != 0 {
		t.Errorf("expected empty partial result, got %+v", result)
	}
}

// busyInitiator always reports an in-flight cycle.
type busyInitiator struct{}

func (busyInitiator) InitiateDownload(ctx context.Context, raw string) (trigger.View, error) {
	return trigger.NewView().Begin(), shared.ErrBusy
}

func TestBatch_Run_Skipped(t *testing.T) {
	prog := make(chan ProgressUpdate, 10)
	result, err := NewBatch(busyInitiator{}, BatchOpts{}).Run(context.Background(), []string{"a"}, prog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Skipped != 1 {
		t.Errorf("expected one skipped cycle, got %d", result.Skipped)
	}
	close(prog)

	var phases []Phase
	for u := range prog {
		phases = append(phases, u.Phase)
	}
	if len(phases) != 2 || phases[0] != StartCycle || phases[1] != SkipCycle {
		t.Errorf("unexpected progress phases %v", phases)
	}
}

func TestBatch_Run_Paced(t *testing.T) {
	d := &outcomeDownloader{}
	batch := NewBatch(newController(d), BatchOpts{RateLimit: 20})

	start := time.Now()
	if _, err := batch.Run(context.Background(), []string{"a", "b", "c"}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// burst of 1: the second and third cycles each wait ~50ms
	if elapsed := time.Since(start); elapsed < 80*time.Millisecond {
		t.Errorf("expected paced run, finished in %v", elapsed)
	}
}

func TestProgressUpdate_NonBlocking(t *testing.T) {
	prog := make(chan ProgressUpdate)
	done := make(chan struct{})

	go func() {
		NewBatch(newController(&outcomeDownloader{}), BatchOpts{}).Run(context.Background(), []string{"a", "b"}, prog)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("batch blocked on an unread progress channel")
	}
}

func TestProgressUpdate_Messages(t *testing.T) {
	prog := make(chan ProgressUpdate, 10)
	NewBatch(newController(&outcomeDownloader{}), BatchOpts{}).Run(context.Background(), []string{"https://example.com/bad"}, prog)
	close(prog)

	var finish ProgressUpdate
	for u := range prog {
		if u.Phase == FinishCycle {
			finish = u
		}
	}

	if !strings.Contains(finish.Message, "✗") || !strings.Contains(finish.Message, "Invalid URL") {
		t.Errorf("unexpected finish message %q", finish.Message)
	}
	if _, ok := finish.Data.(CycleResult); !ok {
		t.Errorf("expected CycleResult data, got %T", finish.Data)
	}
}

func TestReadURLs(t *testing.T) {
	input := `# playlists to fetch
https://example.com/a

   https://example.com/b
# done
`
	urls, err := ReadURLs(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(urls) != 2 || urls[0] != "https://example.com/a" || urls[1] != "https://example.com/b" {
		t.Errorf("unexpected urls %v", urls)
	}
}

func TestPhaseString(t *testing.T) {
	for phase, want := range map[Phase]string{StartCycle: "start_cycle", FinishCycle: "finish_cycle", SkipCycle: "skip_cycle", Phase(9): ""} {
		if got := phase.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", phase, got, want)
		}
	}
}

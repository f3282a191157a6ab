package trigger

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/pldl/internal/services"
	"github.com/desertthunder/pldl/internal/shared"
)

// DefaultHideDelay is how long the progress indicator stays up after an outcome.
const DefaultHideDelay = 5 * time.Second

// Renderer draws a [View].
//
// Render is called from the goroutine running the cycle, and from the [Scheduler]'s goroutine when the progress indicator is hidden.
type Renderer interface {
	Render(View)
}

// RenderFunc adapts a function to [Renderer].
type RenderFunc func(View)

func (f RenderFunc) Render(v View) { f(v) }

// Scheduler runs f once after d. The returned value cancels it.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) interface{ Stop() bool }
}

type clock struct{}

func (clock) AfterFunc(d time.Duration, f func()) interface{ Stop() bool } {
	return time.AfterFunc(d, f)
}

// Options configures a [Controller].
type Options struct {
	Downloader services.Downloader
	Renderer   Renderer
	Scheduler  Scheduler     // defaults to the wall clock
	HideDelay  time.Duration // defaults to [DefaultHideDelay]
	Logger     *log.Logger
}

// Controller runs download cycles against a [services.Downloader] and renders each state change.
type Controller struct {
	downloader services.Downloader
	renderer   Renderer
	scheduler  Scheduler
	delay      time.Duration
	logger     *log.Logger

	mu    sync.Mutex
	view  View
	cycle int
	hide  interface{ Stop() bool }
}

// NewController creates a Controller in the idle state.
func NewController(opts Options) *Controller {
	if opts.Renderer == nil {
		opts.Renderer = RenderFunc(func(View) {})
	}
	if opts.Scheduler == nil {
		opts.Scheduler = clock{}
	}
	if opts.HideDelay <= 0 {
		opts.HideDelay = DefaultHideDelay
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &Controller{
		downloader: opts.Downloader,
		renderer:   opts.Renderer,
		scheduler:  opts.Scheduler,
		delay:      opts.HideDelay,
		logger:     opts.Logger,
		view:       NewView(),
	}
}

// View returns the current view.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// InitiateDownload runs one cycle for rawInput and returns the view it finished in.
//
// Empty input renders a warning without a network call. A call made while a cycle is
// in flight is ignored, like a click on a disabled button, and returns the current view
// with [shared.ErrBusy]. Backend failures, including a panicking downloader, are rendered,
// not returned.
func (c *Controller) InitiateDownload(ctx context.Context, rawInput string) (View, error) {
	if current := c.View(); current.Busy() {
		return current, shared.ErrBusy
	}

	url := strings.TrimSpace(rawInput)
	if url == "" {
		return c.update(func(v View) View { return v.Warn() }), nil
	}

	cycle, ok := c.acquire()
	if !ok {
		return c.View(), shared.ErrBusy
	}
	defer c.release()

	logger := shared.WithLogger(c.logger, "cycle", cycle, "playlist_url", url)
	logger.Info("sending download request")

	resp, err := c.download(ctx, url)
	if err != nil {
		logger.Error("download request failed", "error", err)
	} else if resp != nil {
		logger.Info("download request succeeded", "message", resp.Message)
	}

	final := c.update(func(v View) View { return v.Complete(resp, err) })
	c.scheduleHide(cycle)
	return final.Release(), nil
}

// download calls the downloader and reports a panic as an error.
func (c *Controller) download(ctx context.Context, url string) (resp *services.DownloadResponse, err error) {
	defer func() {
		if p := recover(); p != nil {
			resp, err = nil, fmt.Errorf("%w: downloader panicked: %v", shared.ErrAPIRequest, p)
		}
	}()
	return c.downloader.Download(ctx, url)
}

// acquire enters [Sending] unless the trigger is already disabled.
func (c *Controller) acquire() (int, bool) {
	c.mu.Lock()
	if c.view.Busy() {
		c.mu.Unlock()
		return 0, false
	}
	if c.hide != nil {
		c.hide.Stop()
		c.hide = nil
	}
	c.cycle++
	c.view = c.view.Begin()
	cycle, view := c.cycle, c.view
	c.mu.Unlock()

	c.renderer.Render(view)
	return cycle, true
}

func (c *Controller) release() {
	c.update(func(v View) View { return v.Release() })
}

// update applies fn to the current view and renders the result.
func (c *Controller) update(fn func(View) View) View {
	c.mu.Lock()
	c.view = fn(c.view)
	view := c.view
	c.mu.Unlock()

	c.renderer.Render(view)
	return view
}

func (c *Controller) scheduleHide(cycle int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.hide = c.scheduler.AfterFunc(c.delay, func() {
		c.mu.Lock()
		if c.cycle != cycle || !c.view.Progress.Visible {
			c.mu.Unlock()
			return
		}
		c.view = c.view.HideProgress()
		view := c.view
		c.mu.Unlock()

		c.renderer.Render(view)
	})
}

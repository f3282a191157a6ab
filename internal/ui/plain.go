package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/desertthunder/pldl/internal/trigger"
)

var _ trigger.Renderer = (*PlainRenderer)(nil)

// PlainRenderer writes one line per visible change of a [trigger.View].
type PlainRenderer struct {
	mu   sync.Mutex
	w    io.Writer
	bar  progress.Model
	last string
}

// NewPlainRenderer creates a renderer writing to w.
func NewPlainRenderer(w io.Writer) *PlainRenderer {
	return &PlainRenderer{
		w:   w,
		bar: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(20)),
	}
}

// Render writes v unless it looks the same as the previous line.
func (r *PlainRenderer) Render(v trigger.View) {
	r.mu.Lock()
	defer r.mu.Unlock()

	line := r.format(v)
	if line == r.last {
		return
	}
	r.last = line
	fmt.Fprintln(r.w, line)
}

func (r *PlainRenderer) format(v trigger.View) string {
	line := fmt.Sprintf("[%s] %s", v.Button.Label, styles.Tone(v.Status.Tone).Render(v.Status.Text))
	if v.Progress.Visible {
		line = fmt.Sprintf("%s  %s %s", line, r.bar.ViewAs(v.Progress.Percent), v.Progress.Label)
	}
	return line
}

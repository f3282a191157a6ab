package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/pldl/internal/services"
	"github.com/desertthunder/pldl/internal/shared"
	"github.com/desertthunder/pldl/internal/trigger"
)

const maxBarWidth = 60

// Options configures a [Model].
type Options struct {
	Backend   services.Downloader
	HideDelay time.Duration // defaults to [trigger.DefaultHideDelay]
	Logger    *log.Logger
}

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	backend services.Downloader
	delay   time.Duration
	logger  *log.Logger
	input   textinput.Model
	bar     progress.Model
	view    trigger.View
	cycle   int
	width   int
	help    help.Model
	keys    keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, opts Options) *Model {
	if opts.HideDelay <= 0 {
		opts.HideDelay = trigger.DefaultHideDelay
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	input := textinput.New()
	input.Placeholder = "https://www.youtube.com/playlist?list=..."
	input.Prompt = "Playlist URL: "
	input.CharLimit = 2048
	input.Width = maxBarWidth
	input.Focus()

	return &Model{
		ctx:     ctx,
		backend: opts.Backend,
		delay:   opts.HideDelay,
		logger:  opts.Logger,
		input:   input,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(maxBarWidth)),
		view:    trigger.NewView(),
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init starts the cursor blinking in the URL input.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// State returns the current trigger view.
func (m *Model) State() trigger.View {
	return m.view
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = min(max(msg.Width-4, 10), maxBarWidth)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.submit):
			return m, m.submit()
		case key.Matches(msg, m.keys.help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.clear):
			if !m.view.Busy() {
				m.input.Reset()
			}
			return m, nil
		}

	case Msg:
		return m.handleMsg(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit starts a cycle for the input's value. Ignored while the trigger is disabled.
func (m *Model) submit() tea.Cmd {
	if m.view.Busy() {
		return nil
	}

	url := strings.TrimSpace(m.input.Value())
	if url == "" {
		m.view = m.view.Warn()
		return nil
	}

	m.cycle++
	m.view = m.view.Begin()
	m.input.Blur()

	cycle, ctx, backend := m.cycle, m.ctx, m.backend
	m.logger.Info("sending download request", "cycle", cycle, "playlist_url", url)

	return func() tea.Msg {
		resp, err := backend.Download(ctx, url)
		return downloadCompleteMsg(cycle, resp, err)
	}
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgDownloadComplete:
		if msg.cycle != m.cycle {
			return m, nil
		}
		res := msg.data.(downloadResult)
		if res.err != nil {
			m.logger.Error("download request failed", "cycle", msg.cycle, "error", res.err)
		}

		m.view = m.view.Complete(res.resp, res.err).Release()
		m.input.Focus()

		cycle := msg.cycle
		return m, tea.Tick(m.delay, func(time.Time) tea.Msg { return hideProgressMsg(cycle) })

	case MsgHideProgress:
		if msg.cycle == m.cycle {
			m.view = m.view.HideProgress()
		}
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.title.Render("Playlist Downloader"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(styles.Button(m.view.Button).Render(m.view.Button.Label))
	b.WriteString("\n\n")

	if m.view.Status.Text != "" {
		b.WriteString(styles.Tone(m.view.Status.Tone).Render(m.view.Status.Text))
		b.WriteString("\n\n")
	}

	if m.view.Progress.Visible {
		b.WriteString(fmt.Sprintf("%s %s", m.bar.ViewAs(m.view.Progress.Percent), m.view.Progress.Label))
		b.WriteString("\n\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

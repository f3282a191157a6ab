package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/pldl/internal/trigger"
)

var styles = NewPalette("#7D56F4", "#04B575", "#FF0000", "#FFA500", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title    lipgloss.Style
	ok       lipgloss.Style
	err      lipgloss.Style
	warn     lipgloss.Style
	help     lipgloss.Style
	button   lipgloss.Style
	disabled lipgloss.Style
}

func NewPalette(t, s, e, w, h string) *Palette {
	return &Palette{
		title:    NewBold(t).MarginBottom(1),
		ok:       NewBold(s),
		err:      NewBold(e),
		warn:     NewStyle(w),
		help:     NewEm(h),
		button:   NewBold("#FFFFFF").Background(lipgloss.Color(t)).Padding(0, 2),
		disabled: NewStyle("#FFFFFF").Background(lipgloss.Color(h)).Padding(0, 2),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}

// Tone returns the style for a status tone.
func (p *Palette) Tone(t trigger.Tone) lipgloss.Style {
	switch t {
	case trigger.Info:
		return p.help
	case trigger.Warning:
		return p.warn
	case trigger.Success:
		return p.ok
	case trigger.Error:
		return p.err
	default:
		return lipgloss.NewStyle()
	}
}

// Button returns the style for the trigger control.
func (p *Palette) Button(b trigger.Button) lipgloss.Style {
	if b.Enabled {
		return p.button
	}
	return p.disabled
}

package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/pldl/internal/services"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind  MsgKind
	cycle int
	data  any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgDownloadComplete MsgKind = iota
	MsgHideProgress
)

type downloadResult struct {
	resp *services.DownloadResponse
	err  error
}

// downloadCompleteMsg is the constructor for [MsgDownloadComplete]
func downloadCompleteMsg(cycle int, resp *services.DownloadResponse, err error) Msg {
	return Msg{
		kind:  MsgDownloadComplete,
		cycle: cycle,
		data:  downloadResult{resp, err},
	}
}

// hideProgressMsg is the constructor for [MsgHideProgress]
func hideProgressMsg(cycle int) Msg {
	return Msg{kind: MsgHideProgress, cycle: cycle}
}

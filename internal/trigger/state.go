package trigger

import (
	"errors"
	"fmt"

	"github.com/desertthunder/pldl/internal/services"
	"github.com/desertthunder/pldl/internal/shared"
)

// Phase is the lifecycle state of a download cycle.
type Phase int

const (
	Idle Phase = iota
	Sending
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Sending:
		return "sending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return ""
	}
}

// Tone selects how status text is styled.
type Tone int

const (
	Plain Tone = iota
	Info
	Warning
	Success
	Error
)

const (
	LabelIdle    = "Start Download"
	LabelBusy    = "Downloading..."
	MsgEmptyURL  = "Please enter a playlist URL!"
	MsgSending   = "Sending download request to backend..."
	MsgFallback  = "Could not connect to backend or process request."
	ProgressZero = "0%"
	ProgressDone = "Done!"
	ProgressFail = "Error"
)

// Button is the trigger control.
type Button struct {
	Enabled bool
	Label   string
}

// Status is the text shown in the status area.
type Status struct {
	Text string
	Tone Tone
}

// Progress is the coarse progress indicator.
type Progress struct {
	Visible bool
	Percent float64 // 0 to 1
	Label   string
}

// View is everything a surface needs to render.
type View struct {
	Phase    Phase
	Button   Button
	Status   Status
	Progress Progress
}

// NewView returns the initial idle view.
func NewView() View {
	return View{
		Phase:  Idle,
		Button: Button{Enabled: true, Label: LabelIdle},
	}
}

// Busy reports whether the trigger is disabled.
func (v View) Busy() bool {
	return !v.Button.Enabled
}

// Warn renders the empty-input warning and hides the progress indicator.
func (v View) Warn() View {
	v.Phase = Idle
	v.Status = Status{Text: MsgEmptyURL, Tone: Warning}
	v.Progress.Visible = false
	return v
}

// Begin enters [Sending].
func (v View) Begin() View {
	v.Phase = Sending
	v.Progress = Progress{Visible: true, Percent: 0, Label: ProgressZero}
	v.Status = Status{Text: MsgSending, Tone: Info}
	v.Button = Button{Enabled: false, Label: LabelBusy}
	return v
}

// Succeed renders the backend's message verbatim and fills the progress indicator.
func (v View) Succeed(message string) View {
	v.Phase = Succeeded
	v.Progress.Percent = 1
	v.Progress.Label = ProgressDone
	v.Status = Status{Text: message, Tone: Success}
	return v
}

// Fail renders err as an error status and resets the progress indicator.
func (v View) Fail(err error) View {
	v.Phase = Failed
	v.Progress.Percent = 0
	v.Progress.Label = ProgressFail
	v.Status = Status{Text: "Error: " + FailureMessage(err), Tone: Error}
	return v
}

// Release re-enables the trigger and restores its label.
func (v View) Release() View {
	v.Button = Button{Enabled: true, Label: LabelIdle}
	return v
}

// HideProgress hides the progress indicator.
func (v View) HideProgress() View {
	v.Progress.Visible = false
	return v
}

// Complete applies the outcome of a backend call.
func (v View) Complete(resp *services.DownloadResponse, err error) View {
	if err == nil && resp == nil {
		err = fmt.Errorf("%w: empty response", shared.ErrInvalidResponse)
	}
	if err != nil {
		return v.Fail(err)
	}
	return v.Succeed(resp.Message)
}

// FailureMessage picks the text shown for a failed cycle.
//
// A status error shows the backend's message (or the synthesized status message);
// anything else, including an unreachable backend, shows [MsgFallback].
func FailureMessage(err error) string {
	var statusErr *services.StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}
	return MsgFallback
}

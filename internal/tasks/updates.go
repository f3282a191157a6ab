package tasks

import (
	"fmt"

	"github.com/desertthunder/pldl/internal/trigger"
)

// ProgressUpdate represents a progress event during a batch.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	StartCycle Phase = iota
	FinishCycle
	SkipCycle
)

func (p Phase) String() string {
	switch p {
	case StartCycle:
		return "start_cycle"
	case FinishCycle:
		return "finish_cycle"
	case SkipCycle:
		return "skip_cycle"
	default:
		return ""
	}
}

func startCycleUpdate(step, total int, url string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   StartCycle,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Sending %s...", step, total, url),
	}
}

func finishCycleUpdate(step, total int, res CycleResult) ProgressUpdate {
	mark := "✓"
	if res.View.Phase != trigger.Succeeded {
		mark = "✗"
	}
	return ProgressUpdate{
		Phase:   FinishCycle,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s %s: %s", step, total, mark, res.URL, res.View.Status.Text),
		Data:    res,
	}
}

func skipCycleUpdate(step, total int, url string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SkipCycle,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] skipped %s: %v", step, total, url, err),
	}
}

// Package trigger implements the download trigger controller: one request/response cycle and its reflection in the UI.
//
// # State
//
// A cycle moves through [Idle] → [Sending] → ([Succeeded] | [Failed]) and back to an enabled trigger.
// The whole visible surface is a [View] value; transitions are pure methods on it
// ([View.Warn], [View.Begin], [View.Succeed], [View.Fail], [View.Release], [View.HideProgress]),
// so every surface (the TUI and plain text output) renders the same states.
//
// # Controller
//
// [Controller.InitiateDownload] validates the input, acquires the busy state, calls the [services.Downloader]
// and always releases the trigger on the way out. Every failure is converted into a rendered [Failed] view; none escapes.
// After an outcome the progress indicator is hidden by a deferred callback registered with a [Scheduler].
package trigger

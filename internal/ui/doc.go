// Package ui implements an interactive terminal interface using bubbletea's Elm architecture, plus a plain-text renderer.
//
// The TUI is a single screen mirroring the download page:
//   - a text input for the playlist URL
//   - a trigger button that reads "Start Download" or "Downloading..."
//   - a status area
//   - a progress bar with a label
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the Msg union type.
// All visible state lives in a [trigger.View]; enter applies [trigger.View.Begin] and starts the backend call as a [tea.Cmd],
// whose completion message applies the outcome and re-enables the trigger. The progress bar is hidden by a [tea.Tick]
// tagged with the cycle number, so a tick from an earlier cycle is dropped.
//
// [PlainRenderer] implements [trigger.Renderer] for the non-interactive download command.
package ui

// Package ui contains the Bubble Tea program that powers the script popup.
// The package is structured so the Model type focuses on message orchestration,
// while dedicated helpers own each mode's key handling, rendering, and state
// updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each tea.Msg is
//     routed through a typed handler registry to a focused function.
//   - Key presses are dispatched on the active Mode (normal.go, search.go,
//     popups.go, run.go). Every mode transition goes through setMode so the
//     trace log records it.
//   - Script previews and descriptions load asynchronously via tea.Cmd values.
//     Each load carries a sequence number; replies for a superseded selection
//     are dropped.
//
// State ownership:
//   - The category and script panels, the fuzzy search, scroll regions, the
//     multi-selection and the execution queue live in internal/ui/state and
//     hold no Bubble Tea types.
//   - Launches go through the internal/ui/command bus, which wraps the
//     configured launch.Runner and reports back with a launch.FinishedMsg.
//     At most one launch is in flight; the queue drains according to the
//     DrainPolicy.
package ui

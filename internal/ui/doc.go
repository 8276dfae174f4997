// Package ui contains the Bubble Tea program that fronts the variable picker.
// The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own navigation, rendering, and
// catalog updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - While the insert-by-address prompt is active, messages are forwarded to
//     it first. Otherwise the message is routed through a typed handler
//     registry so each tea.Msg is handled by a focused function (navigation
//     for key presses, mouse dispatch, catalog replacement).
//   - Navigation helpers (internal/ui/navigation.go) manage the focus zones
//     (buffer and trigger), menu keyboard handling, and commit flow.
//
// State ownership:
//   - The selection state machine lives in internal/picker; the model only
//     translates input events into picker calls and re-renders from the
//     picker's rows and focus index.
//   - Buffer text and caret state live in internal/buffer.Editor, which also
//     serves as the picker's insertion surface.
//
// Catalog updates:
//   - A catalog.Watcher polls the catalog file; Update waits for its events
//     and hands replacements to applyCatalog, which swaps the picker's item
//     list and forces an open menu closed.
//
// This separation keeps Model.Update compact and makes it easier to test
// independent concerns (navigation, insertion, catalog reload) without
// needing to reason about the entire TUI at once.
package ui

// Package ui contains the Bubble Tea program that fronts the workspace
// launcher.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses are decoded into launcher actions (keys.go). The launcher
//     owns the query, matching and the layout switch protocol; the model only
//     reacts to the returned outcome by redrawing or quitting.
//   - A backend.Watcher streams session snapshots which the dispatcher hands
//     to the launcher so replace mode knows the current session.
//
// Rendering is presentation only. The last frame is cached and rebuilt only
// when an outcome or a resize asks for it.
package ui

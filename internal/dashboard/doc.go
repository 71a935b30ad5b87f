// Package dashboard implements vigil's foreground TUI: the live status
// view and the idle matrix-rain screensaver.
//
// The package uses the Bubble Tea framework, which follows The Elm
// Architecture (Model-Update-View pattern):
//
//   - Model: Holds application state (latest snapshot, display mode, idle timer)
//   - Update: Processes messages (keystrokes, mouse, animation ticks)
//   - View: Renders the current state to a string for display
//
// # Message Flow
//
// Everything is paced by a single animation tick (~80ms at the default
// 12 FPS). On every tick the model:
//
//  1. Polls the snapshot mailbox (non-blocking) and applies any new data
//  2. Exits the screensaver if the applied snapshot reports a change
//  3. Enters the screensaver when input has been idle past the timeout
//  4. Advances the rain animation if the screensaver is active
//
// The snapshot data model is applied even while the screensaver covers
// the dashboard; only the rendering is replaced. That keeps the
// change-detection wake condition working against fresh data, and the
// dashboard re-renders from current state the moment the screensaver
// exits.
//
// # Screensaver
//
// RainEngine owns the animation: one falling column per screen column,
// with a persistent glyph/color grid so trails fade cell by cell instead
// of being redrawn. The palette follows the current overall severity, so
// a glance at the idle screen tells you whether everything is green.
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C   - Quit
//	r           - Re-check the mailbox and redraw immediately
//	s           - Toggle the screensaver without waiting for idle
//	any key     - Wake from the screensaver
package dashboard

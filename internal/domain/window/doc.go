// Package window provides the desktop's window manager.
//
// The Manager owns every live window: it creates, focuses, minimizes, moves,
// resizes and closes them, and keeps the stacking order. Each focus (direct,
// on open, or on restore from minimized) draws the next value of a single
// counter, so the most recently focused window always has the strictly
// highest z-index.
//
// Window lifecycle:
//
//	Open -> Minimized <-> Open -> Closed (removed)
//
// Opening a file that a live window already shows focuses that window
// instead of creating another one.
//
// Every operation returns an error wrapping types.ErrNotFound or
// types.ErrInvalidTarget when it could not apply; the failure is also logged.
// Successful mutations are published to subscribers as Events.
//
// Example Usage:
//
//	manager := window.NewManager(registry.Default(), vfs.Default(), window.DefaultOptions())
//	cancel := manager.Subscribe(func(ev window.Event) { ... })
//	defer cancel()
//	res, err := manager.OpenFile("ctx@os/about-me.md")
//	manager.FocusWindow(res.Window.ID)
package window

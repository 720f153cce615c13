// Package server wires the desktop together: it builds the file tree, app
// catalog, window manager, shell flags, palette and viewer once, then mounts
// the REST handlers, the /stream WebSocket and /metrics on a gin engine.
package server

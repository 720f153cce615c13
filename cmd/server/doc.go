// Package main is the entry point for the ctxos desktop backend.
//
// The server owns the desktop's state: the virtual file tree, the app
// catalog, live windows and their stacking order, and the boot and palette
// flags. The browser shell renders from it over REST and the /stream
// WebSocket.
//
// Configuration comes from environment variables (see package config);
// flags override them.
//
// Usage:
//
//	# Defaults: 0.0.0.0:8000, embedded file tree, JSON logs
//	./server
//
//	# Development mode (coloured logs, debug level) on another port
//	./server --dev --port 9000
//
//	# Serve a custom tree
//	./server --tree ./desktop.toml
package main

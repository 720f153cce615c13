// Package types provides shared data structures for the desktop backend.
//
// Core Types:
//   - AppDescriptor: Launchable application catalog entry
//   - Window: Live window instance with geometry and stacking order
//   - Props: Typed launch parameters, one variant per application
//
// Request Types:
//   - OpenWindowRequest, OpenFileRequest: Window lifecycle over HTTP
//   - LaunchRequest: Command palette execution
//   - WSMessage: Stream commands
//
// Errors:
//   - ErrNotFound, ErrInvalidTarget: wrapped by every domain package
//
// Example Usage:
//
//	props, err := types.DecodeProps(types.AppViewer, raw)
//	if errors.Is(err, types.ErrInvalidTarget) {
//	    ...
//	}
package types

package types

import "errors"

// Error taxonomy shared by every domain package. Callers match with errors.Is.
var (
	// ErrNotFound covers unknown app ids, unknown window ids and unresolved paths.
	ErrNotFound = errors.New("not found")
	// ErrInvalidTarget covers targets that exist but cannot serve the request,
	// such as a folder where a file was required.
	ErrInvalidTarget = errors.New("invalid target")
)

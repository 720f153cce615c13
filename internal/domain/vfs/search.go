package vfs

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ctxos/desktop/backend/internal/shared/types"
)

// Glob returns the unrooted paths of files matching a doublestar pattern
// ("**/*.md", "Projects/*/README.md"). A leading root name in the pattern is
// ignored like in Resolve.
func (t *Tree) Glob(pattern string) ([]string, error) {
	pattern = t.Canonical(pattern)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, types.ErrInvalidTarget)
	}

	matches := []string{}
	for _, path := range t.Files() {
		ok, err := doublestar.Match(pattern, path)
		if err != nil {
			return nil, fmt.Errorf("glob failed: %w", err)
		}
		if ok {
			matches = append(matches, path)
		}
	}
	return matches, nil
}

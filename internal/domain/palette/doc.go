// Package palette implements the desktop command palette: fuzzy search over
// installed apps and virtual files, and launching the selected entry through
// the window manager.
package palette

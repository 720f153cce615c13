package types

import "time"

// Position is the top-left corner of a window on the desktop
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is the outer dimension of a window
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Window is a live window instance
type Window struct {
	ID          string    `json:"id"`
	AppID       string    `json:"app_id"`
	Title       string    `json:"title"`
	Component   string    `json:"component"`
	Props       Props     `json:"app_props"`
	Position    Position  `json:"position"`
	Size        Size      `json:"size"`
	ZIndex      int       `json:"z_index"`
	IsMinimized bool      `json:"is_minimized"`
	CreatedAt   time.Time `json:"created_at"`
}

// FilePath returns the file the window was opened for, or "" if none
func (w *Window) FilePath() string {
	return FilePathOf(w.Props)
}

// WindowStats contains window manager statistics
type WindowStats struct {
	TotalWindows     int     `json:"total_windows"`
	MinimizedWindows int     `json:"minimized_windows"`
	TopmostID        *string `json:"topmost_id,omitempty"`
	ZCounter         int     `json:"z_counter"`
}

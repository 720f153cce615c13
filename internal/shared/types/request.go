package types

import "encoding/json"

// OpenWindowRequest opens an application window
type OpenWindowRequest struct {
	AppID string          `json:"app_id" binding:"required"`
	Props json.RawMessage `json:"props,omitempty"`
}

// OpenFileRequest opens a file from the virtual file system
type OpenFileRequest struct {
	Path string `json:"path" binding:"required"`
}

// LaunchRequest runs a command palette entry
type LaunchRequest struct {
	Kind   string `json:"kind" binding:"required"`
	Target string `json:"target" binding:"required"`
}

// WSMessage is a command sent by the shell over the stream
type WSMessage struct {
	Type     string `json:"type"`
	WindowID string `json:"window_id,omitempty"`
	X        int    `json:"x,omitempty"`
	Y        int    `json:"y,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

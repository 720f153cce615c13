package types

import (
	"encoding/json"
	"fmt"
)

// Props is the typed property bag attached to a window. Each variant belongs
// to one application; NoProps fits any application.
type Props interface {
	// AppID names the application the props are defined for ("" for any).
	AppID() string
}

// FileBacked is implemented by props that carry a file path. Windows whose
// props share a file path are deduplicated.
type FileBacked interface {
	Props
	FilePath() string
}

// ViewerProps opens a file in the viewer
type ViewerProps struct {
	Path        string `json:"file_path"`
	Content     string `json:"content"`
	ContentType string `json:"content_type,omitempty"`
}

func (ViewerProps) AppID() string      { return AppViewer }
func (p ViewerProps) FilePath() string { return p.Path }

// ExplorerProps points the explorer at a folder
type ExplorerProps struct {
	Path string `json:"path,omitempty"`
}

func (ExplorerProps) AppID() string { return AppExplorer }

// TerminalProps sets the terminal's initial working directory
type TerminalProps struct {
	Cwd string `json:"cwd,omitempty"`
}

func (TerminalProps) AppID() string { return AppTerminal }

// NoProps is used by applications without launch parameters
type NoProps struct{}

func (NoProps) AppID() string { return "" }

// FilePathOf extracts the file path from props, or "" when they carry none
func FilePathOf(p Props) string {
	if fb, ok := p.(FileBacked); ok {
		return fb.FilePath()
	}
	return ""
}

// DecodeProps decodes raw JSON into the props variant of appID.
// Empty input yields NoProps.
func DecodeProps(appID string, raw json.RawMessage) (Props, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return NoProps{}, nil
	}

	var (
		props Props
		err   error
	)
	switch appID {
	case AppViewer:
		var p ViewerProps
		err = json.Unmarshal(raw, &p)
		props = p
	case AppExplorer:
		var p ExplorerProps
		err = json.Unmarshal(raw, &p)
		props = p
	case AppTerminal:
		var p TerminalProps
		err = json.Unmarshal(raw, &p)
		props = p
	default:
		return NoProps{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("decode props for %s: %w", appID, ErrInvalidTarget)
	}
	return props, nil
}

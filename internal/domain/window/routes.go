package window

import (
	"strings"

	"github.com/ctxos/desktop/backend/internal/shared/types"
)

// fileRoutes maps lower-case extensions to the app that opens them
var fileRoutes = map[string]string{
	"md":       types.AppViewer,
	"markdown": types.AppViewer,
	"txt":      types.AppViewer,
	"py":       types.AppViewer,
	"go":       types.AppViewer,
	"json":     types.AppViewer,
}

// AppForFile picks the app that opens name. Unknown extensions open in the
// viewer.
func AppForFile(name string) string {
	ext := ""
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		ext = strings.ToLower(name[i+1:])
	}
	if app, ok := fileRoutes[ext]; ok {
		return app
	}
	return types.AppViewer
}

package registry

import "github.com/ctxos/desktop/backend/internal/shared/types"

// DefaultApps lists the desktop's built-in applications in launcher order
func DefaultApps() []types.AppDescriptor {
	return []types.AppDescriptor{
		{ID: types.AppTerminal, Title: "Terminal", Icon: "TerminalSquare", Component: "ProfileTerminal"},
		{ID: types.AppExplorer, Title: "Explorer", Icon: "Folder", Component: "ProjectExplorer"},
		{ID: types.AppWeb3, Title: "Web3 Dashboard", Icon: "Wallet", Component: "Web3Dashboard"},
		{ID: types.AppSettings, Title: "Settings", Icon: "Settings", Component: "Settings"},
		{ID: types.AppViewer, Title: "Viewer", Icon: "FileText", Component: "ReadmeViewer"},
	}
}

// Default returns a catalog holding DefaultApps
func Default() *Catalog {
	c, err := NewCatalog(DefaultApps()...)
	if err != nil {
		panic("registry: default apps are invalid: " + err.Error())
	}
	return c
}

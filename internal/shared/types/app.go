package types

// Built-in application ids
const (
	AppTerminal = "terminal"
	AppExplorer = "explorer"
	AppWeb3     = "web3"
	AppSettings = "settings"
	AppViewer   = "viewer"
)

// AppDescriptor is a static catalog entry for a launchable application
type AppDescriptor struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Icon      string `json:"icon"`      // Symbolic icon name understood by the shell
	Component string `json:"component"` // Front-end component that renders the app
}

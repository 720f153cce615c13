package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctxos/desktop/backend/internal/domain/registry"
	"github.com/ctxos/desktop/backend/internal/domain/vfs"
	"github.com/ctxos/desktop/backend/internal/domain/window"
	"github.com/ctxos/desktop/backend/internal/infrastructure/monitoring"
	"github.com/ctxos/desktop/backend/internal/shared/id"
	"github.com/ctxos/desktop/backend/internal/shared/types"
)

type inbound struct {
	Type     string            `json:"type"`
	Seq      uint64            `json:"seq"`
	Windows  []json.RawMessage `json:"windows"`
	Command  string            `json:"command"`
	WindowID string            `json:"window_id"`
	Message  string            `json:"message"`
	Event    struct {
		Seq    uint64 `json:"seq"`
		Type   string `json:"type"`
		Window struct {
			ID       string         `json:"id"`
			ZIndex   int            `json:"z_index"`
			Position types.Position `json:"position"`
		} `json:"window"`
	} `json:"event"`
}

func setupStream(t *testing.T) (*window.Manager, *monitoring.Metrics, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	metrics := monitoring.NewMetrics()
	wm := window.NewManager(registry.Default(), vfs.Default(), window.DefaultOptions())

	router := gin.New()
	router.GET("/stream", NewHandler(wm, metrics, nil).HandleConnection)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return wm, metrics, "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) inbound {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg inbound
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestSnapshotOnConnect(t *testing.T) {
	wm, _, url := setupStream(t)
	_, err := wm.OpenWindow(types.AppTerminal, nil)
	require.NoError(t, err)
	_, err = wm.OpenFile("about-me.md")
	require.NoError(t, err)

	conn := dial(t, url)
	msg := read(t, conn)

	assert.Equal(t, "snapshot", msg.Type)
	assert.Len(t, msg.Windows, 2)
	assert.Equal(t, uint64(2), msg.Seq)
}

func TestEventsFollowSnapshot(t *testing.T) {
	wm, _, url := setupStream(t)
	conn := dial(t, url)
	require.Equal(t, "snapshot", read(t, conn).Type)

	res, err := wm.OpenWindow(types.AppExplorer, nil)
	require.NoError(t, err)

	msg := read(t, conn)
	assert.Equal(t, "window_event", msg.Type)
	assert.Equal(t, "opened", msg.Event.Type)
	assert.Equal(t, res.Window.ID, msg.Event.Window.ID)
	assert.Equal(t, uint64(1), msg.Event.Seq)
}

func TestCommands(t *testing.T) {
	wm, _, url := setupStream(t)
	a, _ := wm.OpenWindow(types.AppTerminal, nil)
	b, _ := wm.OpenWindow(types.AppSettings, nil)

	conn := dial(t, url)
	require.Equal(t, "snapshot", read(t, conn).Type)

	require.NoError(t, conn.WriteJSON(types.WSMessage{Type: "focus", WindowID: a.Window.ID}))
	msg := read(t, conn)
	assert.Equal(t, "focused", msg.Event.Type)
	assert.Greater(t, msg.Event.Window.ZIndex, b.Window.ZIndex)

	require.NoError(t, conn.WriteJSON(types.WSMessage{Type: "move", WindowID: a.Window.ID, X: 300, Y: 40}))
	msg = read(t, conn)
	assert.Equal(t, "moved", msg.Event.Type)
	assert.Equal(t, types.Position{X: 300, Y: 40}, msg.Event.Window.Position)

	require.NoError(t, conn.WriteJSON(types.WSMessage{Type: "resize", WindowID: a.Window.ID, Width: 10, Height: 10}))
	assert.Equal(t, "resized", read(t, conn).Event.Type)

	require.NoError(t, conn.WriteJSON(types.WSMessage{Type: "minimize", WindowID: a.Window.ID}))
	assert.Equal(t, "minimized", read(t, conn).Event.Type)

	require.NoError(t, conn.WriteJSON(types.WSMessage{Type: "close", WindowID: b.Window.ID}))
	assert.Equal(t, "closed", read(t, conn).Event.Type)

	assert.Len(t, wm.List(), 1)
}

func TestCommandErrors(t *testing.T) {
	_, _, url := setupStream(t)
	conn := dial(t, url)
	require.Equal(t, "snapshot", read(t, conn).Type)

	require.NoError(t, conn.WriteJSON(types.WSMessage{Type: "ping"}))
	assert.Equal(t, "pong", read(t, conn).Type)

	absent := id.NewWindowID().String()
	require.NoError(t, conn.WriteJSON(types.WSMessage{Type: "focus", WindowID: absent}))
	msg := read(t, conn)
	assert.Equal(t, "error", msg.Type)
	assert.Equal(t, "focus", msg.Command)
	assert.Equal(t, absent, msg.WindowID)
	assert.Contains(t, msg.Message, "not found")

	require.NoError(t, conn.WriteJSON(types.WSMessage{Type: "focus", WindowID: "win_missing"}))
	msg = read(t, conn)
	assert.Equal(t, "error", msg.Type)
	assert.Contains(t, msg.Message, "is not a window id")

	require.NoError(t, conn.WriteJSON(types.WSMessage{Type: "dance", WindowID: "win_missing"}))
	msg = read(t, conn)
	assert.Equal(t, "error", msg.Type)
	assert.Contains(t, msg.Message, "unknown message type")

	require.NoError(t, conn.WriteJSON(types.WSMessage{Type: "close"}))
	assert.Equal(t, "error", read(t, conn).Type)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{nope")))
	msg = read(t, conn)
	assert.Equal(t, "error", msg.Type)
	assert.Equal(t, "invalid message", msg.Message)

	// Connection survives bad input
	require.NoError(t, conn.WriteJSON(types.WSMessage{Type: "ping"}))
	assert.Equal(t, "pong", read(t, conn).Type)
}

func TestBroadcastToEveryClient(t *testing.T) {
	wm, _, url := setupStream(t)
	first := dial(t, url)
	second := dial(t, url)
	require.Equal(t, "snapshot", read(t, first).Type)
	require.Equal(t, "snapshot", read(t, second).Type)

	require.NoError(t, first.WriteJSON(types.WSMessage{Type: "ping"}))
	require.Equal(t, "pong", read(t, first).Type)

	_, err := wm.OpenWindow(types.AppWeb3, nil)
	require.NoError(t, err)

	assert.Equal(t, "opened", read(t, first).Event.Type)
	assert.Equal(t, "opened", read(t, second).Event.Type)
}

func TestConnectionMetrics(t *testing.T) {
	_, metrics, url := setupStream(t)

	conn := dial(t, url)
	require.Equal(t, "snapshot", read(t, conn).Type)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.WSConnections))

	require.NoError(t, conn.WriteJSON(types.WSMessage{Type: "ping"}))
	require.Equal(t, "pong", read(t, conn).Type)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.WSMessages.WithLabelValues("in", "ping")))

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.WSConnections) == 0
	}, 5*time.Second, 20*time.Millisecond)
}

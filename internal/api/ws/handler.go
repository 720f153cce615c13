package ws

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ctxos/desktop/backend/internal/domain/window"
	"github.com/ctxos/desktop/backend/internal/infrastructure/monitoring"
	"github.com/ctxos/desktop/backend/internal/shared/types"
	"github.com/ctxos/desktop/backend/internal/shared/utils"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 64
)

var errUnknownCommand = fmt.Errorf("unknown message type: %w", types.ErrInvalidTarget)

var knownCommands = map[string]bool{
	"focus": true, "minimize": true, "move": true, "resize": true, "close": true,
}

// Handler streams window state to shell clients and applies their commands
type Handler struct {
	windows  *window.Manager
	metrics  *monitoring.Metrics
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// NewHandler creates a new WebSocket handler. metrics may be nil.
func NewHandler(windows *window.Manager, metrics *monitoring.Metrics, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		windows: windows,
		metrics: metrics,
		logger:  logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Origins are enforced by the CORS middleware
			},
		},
	}
}

// HandleConnection upgrades the request and serves the stream until the
// client goes away
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}

	cl := &client{
		id:      uuid.NewString(),
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		handler: h,
	}
	logger := h.logger.With(zap.String("conn_id", cl.id))
	logger.Debug("Stream connected", zap.String("remote", c.ClientIP()))

	if h.metrics != nil {
		h.metrics.IncWSConnections()
		defer h.metrics.DecWSConnections()
	}

	go cl.writePump()

	// Hold the gate while subscribing and snapshotting so the snapshot is
	// always the first message and no event is delivered twice
	cl.mu.Lock()
	cancel := h.windows.Subscribe(cl.onEvent)
	windows, seq := h.windows.Snapshot()
	cl.after = seq
	cl.enqueueLocked(snapshotMessage{Type: "snapshot", Windows: windows, Seq: seq})
	cl.mu.Unlock()

	defer func() {
		cancel()
		cl.close()
		logger.Debug("Stream disconnected")
	}()

	cl.readPump(logger)
}

// client is one stream connection
type client struct {
	id      string
	conn    *websocket.Conn
	handler *Handler

	mu     sync.Mutex
	send   chan []byte // Protected by mu for sends and close
	closed bool        // Protected by mu
	after  uint64      // Protected by mu; events at or below were in the snapshot
}

type snapshotMessage struct {
	Type    string         `json:"type"`
	Windows []types.Window `json:"windows"`
	Seq     uint64         `json:"seq"`
}

type eventMessage struct {
	Type  string       `json:"type"`
	Event window.Event `json:"event"`
}

type replyMessage struct {
	Type     string `json:"type"`
	Command  string `json:"command,omitempty"`
	WindowID string `json:"window_id,omitempty"`
	Message  string `json:"message,omitempty"`
}

func (cl *client) onEvent(ev window.Event) {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if ev.Seq <= cl.after {
		return
	}
	cl.enqueueLocked(eventMessage{Type: "window_event", Event: ev})
}

func (cl *client) enqueue(msg any) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.enqueueLocked(msg)
}

// enqueueLocked queues msg for the writer (must hold mu). A client that
// cannot keep up is disconnected.
func (cl *client) enqueueLocked(msg any) {
	if cl.closed {
		return
	}

	data, err := sonic.ConfigStd.Marshal(msg)
	if err != nil {
		cl.handler.logger.Error("Failed to encode stream message", zap.String("conn_id", cl.id), zap.Error(err))
		return
	}

	select {
	case cl.send <- data:
		cl.handler.recordMessage("out", messageType(msg))
	default:
		cl.handler.logger.Warn("Stream client too slow, disconnecting", zap.String("conn_id", cl.id))
		cl.closed = true
		close(cl.send)
	}
}

func (cl *client) close() {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	if !cl.closed {
		cl.closed = true
		close(cl.send)
	}
}

func (cl *client) readPump(logger *zap.Logger) {
	cl.conn.SetReadLimit(utils.MaxMessageSize)
	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := cl.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("Stream read error", zap.Error(err))
			}
			return
		}

		var msg types.WSMessage
		if err := sonic.ConfigStd.Unmarshal(data, &msg); err != nil {
			cl.handler.recordMessage("in", "invalid")
			cl.enqueue(replyMessage{Type: "error", Message: "invalid message"})
			continue
		}
		cl.handler.recordMessage("in", msg.Type)

		if reply := cl.handler.apply(msg); reply != nil {
			cl.enqueue(*reply)
		}
	}
}

func (cl *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = cl.conn.Close()
	}()

	for {
		select {
		case data, ok := <-cl.send:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := cl.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// apply runs one client command. Successful mutations are answered by the
// resulting window_event, so only pings and failures produce a reply.
func (h *Handler) apply(msg types.WSMessage) *replyMessage {
	if msg.Type == "ping" {
		return &replyMessage{Type: "pong"}
	}

	var err error
	if !knownCommands[msg.Type] {
		err = fmt.Errorf("%q: %w", msg.Type, errUnknownCommand)
	} else if err = utils.ValidateWindowID(msg.WindowID); err == nil {
		switch msg.Type {
		case "focus":
			err = h.windows.FocusWindow(msg.WindowID)
		case "minimize":
			_, err = h.windows.ToggleMinimize(msg.WindowID)
		case "move":
			err = h.windows.UpdateWindowPosition(msg.WindowID, types.Position{X: msg.X, Y: msg.Y})
		case "resize":
			err = h.windows.UpdateWindowSize(msg.WindowID, types.Size{Width: msg.Width, Height: msg.Height})
		case "close":
			err = h.windows.CloseWindow(msg.WindowID)
		}
	}
	if err == nil {
		return nil
	}

	return &replyMessage{
		Type:     "error",
		Command:  msg.Type,
		WindowID: msg.WindowID,
		Message:  err.Error(),
	}
}

func (h *Handler) recordMessage(direction, msgType string) {
	if h.metrics != nil {
		h.metrics.RecordWSMessage(direction, msgType)
	}
}

func messageType(msg any) string {
	switch m := msg.(type) {
	case snapshotMessage:
		return m.Type
	case eventMessage:
		return m.Type
	case replyMessage:
		return m.Type
	default:
		return "unknown"
	}
}

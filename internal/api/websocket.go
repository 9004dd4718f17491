// websocket.go - Job progress push over WebSocket
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/diagram-converter/backend/internal/job"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Same-origin policy is enforced by the CORS middleware; local tools
	// connect from arbitrary origins.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WebSocketHandler pushes conversion job progress events to clients.
type WebSocketHandler struct {
	jobMgr *job.Manager
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(jobMgr *job.Manager) *WebSocketHandler {
	return &WebSocketHandler{jobMgr: jobMgr}
}

// HandleJobEvents upgrades the connection and streams progress events until
// the client disconnects.
func (h *WebSocketHandler) HandleJobEvents(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return NewBadRequestError("websocket upgrade failed", err)
	}
	defer conn.Close()

	events := h.jobMgr.Subscribe()
	defer h.jobMgr.Unsubscribe(events)

	// Reader goroutine: drain client messages and detect disconnect.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return nil
			}
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(event); err != nil {
				fmt.Printf("[WS] Write failed: %v\n", err)
				return nil
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		case <-done:
			return nil
		}
	}
}

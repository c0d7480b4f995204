package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"complaintbox/internal/application/dashboard"
	"complaintbox/internal/shared/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// EngineFactory builds a fresh sync engine for one dashboard session.
type EngineFactory func() *dashboard.Engine

// DashboardHandler bridges one admin websocket connection to its
// per-session sync engine: client actions flow in as JSON commands,
// view frames and alerts flow out as engine events.
type DashboardHandler struct {
	newEngine EngineFactory
	upgrader  websocket.Upgrader
	logger    logger.Interface
}

func NewDashboardHandler(newEngine EngineFactory, log logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		newEngine: newEngine,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host
			},
		},
		logger: log,
	}
}

type clientCommand struct {
	Action     string `json:"action"`
	Filter     string `json:"filter"`
	UnreadOnly bool   `json:"unread_only"`
	Page       int    `json:"page"`
	ID         uint   `json:"id"`
}

// Shell serves the dashboard page shell. The page content itself lives
// in the frontend; reaching this handler at all means the session gate
// passed.
func (h *DashboardHandler) Shell(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, dashboardShell)
}

const dashboardShell = `<!DOCTYPE html>
<html>
<head><title>Complaint Box - Admin Dashboard</title></head>
<body>
<div id="app" data-ws-path="/admin/dashboard/ws"></div>
</body>
</html>
`

// Stream upgrades the request to a websocket and runs the session until
// either side disconnects.
func (h *DashboardHandler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warnw("websocket upgrade failed",
			"client_ip", c.ClientIP(),
			"error", err,
		)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engine := h.newEngine()
	if err := engine.Start(ctx); err != nil {
		h.logger.Errorw("failed to start dashboard engine", "error", err)
		conn.Close()
		return
	}
	defer engine.Close()

	h.logger.Infow("dashboard session opened", "client_ip", c.ClientIP())

	go h.writePump(conn, engine, cancel)
	h.readPump(ctx, conn, engine)

	h.logger.Infow("dashboard session closed", "client_ip", c.ClientIP())
}

func (h *DashboardHandler) readPump(ctx context.Context, conn *websocket.Conn, engine *dashboard.Engine) {
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warnw("websocket read error", "error", err)
			}
			return
		}

		var cmd clientCommand
		if err := json.Unmarshal(message, &cmd); err != nil {
			h.logger.Warnw("invalid dashboard command", "error", err)
			continue
		}

		h.dispatch(ctx, engine, cmd)
	}
}

func (h *DashboardHandler) dispatch(ctx context.Context, engine *dashboard.Engine, cmd clientCommand) {
	switch cmd.Action {
	case "set_filter":
		engine.SetFilter(cmd.Filter)
	case "set_unread_only":
		engine.SetUnreadOnly(cmd.UnreadOnly)
	case "set_page":
		engine.SetPage(cmd.Page)
	case "mark_read":
		engine.MarkRead(ctx, cmd.ID)
	case "delete":
		engine.Delete(ctx, cmd.ID)
	case "refresh":
		engine.Refresh(ctx)
	default:
		h.logger.Warnw("unknown dashboard action", "action", cmd.Action)
	}
}

func (h *DashboardHandler) writePump(conn *websocket.Conn, engine *dashboard.Engine, cancel context.CancelFunc) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		cancel()
		conn.Close()
	}()

	for {
		select {
		case event, ok := <-engine.Events():
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

package api

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/FyliaCare/Cv-Builder-App/internal/render"
	"github.com/FyliaCare/Cv-Builder-App/internal/resume"
)

// WsHandler pushes a freshly rendered preview to connected clients whenever
// the résumé record changes.
type WsHandler struct {
	session        *resume.Session
	logger         *slog.Logger
	upgrader       websocket.Upgrader
	allowedOrigins []string
}

// NewWsHandler constructs the WebSocket handler.
func NewWsHandler(session *resume.Session, logger *slog.Logger, allowedOrigins []string) *WsHandler {
	h := &WsHandler{
		session:        session,
		logger:         logger,
		allowedOrigins: allowedOrigins,
	}
	h.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			if len(h.allowedOrigins) == 0 {
				u, err := url.Parse(origin)
				if err != nil {
					return false
				}
				return strings.EqualFold(u.Host, r.Host)
			}
			for _, allowed := range h.allowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}
	return h
}

type previewMessage struct {
	Type     string           `json:"type"`
	HTML     string           `json:"html"`
	Warnings []render.Warning `json:"warnings,omitempty"`
}

// HandleConnection upgrades the connection, sends the current preview, and
// streams refreshed previews on every record change.
func (h *WsHandler) HandleConnection(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("upgrade websocket failed", slog.Any("error", err))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	log := h.logger.With(slog.String("client_ip", c.ClientIP()))

	errCh := make(chan error, 2)
	go h.readLoop(ctx, conn, errCh, cancel)

	changes, unsubscribe := h.session.Subscribe()
	defer unsubscribe()

	if err := h.sendPreview(conn, log); err != nil {
		log.Info("websocket connection closed", slog.Any("error", err))
		return
	}

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case err := <-errCh:
			if err != nil {
				log.Info("websocket connection closed", slog.Any("error", err))
			}
			return
		case <-changes:
			if err := h.sendPreview(conn, log); err != nil {
				log.Info("websocket connection closed", slog.Any("error", err))
				return
			}
		case <-ticker.C:
			deadline := time.Now().Add(5 * time.Second)
			if err := conn.WriteControl(websocket.PingMessage, []byte("ping"), deadline); err != nil {
				log.Info("websocket ping failed", slog.Any("error", err))
				return
			}
		}
	}
}

func (h *WsHandler) sendPreview(conn *websocket.Conn, log *slog.Logger) error {
	html, warnings, err := render.RenderPreview(h.session.Snapshot())
	if err != nil {
		// A template failure must not kill the connection; log and wait for
		// the next change.
		log.Error("render preview for websocket", slog.Any("error", err))
		return nil
	}

	return conn.WriteJSON(previewMessage{
		Type:     "preview",
		HTML:     html,
		Warnings: warnings,
	})
}

// readLoop drains client messages so disconnects are noticed promptly.
// Incoming payloads carry no meaning; mutations go through the HTTP surface.
func (h *WsHandler) readLoop(ctx context.Context, conn *websocket.Conn, errCh chan<- error, cancel context.CancelFunc) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if _, _, err := conn.ReadMessage(); err != nil {
			errCh <- err
			cancel()
			return
		}
	}
}

package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"

	"github.com/heenakousar16/beauty/internal/container"
	"github.com/heenakousar16/beauty/internal/models"
	"github.com/heenakousar16/beauty/internal/utils"
)

const wsReadDeadline = 60 * time.Second

// WSHandler serves the consultant chat over WebSocket, one conversation per
// connection. Messages on a connection are processed strictly in order.
type WSHandler struct {
	container *container.Container
	processor *ChatProcessor
}

func NewWSHandler(c *container.Container) *WSHandler {
	return &WSHandler{
		container: c,
		processor: NewChatProcessor(c),
	}
}

type WSMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Gender    string `json:"gender"`
}

type WSResponse struct {
	Type         string `json:"type"`
	Output       string `json:"output,omitempty"`
	Speak        string `json:"speak,omitempty"`
	SessionID    string `json:"session_id,omitempty"`
	MessageCount int    `json:"message_count,omitempty"`
	Error        string `json:"error,omitempty"`
}

func (h *WSHandler) HandleWebSocket(c *websocket.Conn) {
	ctx := context.Background()
	clientID := uuid.New().String()

	utils.LogInfo(ctx, "websocket client connected", slog.String("client_id", clientID))
	defer utils.LogInfo(ctx, "websocket client disconnected", slog.String("client_id", clientID))

	c.SetReadDeadline(time.Now().Add(wsReadDeadline))
	c.SetPongHandler(func(string) error {
		c.SetReadDeadline(time.Now().Add(wsReadDeadline))
		return nil
	})

	for {
		var msg WSMessage
		if err := c.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				utils.LogWarn(ctx, "websocket read error",
					slog.String("client_id", clientID),
					slog.Any("error", err),
				)
			}
			return
		}
		c.SetReadDeadline(time.Now().Add(wsReadDeadline))

		switch msg.Type {
		case "ping":
			if err := c.WriteJSON(WSResponse{Type: "pong"}); err != nil {
				return
			}

		case "chat", "":
			resp := h.processor.ProcessChat(ctx, &models.ChatRequest{
				SessionID: msg.SessionID,
				Message:   msg.Message,
				Gender:    msg.Gender,
			})

			var out WSResponse
			if resp.Error != nil {
				out = WSResponse{
					Type:      "error",
					Error:     resp.Error.Message,
					SessionID: msg.SessionID,
				}
			} else {
				out = WSResponse{
					Type:         resp.Type,
					Output:       resp.Output,
					Speak:        resp.Speak,
					SessionID:    resp.SessionID,
					MessageCount: resp.MessageCount,
				}
			}
			if err := c.WriteJSON(out); err != nil {
				return
			}

		default:
			if err := c.WriteJSON(WSResponse{
				Type:  "error",
				Error: "Unknown message type: " + msg.Type,
			}); err != nil {
				return
			}
		}
	}
}

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/heenakousar16/beauty/internal/container"
	"github.com/heenakousar16/beauty/internal/models"
	"github.com/heenakousar16/beauty/internal/services"
	"github.com/heenakousar16/beauty/internal/utils"
)

// ChatProcessor holds the consultant pipeline shared between the REST and
// WebSocket handlers.
type ChatProcessor struct {
	container *container.Container
}

func NewChatProcessor(c *container.Container) *ChatProcessor {
	return &ChatProcessor{
		container: c,
	}
}

// ChatProcessorResponse is the standardized result of one chat turn.
type ChatProcessorResponse struct {
	Type         string
	Output       string
	Speak        string
	SessionID    string
	MessageCount int
	Error        *ErrorInfo
}

// ErrorInfo contains error details.
type ErrorInfo struct {
	Code    string
	Message string
}

// ProcessChat appends the user turn, asks the consultant, appends the
// assistant turn, and saves the session. The consultant never fails, so the
// only error paths are validation and session storage.
func (p *ChatProcessor) ProcessChat(ctx context.Context, req *models.ChatRequest) *ChatProcessorResponse {
	start := time.Now()

	message := p.container.Transcriber.TranscribeText(req.Message)
	if message == "" {
		return &ChatProcessorResponse{
			Error: &ErrorInfo{
				Code:    "validation_error",
				Message: "Message is required",
			},
		}
	}

	session, err := p.container.SessionService.GetOrCreate(ctx, req.SessionID, req.Gender)
	if err != nil {
		utils.LogError(ctx, "failed to load session", err, slog.String("session_id", req.SessionID))
		return &ChatProcessorResponse{
			Error: &ErrorInfo{
				Code:    "session_error",
				Message: "Failed to load session",
			},
		}
	}

	session.Append(models.RoleUser, message)

	reply := p.container.Consultant.Respond(ctx, message, session.Gender)

	session.Append(models.RoleAssistant, reply)

	if err := p.container.SessionService.Save(ctx, session); err != nil {
		// The reply is already computed; losing one history write should not
		// surface as a user-facing failure.
		utils.LogWarn(ctx, "failed to save session (non-critical)",
			slog.String("session_id", session.ID),
			slog.Any("error", err),
		)
	}

	utils.LogInfo(ctx, "chat turn completed",
		slog.String("session_id", session.ID),
		slog.Int("message_count", session.MessageCount),
		slog.Float64("duration_seconds", time.Since(start).Seconds()),
	)

	return &ChatProcessorResponse{
		Type:         "text",
		Output:       reply,
		Speak:        p.container.Speech.SpeakText(reply),
		SessionID:    session.ID,
		MessageCount: session.MessageCount,
	}
}

// ChatHandler exposes the consultant over REST.
type ChatHandler struct {
	container *container.Container
	processor *ChatProcessor
}

func NewChatHandler(c *container.Container) *ChatHandler {
	return &ChatHandler{
		container: c,
		processor: NewChatProcessor(c),
	}
}

func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body",
		})
	}

	resp := h.processor.ProcessChat(c.UserContext(), &req)
	if resp.Error != nil {
		status := fiber.StatusInternalServerError
		if resp.Error.Code == "validation_error" {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(models.ErrorResponse{
			Error:   resp.Error.Code,
			Message: resp.Error.Message,
		})
	}

	return c.JSON(models.ChatResponse{
		Type:         resp.Type,
		Output:       resp.Output,
		Speak:        resp.Speak,
		SessionID:    resp.SessionID,
		MessageCount: resp.MessageCount,
	})
}

// GetHistory returns the full conversation of a session for re-rendering.
func (h *ChatHandler) GetHistory(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error:   "validation_error",
			Message: "session_id is required",
		})
	}

	session, err := h.container.SessionService.Get(c.UserContext(), sessionID)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
				Error:   "not_found",
				Message: "Session not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error:   "session_error",
			Message: "Failed to load session",
		})
	}

	return c.JSON(models.ChatHistoryResponse{
		SessionID:    session.ID,
		Conversation: session.Conversation,
	})
}

package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/heenakousar16/beauty/internal/config"
	"github.com/heenakousar16/beauty/internal/container"
	"github.com/heenakousar16/beauty/internal/models"
	"github.com/heenakousar16/beauty/internal/services"
)

// newTestContainer wires the services on in-memory collaborators: no Redis,
// no generative backend, and a catalog API that always fails so every fetch
// uses the built-in samples.
func newTestContainer(t *testing.T) *container.Container {
	t.Helper()

	catalogStub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(catalogStub.Close)

	cfg := &config.Config{
		CatalogAPIURL:     catalogStub.URL,
		CatalogTimeout:    time.Second,
		GeminiTemperature: 0.7,
		DescribeMaxTokens: 150,
		ConsultMaxTokens:  200,
	}

	return &container.Container{
		Config:         cfg,
		CatalogService: services.NewCatalogService(cfg),
		Recommender:    services.NewRecommenderService(),
		Describer:      services.NewDescriberService(cfg, nil),
		Consultant:     services.NewConsultantService(cfg, nil),
		SessionService: services.NewSessionService(services.NewMemorySessionStore()),
		Transcriber:    services.BrowserTranscriber{},
		Speech:         services.BrowserSynthesizer{},
	}
}

func newTestApp(c *container.Container) *fiber.App {
	app := fiber.New()
	chat := NewChatHandler(c)
	rec := NewRecommendHandler(c)
	app.Post("/api/chat", chat.HandleChat)
	app.Get("/api/chat/history", chat.GetHistory)
	app.Post("/api/recommendations", rec.HandleRecommendations)
	app.Get("/api/catalog/filters", rec.HandleFilters)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	resp.Body.Close()
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("decode response %s: %v", data, err)
	}
}

func TestHandleChatAnswersQuestion(t *testing.T) {
	app := newTestApp(newTestContainer(t))

	resp := postJSON(t, app, "/api/chat", models.ChatRequest{
		Message: "How do I pick a foundation shade?",
		Gender:  "female",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body models.ChatResponse
	decodeBody(t, resp, &body)

	if body.Type != "text" {
		t.Errorf("type = %q, want text", body.Type)
	}
	if !strings.Contains(body.Output, "foundation") {
		t.Errorf("output = %q, want a foundation answer", body.Output)
	}
	if body.Speak == "" {
		t.Error("expected a non-empty speak field")
	}
	if body.SessionID == "" {
		t.Error("expected a session ID")
	}
	// Welcome + user turn + assistant turn.
	if body.MessageCount != 3 {
		t.Errorf("message_count = %d, want 3", body.MessageCount)
	}
}

func TestHandleChatKeepsSessionAcrossTurns(t *testing.T) {
	app := newTestApp(newTestContainer(t))

	resp := postJSON(t, app, "/api/chat", models.ChatRequest{Message: "which lipstick suits me?"})
	var first models.ChatResponse
	decodeBody(t, resp, &first)

	resp = postJSON(t, app, "/api/chat", models.ChatRequest{
		SessionID: first.SessionID,
		Message:   "and what about mascara?",
	})
	var second models.ChatResponse
	decodeBody(t, resp, &second)

	if second.SessionID != first.SessionID {
		t.Errorf("session ID changed across turns: %q -> %q", first.SessionID, second.SessionID)
	}
	if second.MessageCount != first.MessageCount+2 {
		t.Errorf("message_count = %d, want %d", second.MessageCount, first.MessageCount+2)
	}
}

func TestHandleChatRejectsEmptyMessage(t *testing.T) {
	app := newTestApp(newTestContainer(t))

	resp := postJSON(t, app, "/api/chat", models.ChatRequest{Message: "   "})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var body models.ErrorResponse
	decodeBody(t, resp, &body)
	if body.Error != "validation_error" {
		t.Errorf("error = %q, want validation_error", body.Error)
	}
}

func TestHandleChatRejectsMalformedBody(t *testing.T) {
	app := newTestApp(newTestContainer(t))

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGetHistoryReturnsConversation(t *testing.T) {
	app := newTestApp(newTestContainer(t))

	resp := postJSON(t, app, "/api/chat", models.ChatRequest{Message: "tell me about blush"})
	var chat models.ChatResponse
	decodeBody(t, resp, &chat)

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history?session_id="+chat.SessionID, nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var history models.ChatHistoryResponse
	decodeBody(t, resp, &history)

	if history.SessionID != chat.SessionID {
		t.Errorf("session_id = %q, want %q", history.SessionID, chat.SessionID)
	}
	if len(history.Conversation) != 3 {
		t.Fatalf("conversation has %d turns, want 3", len(history.Conversation))
	}
	if history.Conversation[0].Role != models.RoleAssistant {
		t.Errorf("first turn role = %q, want the assistant welcome", history.Conversation[0].Role)
	}
	if history.Conversation[1].Content != "tell me about blush" {
		t.Errorf("second turn content = %q, want the user message", history.Conversation[1].Content)
	}
}

func TestGetHistoryUnknownSession(t *testing.T) {
	app := newTestApp(newTestContainer(t))

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history?session_id=missing", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestGetHistoryRequiresSessionID(t *testing.T) {
	app := newTestApp(newTestContainer(t))

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

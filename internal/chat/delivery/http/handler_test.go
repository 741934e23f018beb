package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"ironlady-assistant/internal/chat"
	chatHTTP "ironlady-assistant/internal/chat/delivery/http"
	"ironlady-assistant/internal/middleware"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockChatUseCase struct {
	output    chat.ProcessOutput
	err       error
	lastInput chat.ProcessInput
	calls     int
}

func (m *mockChatUseCase) Process(ctx context.Context, input chat.ProcessInput) (chat.ProcessOutput, error) {
	m.calls++
	m.lastInput = input
	return m.output, m.err
}

// ── Test Helpers ───────────────────────────────────────────────────────────

func newTestEngine(t *testing.T, uc chat.UseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := &mockLogger{}
	engine := gin.New()
	h := chatHTTP.New(l, uc)
	chatHTTP.RegisterRoutes(engine.Group("/api/v1"), h, middleware.New(l, 0))
	return engine
}

func postChat(engine *gin.Engine, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

type respEnvelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestChat_Success(t *testing.T) {
	uc := &mockChatUseCase{
		output: chat.ProcessOutput{
			Message:        "We offer five leadership programs.",
			ConversationID: "conv-123",
			Suggestions:    []string{"a", "b", "c"},
		},
	}
	engine := newTestEngine(t, uc)

	w := postChat(engine, `{"message": "What programs do you offer?", "conversation_id": "conv-123"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var env respEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if env.ErrorCode != 0 {
		t.Errorf("expected error_code 0, got %d", env.ErrorCode)
	}

	var data struct {
		Message        string   `json:"message"`
		ConversationID string   `json:"conversation_id"`
		Suggestions    []string `json:"suggestions"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if data.Message != uc.output.Message {
		t.Errorf("unexpected message: %q", data.Message)
	}
	if data.ConversationID != "conv-123" {
		t.Errorf("unexpected conversation_id: %q", data.ConversationID)
	}
	if len(data.Suggestions) != 3 {
		t.Errorf("expected 3 suggestions, got %d", len(data.Suggestions))
	}

	if uc.lastInput.Message != "What programs do you offer?" {
		t.Errorf("use case received wrong message: %q", uc.lastInput.Message)
	}
	if uc.lastInput.ConversationID != "conv-123" {
		t.Errorf("use case received wrong conversation id: %q", uc.lastInput.ConversationID)
	}
}

func TestChat_EmptyMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing field", `{}`},
		{"empty string", `{"message": ""}`},
		{"whitespace only", `{"message": "   "}`},
		{"malformed json", `{"message": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockChatUseCase{}
			engine := newTestEngine(t, uc)

			w := postChat(engine, tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			if uc.calls != 0 {
				t.Errorf("use case should not be called, got %d calls", uc.calls)
			}
		})
	}
}

func TestChat_EmptyMessageFromUseCase(t *testing.T) {
	uc := &mockChatUseCase{err: chat.ErrEmptyMessage}
	engine := newTestEngine(t, uc)

	w := postChat(engine, `{"message": "hello"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestChat_InternalErrorMasked(t *testing.T) {
	uc := &mockChatUseCase{err: context.DeadlineExceeded}
	engine := newTestEngine(t, uc)

	w := postChat(engine, `{"message": "hello"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}

	var env respEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if env.Message != "Something went wrong" {
		t.Errorf("internal error detail leaked to caller: %q", env.Message)
	}
}

func TestQuickQuestions(t *testing.T) {
	engine := newTestEngine(t, &mockChatUseCase{})

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/quick-questions", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var env respEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}

	var data struct {
		Questions []string `json:"questions"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if len(data.Questions) != 8 {
		t.Fatalf("expected 8 quick questions, got %d", len(data.Questions))
	}
	if data.Questions[0] != "What programs do you offer?" {
		t.Errorf("unexpected first question: %q", data.Questions[0])
	}
}

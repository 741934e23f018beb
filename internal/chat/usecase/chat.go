package usecase

import (
	"context"
	"strings"

	"ironlady-assistant/internal/chat"
	"ironlady-assistant/internal/model"
	"ironlady-assistant/pkg/llmprovider"
)

// Process handles one chat exchange: resolve the conversation, record the
// user turn, generate a reply (external model or deterministic fallback),
// record the assistant turn, and enforce the retention window.
func (uc *implUseCase) Process(ctx context.Context, input chat.ProcessInput) (chat.ProcessOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.ProcessOutput{}, chat.ErrEmptyMessage
	}

	id, isNew := uc.repo.Resolve(input.ConversationID)
	if isNew {
		uc.l.Debugf(ctx, "chat: started conversation %s", id)
	}

	uc.repo.Append(id, model.Turn{Role: model.RoleUser, Text: input.Message})

	reply := uc.generate(ctx, uc.repo.History(id), input.Message)

	uc.repo.Append(id, model.Turn{Role: model.RoleAssistant, Text: reply})
	uc.repo.Truncate(id, model.HistoryWindow)

	return chat.ProcessOutput{
		Message:        reply,
		ConversationID: id,
		Suggestions:    suggestFollowUps(input.Message),
	}, nil
}

// generate makes at most one external attempt, then falls back. External
// failures are logged and masked; the returned string is always non-empty.
func (uc *implUseCase) generate(ctx context.Context, history []model.Turn, latestMessage string) string {
	if uc.llm == nil {
		return fallbackResponse(latestMessage)
	}

	genCtx, cancel := context.WithTimeout(ctx, uc.llmTimeout)
	defer cancel()

	messages := make([]llmprovider.Message, len(history))
	for i, turn := range history {
		messages[i] = llmprovider.Message{Role: string(turn.Role), Text: turn.Text}
	}

	resp, err := uc.llm.GenerateContent(genCtx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: "system", Text: uc.systemPrompt},
		Messages:          messages,
		Temperature:       generationTemperature,
		MaxTokens:         maxOutputTokens,
	})
	if err != nil {
		uc.l.Warnf(ctx, "chat: external generation failed, using fallback: %v", err)
		return fallbackResponse(latestMessage)
	}
	if strings.TrimSpace(resp.Text) == "" {
		uc.l.Warnf(ctx, "chat: external model returned empty text, using fallback")
		return fallbackResponse(latestMessage)
	}

	return resp.Text
}

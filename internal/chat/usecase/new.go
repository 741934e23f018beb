package usecase

import (
	"time"

	"ironlady-assistant/internal/chat/repository"
	"ironlady-assistant/internal/knowledge"
	"ironlady-assistant/pkg/llmprovider"
	pkgLog "ironlady-assistant/pkg/log"
)

type implUseCase struct {
	l            pkgLog.Logger
	repo         repository.ConversationRepository
	llm          llmprovider.Provider // nil when no provider is configured
	llmTimeout   time.Duration
	systemPrompt string
}

// New creates the chat UseCase. The system prompt is built once here and
// cached for the process lifetime; the knowledge base never changes after load.
// A nil llm puts the use case in fallback-only mode.
func New(
	l pkgLog.Logger,
	repo repository.ConversationRepository,
	llm llmprovider.Provider,
	kb *knowledge.Base,
	llmTimeout time.Duration,
) *implUseCase {
	if llmTimeout <= 0 {
		llmTimeout = defaultLLMTimeout
	}
	return &implUseCase{
		l:            l,
		repo:         repo,
		llm:          llm,
		llmTimeout:   llmTimeout,
		systemPrompt: buildSystemPrompt(kb),
	}
}

package http

import "ironlady-assistant/internal/chat"

// --- Request DTOs ---

type chatReq struct {
	Message        string `json:"message" binding:"required"`
	ConversationID string `json:"conversation_id"`
}

func (r chatReq) toInput() chat.ProcessInput {
	return chat.ProcessInput{
		Message:        r.Message,
		ConversationID: r.ConversationID,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Message        string   `json:"message"`
	ConversationID string   `json:"conversation_id"`
	Suggestions    []string `json:"suggestions,omitempty"`
}

func (h *handler) newChatResp(out chat.ProcessOutput) chatResp {
	return chatResp{
		Message:        out.Message,
		ConversationID: out.ConversationID,
		Suggestions:    out.Suggestions,
	}
}

type quickQuestionsResp struct {
	Questions []string `json:"questions"`
}

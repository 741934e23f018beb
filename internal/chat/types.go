package chat

// --- UseCase Inputs ---

type ProcessInput struct {
	Message        string
	ConversationID string
}

// --- UseCase Outputs ---

type ProcessOutput struct {
	Message        string
	ConversationID string
	Suggestions    []string
}

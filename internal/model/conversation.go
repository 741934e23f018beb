package model

// Role tags a conversation turn as user- or assistant-authored.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single message in a conversation. Immutable once created.
type Turn struct {
	Role Role
	Text string
}

// HistoryWindow is the maximum number of turns retained per conversation.
// After every exchange the oldest turns beyond this window are discarded.
const HistoryWindow = 10

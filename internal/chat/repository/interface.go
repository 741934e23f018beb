package repository

import "ironlady-assistant/internal/model"

// ConversationRepository owns per-conversation message histories.
//
// Implementations must serialize operations on the same conversation id;
// operations on different ids are independent. Concurrent requests racing on
// one id may interleave their exchanges.
type ConversationRepository interface {
	// Resolve maps an optional caller-supplied id to a conversation. An empty
	// or unknown id yields a freshly generated id with an empty conversation
	// and isNew=true. Generated ids never collide with existing ones.
	Resolve(id string) (conversationID string, isNew bool)

	// Append adds a turn to the identified conversation, creating it
	// implicitly if unknown. Callers are expected to Resolve first.
	Append(id string, turn model.Turn)

	// Truncate keeps only the most recent window turns, preserving order.
	Truncate(id string, window int)

	// History returns a snapshot copy of the stored turns; empty if unknown.
	History(id string) []model.Turn
}

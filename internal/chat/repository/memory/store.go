package memory

import (
	"sync"

	"github.com/google/uuid"

	"ironlady-assistant/internal/model"
)

// conversation holds one bounded turn history with its own lock, so operations
// on different conversations never contend.
type conversation struct {
	mu    sync.Mutex
	turns []model.Turn
}

// Store is the in-process ConversationRepository. Conversations live for the
// process lifetime; the outer map is never pruned.
type Store struct {
	mu            sync.RWMutex
	conversations map[string]*conversation
}

// New creates an empty conversation store.
func New() *Store {
	return &Store{
		conversations: make(map[string]*conversation),
	}
}

// Resolve returns the existing conversation id, or generates a fresh one when
// the id is empty or unknown.
func (s *Store) Resolve(id string) (string, bool) {
	if id != "" {
		s.mu.RLock()
		_, ok := s.conversations[id]
		s.mu.RUnlock()
		if ok {
			return id, false
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	newID := uuid.NewString()
	for s.conversations[newID] != nil {
		newID = uuid.NewString()
	}
	s.conversations[newID] = &conversation{}
	return newID, true
}

// Append adds a turn, creating the conversation if it does not exist.
func (s *Store) Append(id string, turn model.Turn) {
	conv := s.get(id)

	conv.mu.Lock()
	conv.turns = append(conv.turns, turn)
	conv.mu.Unlock()
}

// Truncate discards the oldest turns beyond window, keeping relative order.
func (s *Store) Truncate(id string, window int) {
	s.mu.RLock()
	conv, ok := s.conversations[id]
	s.mu.RUnlock()
	if !ok || window < 0 {
		return
	}

	conv.mu.Lock()
	if len(conv.turns) > window {
		kept := make([]model.Turn, window)
		copy(kept, conv.turns[len(conv.turns)-window:])
		conv.turns = kept
	}
	conv.mu.Unlock()
}

// History returns a snapshot copy of the conversation's turns.
func (s *Store) History(id string) []model.Turn {
	s.mu.RLock()
	conv, ok := s.conversations[id]
	s.mu.RUnlock()
	if !ok {
		return []model.Turn{}
	}

	conv.mu.Lock()
	defer conv.mu.Unlock()

	out := make([]model.Turn, len(conv.turns))
	copy(out, conv.turns)
	return out
}

// get returns the conversation for id, creating it if missing.
func (s *Store) get(id string) *conversation {
	s.mu.RLock()
	conv, ok := s.conversations[id]
	s.mu.RUnlock()
	if ok {
		return conv
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if conv, ok = s.conversations[id]; ok {
		return conv
	}
	conv = &conversation{}
	s.conversations[id] = conv
	return conv
}

package store

import (
	"sync"

	"github.com/demensdeum/xboard-job-review-telegram-bot/model"
)

// ConversationStore tracks each submitter's intake phase. An entry is created
// when intake starts and removed on every terminal transition, so an absent
// entry reads as PhaseIdle. Submitters are independent of each other.
type ConversationStore struct {
	mu     sync.Mutex
	phases map[int64]model.Phase
}

// NewConversationStore returns an empty store.
func NewConversationStore() *ConversationStore {
	return &ConversationStore{phases: make(map[int64]model.Phase)}
}

// Phase returns the submitter's current phase, PhaseIdle when untracked.
func (s *ConversationStore) Phase(id int64) model.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.phases[id]
}

// SetPhase records the submitter's phase.
func (s *ConversationStore) SetPhase(id int64, phase model.Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phases[id] = phase
}

// Clear drops the submitter back to PhaseIdle.
func (s *ConversationStore) Clear(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.phases, id)
}

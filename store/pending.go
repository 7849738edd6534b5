package store

import (
	"sync"

	"github.com/demensdeum/xboard-job-review-telegram-bot/model"
)

// PendingStore holds submissions between dispatch to the moderator and the
// moderator's decision, keyed by submitter id. It is the one shared mutable
// resource in the bot and is safe for concurrent use. Entries are not
// durable: a restart before a decision loses them.
type PendingStore struct {
	mu      sync.Mutex
	pending map[int64]model.Submission
}

// NewPendingStore returns an empty store.
func NewPendingStore() *PendingStore {
	return &PendingStore{pending: make(map[int64]model.Submission)}
}

// Put inserts the pending submission for id, replacing any previous one.
func (s *PendingStore) Put(id int64, sub model.Submission) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending[id] = sub
}

// TakeIfPending atomically removes and returns the submission for id.
// Only one concurrent caller ever observes found=true per Put; that is what
// makes decision resolution at-most-once even when the same button is
// tapped twice.
func (s *PendingStore) TakeIfPending(id int64) (model.Submission, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, found := s.pending[id]
	if found {
		delete(s.pending, id)
	}
	return sub, found
}

// Exists reports whether a submission is pending for id without touching it.
// It is for messaging ergonomics only; resolution must go through
// TakeIfPending.
func (s *PendingStore) Exists(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, found := s.pending[id]
	return found
}

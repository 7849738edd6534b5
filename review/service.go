package review

import (
	"log/slog"

	"github.com/demensdeum/xboard-job-review-telegram-bot/store"
)

// Control is one inline decision button attached to a message.
type Control struct {
	Label string
	Data  string
}

// MessageRef identifies a previously sent message so it can be edited later.
type MessageRef struct {
	ChatID    int64
	MessageID string
}

// Profile is the transport's best-effort view of a user.
type Profile struct {
	Username    string
	DisplayName string
}

// Transport is the chat backend the review flow talks through. Calls are
// fire-and-await: no retries, no internal timeouts, a failure comes back as
// an error for the caller to degrade on.
type Transport interface {
	SendMessage(recipient int64, text string, controls ...Control) (MessageRef, error)
	EditMessage(ref MessageRef, text string) error
	FetchProfile(userID int64) (Profile, error)
}

// Service drives the submission intake flow and resolves moderator
// decisions. It owns the pending-submission store and the per-submitter
// conversation phases.
type Service struct {
	transport     Transport
	pending       *store.PendingStore
	conversations *store.ConversationStore
	moderatorID   int64
	channelID     int64
	log           *slog.Logger
}

// NewService wires a review service onto a transport. moderatorID may be 0;
// intake then aborts gracefully instead of dispatching.
func NewService(t Transport, moderatorID, channelID int64, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		transport:     t,
		pending:       store.NewPendingStore(),
		conversations: store.NewConversationStore(),
		moderatorID:   moderatorID,
		channelID:     channelID,
		log:           log,
	}
}

// HasPending reports whether the submitter has a submission awaiting a
// decision. Informational only; resolution always goes through the atomic
// take.
func (s *Service) HasPending(userID int64) bool {
	return s.pending.Exists(userID)
}

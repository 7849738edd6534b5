package review

import (
	"errors"
	"fmt"

	"github.com/demensdeum/xboard-job-review-telegram-bot/model"
)

// ErrModeratorUnset is returned when the moderation path is disabled because
// no moderator identity is configured.
var ErrModeratorUnset = errors.New("moderator id is not configured")

// moderatorPreviewLimit bounds the contact text shown in the moderator
// message. The preview may be lossy; the channel publish always uses the
// full text from the store.
const moderatorPreviewLimit = 1024

// dispatch sends the pending submission to the moderator with the decision
// controls. Failures are surfaced to the caller, which rolls the pending
// record back.
func (s *Service) dispatch(sub model.Submission) (MessageRef, error) {
	if s.moderatorID == 0 {
		return MessageRef{}, ErrModeratorUnset
	}

	text := fmt.Sprintf(
		"🔔 NEW REVIEW PENDING\n\nAuthor: %s (ID: %d)\nContact: %s\n\nApprove and publish to the channel?",
		sub.AuthorDisplay, sub.ID, TruncateText(sub.ContactText, moderatorPreviewLimit),
	)
	controls := []Control{
		{Label: "✅ Approve", Data: EncodeDecision(ActionApprove, sub.ID)},
		{Label: "❌ Reject", Data: EncodeDecision(ActionReject, sub.ID)},
	}

	ref, err := s.transport.SendMessage(s.moderatorID, text, controls...)
	if err != nil {
		return MessageRef{}, fmt.Errorf("send to moderator: %w", err)
	}
	return ref, nil
}

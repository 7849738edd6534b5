package review

import (
	"fmt"

	"github.com/google/uuid"
)

// RequestPurge forwards a "delete all my reviews" request to the moderator.
// This is a stateless one-shot: nothing is stored and no correlation exists,
// the moderator handles the ticket manually.
func (s *Service) RequestPurge(userID int64, username string) error {
	display := displayFor(userID, username)

	if s.moderatorID == 0 {
		s.log.Warn("purge request with no moderator configured", "user", userID)
		_, err := s.transport.SendMessage(userID,
			"⚠️ The moderator is not configured; your deletion request was only logged.")
		return err
	}

	ticket := uuid.NewString()
	text := fmt.Sprintf(
		"🛑 REVIEW DELETION REQUEST 🛑\n\nTicket: %s\nUser: %s (ID: %d)\n\n"+
			"This user requests FULL deletion of all reviews they previously left. "+
			"MODERATOR ACTION REQUIRED.",
		ticket, display, userID,
	)
	if _, err := s.transport.SendMessage(s.moderatorID, text); err != nil {
		s.log.Error("purge request delivery failed", "user", userID, "err", err)
		if _, sendErr := s.transport.SendMessage(userID,
			"❌ Could not deliver your deletion request, please contact support directly."); sendErr != nil {
			s.log.Error("purge failure notice failed", "user", userID, "err", sendErr)
		}
		return err
	}

	s.log.Info("purge request forwarded", "user", userID, "ticket", ticket)
	_, err := s.transport.SendMessage(userID,
		"✅ Your request to delete all your reviews was forwarded to the moderator. "+
			"It will be handled manually.")
	return err
}

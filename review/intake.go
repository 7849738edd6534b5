package review

import (
	"errors"
	"strconv"
	"strings"

	"github.com/demensdeum/xboard-job-review-telegram-bot/model"
)

const (
	msgIntakePrompt = "Who is your review about? Send the contact of the subject " +
		"(company name, Telegram handle, email). Other members of the group will be " +
		"able to reach out to you for details. Send /cancel to abort."
	msgIntakeAck = "✅ Your review was received and sent to the moderator. " +
		"You will be notified once it is published or declined."
	msgIntakeReplaces  = "\n\nNote: it replaces your previous review that was still awaiting moderation."
	msgIntakeCancelled = "The conversation was cancelled. What would you like to do next?"
	msgModeratorUnset  = "❌ The moderator is not configured, so your review cannot be " +
		"submitted right now. Nothing was published."
	msgDispatchFailed = "❌ Could not deliver your review to the moderator. " +
		"Nothing was submitted, please try again later."
)

// Phase returns the submitter's current intake phase.
func (s *Service) Phase(userID int64) model.Phase {
	return s.conversations.Phase(userID)
}

// BeginIntake moves the submitter into AwaitingContact and prompts for the
// contact text.
func (s *Service) BeginIntake(userID int64) error {
	s.conversations.SetPhase(userID, model.PhaseAwaitingContact)
	if _, err := s.transport.SendMessage(userID, msgIntakePrompt); err != nil {
		s.log.Error("intake prompt failed", "user", userID, "err", err)
		return err
	}
	return nil
}

// CancelIntake discards an in-progress intake without creating a submission.
// A previously dispatched submission still awaiting moderation is not
// touched: cancellation only affects the current conversation.
func (s *Service) CancelIntake(userID int64) error {
	s.conversations.Clear(userID)
	if _, err := s.transport.SendMessage(userID, msgIntakeCancelled); err != nil {
		s.log.Error("cancel ack failed", "user", userID, "err", err)
		return err
	}
	return nil
}

// RePrompt repeats the contact prompt without changing phase. Used when the
// submitter sends something other than plain text while AwaitingContact.
func (s *Service) RePrompt(userID int64) {
	if _, err := s.transport.SendMessage(userID, msgIntakePrompt); err != nil {
		s.log.Error("re-prompt failed", "user", userID, "err", err)
	}
}

// SubmitContact completes intake for a submitter in AwaitingContact: it
// validates the text, records the pending submission and hands it to the
// moderator. On any dispatch failure the pending record is rolled back so no
// orphaned entry outlives a moderator message that was never sent.
func (s *Service) SubmitContact(userID int64, username, text string) error {
	if strings.TrimSpace(text) == "" {
		// Validation failure: stay in AwaitingContact, create nothing.
		s.RePrompt(userID)
		return nil
	}

	sub := model.Submission{
		ID:            userID,
		AuthorDisplay: displayFor(userID, username),
		ContactText:   text,
		Status:        model.StatusPending,
	}

	// A second submission while one is pending replaces it; the superseded
	// entry's buttons will resolve as a conflict.
	replaces := s.pending.Exists(userID)
	s.pending.Put(userID, sub)

	if _, err := s.dispatch(sub); err != nil {
		s.pending.TakeIfPending(userID)
		s.conversations.Clear(userID)
		s.log.Error("dispatch to moderator failed", "user", userID, "err", err)
		abort := msgDispatchFailed
		if errors.Is(err, ErrModeratorUnset) {
			abort = msgModeratorUnset
		}
		if _, sendErr := s.transport.SendMessage(userID, abort); sendErr != nil {
			s.log.Error("abort notice failed", "user", userID, "err", sendErr)
		}
		return err
	}

	s.conversations.Clear(userID)
	ack := msgIntakeAck
	if replaces {
		ack += msgIntakeReplaces
	}
	if _, err := s.transport.SendMessage(userID, ack); err != nil {
		s.log.Error("intake ack failed", "user", userID, "err", err)
	}
	s.log.Info("submission dispatched", "user", userID, "author", sub.AuthorDisplay)
	return nil
}

// displayFor is the best-effort handle captured at submission time: the
// username when there is one, the decimal id otherwise.
func displayFor(userID int64, username string) string {
	if username != "" {
		return "@" + username
	}
	return strconv.FormatInt(userID, 10)
}

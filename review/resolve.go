package review

import (
	"fmt"
	"strings"

	"github.com/demensdeum/xboard-job-review-telegram-bot/model"
)

// OutcomeKind classifies the result of resolving a decision.
type OutcomeKind int

const (
	// OutcomeResolved means the decision was committed and the fan-out ran.
	OutcomeResolved OutcomeKind = iota
	// OutcomeUnauthorized means the actor is not the trusted moderator.
	OutcomeUnauthorized
	// OutcomeConflict means the submission was already resolved or unknown.
	OutcomeConflict
)

// Outcome is the user-visible result of a decision; none of its kinds is a
// fault that should terminate the service.
type Outcome struct {
	Kind   OutcomeKind
	Action Action
	// Notice is a short line suitable for a callback acknowledgment.
	Notice string
}

// Resolve consumes a moderator decision on the submission keyed by
// submitterID. ref is the moderator message carrying the tapped control; it
// is edited in place to reflect the final state. The atomic take guarantees
// a given decision control resolves at most once; every later activation
// comes back as a conflict.
func (s *Service) Resolve(actorID int64, action Action, submitterID int64, ref MessageRef) Outcome {
	if s.moderatorID == 0 || actorID != s.moderatorID {
		s.log.Warn("unauthorized decision attempt", "actor", actorID, "submitter", submitterID)
		s.editModerator(ref, "⛔ You are not allowed to perform this action.")
		return Outcome{Kind: OutcomeUnauthorized, Action: action, Notice: "Not allowed."}
	}

	sub, found := s.pending.TakeIfPending(submitterID)
	if !found {
		s.log.Info("decision on resolved or unknown submission", "submitter", submitterID, "action", action)
		s.editModerator(ref, fmt.Sprintf(
			"⚠️ Submission %d is already resolved or unknown. Nothing was changed.", submitterID))
		return Outcome{Kind: OutcomeConflict, Action: action, Notice: "Already resolved."}
	}

	// The decision is committed from here on: fan-out failures are reported
	// on the moderator message, never rolled back.
	switch action {
	case ActionApprove:
		s.approve(sub, ref)
	case ActionReject:
		s.reject(sub, ref)
	}
	return Outcome{Kind: OutcomeResolved, Action: action, Notice: "Done."}
}

func (s *Service) approve(sub model.Submission, ref MessageRef) {
	sub.Status = model.StatusApproved
	mention := s.resolveMention(sub)

	var faults []string
	channelText := fmt.Sprintf(
		"New review. User %s can share their experience with %s", mention.Text, sub.ContactText)
	if _, err := s.transport.SendMessage(s.channelID, channelText); err != nil {
		s.log.Error("channel publish failed", "submitter", sub.ID, "err", err)
		faults = append(faults, fmt.Sprintf("channel publish: %v", err))
	}

	authorText := fmt.Sprintf(
		"✅ Your review about %s was approved and published to the channel!", sub.ContactText)
	if _, err := s.transport.SendMessage(sub.ID, authorText); err != nil {
		s.log.Error("approval notice failed", "submitter", sub.ID, "err", err)
		faults = append(faults, fmt.Sprintf("author notice: %v", err))
	}

	final := fmt.Sprintf("✅ APPROVED AND PUBLISHED\n\nContact: %s\nAuthor: %s",
		TruncateText(sub.ContactText, moderatorPreviewLimit), mention.Text)
	s.editModerator(ref, withFaults(final, faults))
	s.log.Info("submission approved", "submitter", sub.ID, "mention_resolved", mention.Resolved)
}

func (s *Service) reject(sub model.Submission, ref MessageRef) {
	sub.Status = model.StatusRejected

	var faults []string
	authorText := fmt.Sprintf(
		"❌ Your review about %s was declined by the moderator.", sub.ContactText)
	if _, err := s.transport.SendMessage(sub.ID, authorText); err != nil {
		s.log.Error("rejection notice failed", "submitter", sub.ID, "err", err)
		faults = append(faults, fmt.Sprintf("author notice: %v", err))
	}

	final := fmt.Sprintf("❌ REJECTED\n\nContact: %s\nAuthor ID: %d",
		TruncateText(sub.ContactText, moderatorPreviewLimit), sub.ID)
	s.editModerator(ref, withFaults(final, faults))
	s.log.Info("submission rejected", "submitter", sub.ID)
}

// editModerator edits the moderator message, which also drops its inline
// controls. Edit failures are logged only: the decision itself is already
// final.
func (s *Service) editModerator(ref MessageRef, text string) {
	if err := s.transport.EditMessage(ref, text); err != nil {
		s.log.Error("moderator message edit failed", "chat", ref.ChatID, "err", err)
	}
}

func withFaults(text string, faults []string) string {
	if len(faults) == 0 {
		return text
	}
	return text + "\n\n⚠️ Delivery errors:\n" + strings.Join(faults, "\n")
}

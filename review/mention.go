package review

import (
	"github.com/demensdeum/xboard-job-review-telegram-bot/model"
)

// Mention is the best-effort reference to a submission's author. Resolved is
// true when a fresh profile lookup succeeded; otherwise Text falls back to
// the display captured at submission time. Both variants are consumed
// uniformly downstream.
type Mention struct {
	Text     string
	Resolved bool
}

// resolveMention looks the author up via the transport. A lookup failure is
// never fatal: the publish proceeds with the captured fallback.
func (s *Service) resolveMention(sub model.Submission) Mention {
	profile, err := s.transport.FetchProfile(sub.ID)
	if err != nil {
		s.log.Warn("profile lookup failed, falling back to captured display",
			"submitter", sub.ID, "err", err)
		return Mention{Text: sub.AuthorDisplay}
	}
	if profile.Username != "" {
		return Mention{Text: "@" + profile.Username, Resolved: true}
	}
	if profile.DisplayName != "" {
		return Mention{Text: profile.DisplayName, Resolved: true}
	}
	return Mention{Text: sub.AuthorDisplay}
}

package model

// SubmissionStatus is the moderation state of a submission.
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"
)

// Submission is one review waiting for a moderator decision. The submitter's
// user id doubles as the correlation key, so a submitter has at most one
// pending submission at a time.
type Submission struct {
	ID            int64
	AuthorDisplay string
	ContactText   string
	Status        SubmissionStatus
}

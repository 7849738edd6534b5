package model

// Phase is a submitter's position in the intake conversation.
type Phase int

const (
	// PhaseIdle is both the initial and the resting state.
	PhaseIdle Phase = iota
	// PhaseAwaitingContact means the bot asked for contact text and is
	// waiting for the submitter's next message.
	PhaseAwaitingContact
)

package review

import (
	"fmt"
	"strconv"
	"strings"
)

// Action is a moderator decision carried in a control payload.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// MaxControlPayload is the transport's hard ceiling on control payload size
// (Telegram caps callback data at 64 bytes). The payload therefore carries
// only the action tag and the submitter id; the contact text stays in the
// pending store, which keeps full fidelity and makes duplicate decisions
// detectable.
const MaxControlPayload = 64

const payloadPrefix = "review"

// EncodeDecision builds the control payload for a decision button.
// The submitter id round-trips exactly through DecodeDecision.
func EncodeDecision(action Action, submitterID int64) string {
	return fmt.Sprintf("%s:%s:%d", payloadPrefix, action, submitterID)
}

// DecodeDecision parses a control payload produced by EncodeDecision.
func DecodeDecision(data string) (Action, int64, error) {
	parts := strings.Split(data, ":")
	if len(parts) != 3 || parts[0] != payloadPrefix {
		return "", 0, fmt.Errorf("malformed decision payload %q", data)
	}
	action := Action(parts[1])
	if action != ActionApprove && action != ActionReject {
		return "", 0, fmt.Errorf("unknown decision action %q", parts[1])
	}
	id, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("bad submitter id in decision payload %q: %w", data, err)
	}
	return action, id, nil
}

// TruncateText bounds s to max runes, marking the cut with an ellipsis.
// Truncation is lossy; it is used only for message previews, never for the
// payload itself, since the store-backed flow keeps the full text.
func TruncateText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}

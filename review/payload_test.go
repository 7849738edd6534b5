package review

import (
	"strings"
	"testing"
)

func TestDecisionPayloadRoundTrip(t *testing.T) {
	for _, action := range []Action{ActionApprove, ActionReject} {
		for _, id := range []int64{1, 42, 9007199254740993, 1<<63 - 1} {
			data := EncodeDecision(action, id)
			if len(data) > MaxControlPayload {
				t.Fatalf("payload %q exceeds the %d-byte ceiling", data, MaxControlPayload)
			}
			gotAction, gotID, err := DecodeDecision(data)
			if err != nil {
				t.Fatalf("DecodeDecision(%q): %v", data, err)
			}
			if gotAction != action || gotID != id {
				t.Fatalf("round trip %q: got %v/%d, want %v/%d", data, gotAction, gotID, action, id)
			}
		}
	}
}

func TestDecodeDecisionRejectsMalformedPayloads(t *testing.T) {
	for _, data := range []string{
		"",
		"review",
		"review:approve",
		"review:approve:1:extra",
		"vote:approve:1",
		"review:feature:1",
		"review:approve:notanumber",
	} {
		if _, _, err := DecodeDecision(data); err == nil {
			t.Fatalf("DecodeDecision(%q) accepted a malformed payload", data)
		}
	}
}

func TestTruncateText(t *testing.T) {
	if got := TruncateText("short", 30); got != "short" {
		t.Fatalf("short text must pass through, got %q", got)
	}
	got := TruncateText(strings.Repeat("x", 40), 30)
	if len([]rune(got)) != 30 || !strings.HasSuffix(got, "…") {
		t.Fatalf("bad truncation: %q", got)
	}
	// Rune-safe on multibyte text.
	got = TruncateText(strings.Repeat("ы", 40), 10)
	if len([]rune(got)) != 10 {
		t.Fatalf("multibyte truncation produced %d runes", len([]rune(got)))
	}
}

package claims

import "testing"

func TestStatusDisplayText_KnownCodes(t *testing.T) {
	cases := map[int]string{
		0: "Pending",
		1: "Approved",
		2: "Rejected",
		3: "Paid",
		5: "Resolved",
		6: "Processed",
	}
	for code, want := range cases {
		if got := StatusDisplayText(code); got != want {
			t.Errorf("StatusDisplayText(%d) = %q, want %q", code, got, want)
		}
	}
}

func TestStatusDisplayText_UnknownCodeDefaultsToPending(t *testing.T) {
	for _, code := range []int{4, 7, -1, 99} {
		if got := StatusDisplayText(code); got != StatusPending {
			t.Errorf("StatusDisplayText(%d) = %q, want Pending", code, got)
		}
	}
}

func TestStatusCode_RoundTrip(t *testing.T) {
	for _, text := range KnownStatusTexts() {
		code, ok := StatusCode(text)
		if !ok {
			t.Fatalf("StatusCode(%q) not found", text)
		}
		if got := StatusDisplayText(code); got != text {
			t.Errorf("StatusDisplayText(StatusCode(%q)) = %q", text, got)
		}
	}
}

func TestStatusCode_UnknownText(t *testing.T) {
	if _, ok := StatusCode("Escalated"); ok {
		t.Error("expected no code for unknown text")
	}
	if _, ok := StatusCode("pending"); ok {
		t.Error("lookup must be case sensitive")
	}
}

package claims

// Claim item status texts as displayed to billing staff.
const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
	StatusPaid      = "Paid"
	StatusResolved  = "Resolved"
	StatusProcessed = "Processed"
)

// statusCodeToText maps the legacy NEMSAS numeric status codes to display
// text. Codes 4 and anything above 6 were never assigned upstream.
var statusCodeToText = map[int]string{
	0: StatusPending,
	1: StatusApproved,
	2: StatusRejected,
	3: StatusPaid,
	5: StatusResolved,
	6: StatusProcessed,
}

// statusTextToCode is the inversion of statusCodeToText, built once at init.
var statusTextToCode = func() map[string]int {
	m := make(map[string]int, len(statusCodeToText))
	for code, text := range statusCodeToText {
		m[text] = code
	}
	return m
}()

// StatusDisplayText returns the display text for a numeric status code.
// Unknown codes fall back to Pending so a stray upstream value never breaks
// the view.
func StatusDisplayText(code int) string {
	if text, ok := statusCodeToText[code]; ok {
		return text
	}
	return StatusPending
}

// StatusCode returns the numeric code for a status text. The second return
// is false for texts outside the fixed table, since newer statuses may only
// ever exist as text.
func StatusCode(text string) (int, bool) {
	code, ok := statusTextToCode[text]
	return code, ok
}

// KnownStatusTexts returns the status texts in code order, for dropdowns
// and export headers.
func KnownStatusTexts() []string {
	return []string{StatusPending, StatusApproved, StatusRejected, StatusPaid, StatusResolved, StatusProcessed}
}

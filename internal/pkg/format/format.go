package format

import "strings"

// markupReplacer escapes user-supplied text for embedding into HTML email
// bodies. Ampersand is replaced first so entities produced by the later
// replacements are not themselves re-escaped.
var markupReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeMarkup replaces &, <, >, " and ' with their entity equivalents.
// Note: applying it to already-escaped text double-escapes the ampersands
// in existing entities. Callers escape raw input exactly once.
func EscapeMarkup(s string) string {
	return markupReplacer.Replace(s)
}

// PhoneForTracker normalizes a free-text phone number into the
// +1 (AAA) BBB-CCCC shape the task tracker expects. Input that does not
// look like a US number is returned unchanged; the tracker may reject it,
// but the raw number is still visible in the submission record.
func PhoneForTracker(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	if len(d) == 11 && d[0] == '1' {
		d = d[1:]
	}
	if len(d) != 10 {
		return phone
	}

	return "+1 (" + d[0:3] + ") " + d[3:6] + "-" + d[6:10]
}

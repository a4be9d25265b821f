package email

import (
	"strings"

	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/domain/submission"
	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/pkg/format"
)

// The bodies are assembled by hand rather than through html/template:
// the layouts are two short fixed fragments and every interpolated value
// goes through the same escape function the forms have always used.

func contactBody(sub *submission.ContactSubmission) string {
	var b strings.Builder
	b.WriteString("<h2>New Contact Form Submission</h2>")
	field(&b, "Name", sub.Name)
	field(&b, "Email", sub.Email)
	field(&b, "Phone", sub.Phone)
	field(&b, "Subject", sub.Subject)
	b.WriteString("<h3>Message:</h3>")
	b.WriteString("<p>" + format.EscapeMarkup(sub.Message) + "</p>")
	return b.String()
}

func referralBody(sub *submission.ReferralSubmission) string {
	var b strings.Builder
	b.WriteString("<h2>New Client Referral</h2>")

	b.WriteString("<h3>Client Information</h3>")
	field(&b, "Name", sub.Client.FullName())
	field(&b, "DOB", sub.Client.DOB)
	field(&b, "Phone", sub.Client.Phone)
	field(&b, "Email", sub.Client.Email)

	b.WriteString("<h3>Program &amp; Insurance</h3>")
	field(&b, "Program Interest", sub.Program.Interest)
	field(&b, "Medicaid Number", sub.Program.MedicaidNumber)
	field(&b, "Insurance Provider", sub.Program.InsuranceProvider)

	b.WriteString("<h3>Referrer Information</h3>")
	field(&b, "Name", sub.Referrer.Name)
	field(&b, "Source", sub.Referrer.Source)
	field(&b, "Organization", orNA(sub.Referrer.Organization))

	b.WriteString("<h3>Details</h3>")
	field(&b, "Urgency", sub.Details.Urgency)
	field(&b, "Service Needs", sub.Details.ServiceNeeds)
	field(&b, "Additional Notes", sub.Details.AdditionalNotes)

	return b.String()
}

func field(b *strings.Builder, label, value string) {
	b.WriteString("<p><strong>" + label + ":</strong> " + format.EscapeMarkup(value) + "</p>")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
